package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Rahul-Sharma5/teamtimetracker/internal/config"
	appHTTP "github.com/Rahul-Sharma5/teamtimetracker/internal/handler/http"
	"github.com/Rahul-Sharma5/teamtimetracker/internal/pkg/database"
	"github.com/Rahul-Sharma5/teamtimetracker/internal/pkg/jwt"
	"github.com/Rahul-Sharma5/teamtimetracker/internal/pkg/oauth"
	"github.com/Rahul-Sharma5/teamtimetracker/internal/pkg/sse"
	"github.com/Rahul-Sharma5/teamtimetracker/internal/repository/postgresql"
	announcementService "github.com/Rahul-Sharma5/teamtimetracker/internal/service/announcement"
	attendanceService "github.com/Rahul-Sharma5/teamtimetracker/internal/service/attendance"
	authService "github.com/Rahul-Sharma5/teamtimetracker/internal/service/auth"
	breakService "github.com/Rahul-Sharma5/teamtimetracker/internal/service/breaks"
	employeeService "github.com/Rahul-Sharma5/teamtimetracker/internal/service/employee"
	leaveService "github.com/Rahul-Sharma5/teamtimetracker/internal/service/leave"
	notificationService "github.com/Rahul-Sharma5/teamtimetracker/internal/service/notification"
	reportService "github.com/Rahul-Sharma5/teamtimetracker/internal/service/report"
	settingsService "github.com/Rahul-Sharma5/teamtimetracker/internal/service/settings"
	taskService "github.com/Rahul-Sharma5/teamtimetracker/internal/service/task"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	breakRepo := postgresql.NewBreakRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	taskRepo := postgresql.NewTaskRepository(db)
	settingsRepo := postgresql.NewSettingsRepository(db)
	announcementRepo := postgresql.NewAnnouncementRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleSvc := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	hub := sse.NewHub()

	notificationSvc := notificationService.NewNotificationService(notificationRepo, hub, notificationService.Config{})
	authSvc := authService.NewAuthService(employeeRepo, jwtSvc)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, settingsRepo)
	breakSvc := breakService.NewBreakService(breakRepo, attendanceRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, employeeRepo, notificationSvc)
	taskSvc := taskService.NewTaskService(taskRepo, employeeRepo, notificationSvc)
	settingsSvc := settingsService.NewSettingsService(settingsRepo)
	announcementSvc := announcementService.NewAnnouncementService(announcementRepo, employeeRepo, notificationSvc)
	reportSvc := reportService.NewReportService(attendanceRepo, employeeRepo)

	handlers := appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(jwtSvc, authSvc, googleSvc, cfg.App.FrontendURL),
		Employee:     appHTTP.NewEmployeeHandler(employeeSvc),
		Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc),
		Break:        appHTTP.NewBreakHandler(breakSvc),
		Leave:        appHTTP.NewLeaveHandler(leaveSvc),
		Task:         appHTTP.NewTaskHandler(taskSvc),
		Settings:     appHTTP.NewSettingsHandler(settingsSvc),
		Announcement: appHTTP.NewAnnouncementHandler(announcementSvc),
		Notification: appHTTP.NewNotificationHandler(notificationSvc, jwtSvc, hub),
		Report:       appHTTP.NewReportHandler(reportSvc),
	}

	router := appHTTP.NewRouter(jwtSvc, cfg.App.FrontendURL, cfg.App.Env, handlers)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		log.Printf("listening on :%d", cfg.App.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server error: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Println("server shutdown error:", err)
	}

	// Flush queued notifications before the process exits.
	notificationSvc.Shutdown()
}
