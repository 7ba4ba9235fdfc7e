package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/Rahul-Sharma5/teamtimetracker/internal/handler/http/middleware"
	"github.com/Rahul-Sharma5/teamtimetracker/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Auth         AuthHandler
	Employee     EmployeeHandler
	Attendance   AttendanceHandler
	Break        BreakHandler
	Leave        LeaveHandler
	Task         TaskHandler
	Settings     SettingsHandler
	Announcement AnnouncementHandler
	Notification NotificationHandler
	Report       ReportHandler
}

func NewRouter(jwtService jwt.Service, frontendURL string, env string, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "teamtimetracker"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", h.Auth.Signup)
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
			r.Route("/oauth", func(r chi.Router) {
				r.Get("/google", h.Auth.LoginWithGoogle)
				r.Get("/callback/google", h.Auth.OAuthCallbackGoogle)
			})
		})

		// The notification stream authenticates with its own short-lived
		// token, outside the Authorization header flow.
		r.Get("/notifications/stream", h.Notification.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.Get("/{id}", h.Employee.Get)
				r.Put("/{id}", h.Employee.UpdateProfile)
				r.Put("/{id}/password", h.Employee.ChangePassword)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Put("/{id}/status", h.Employee.UpdateStatus)
					r.Delete("/{id}", h.Employee.Delete)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/punch-in", h.Attendance.PunchIn)
				r.Post("/punch-out", h.Attendance.PunchOut)
				r.Put("/work-log", h.Attendance.UpdateWorkLog)
				r.Get("/today", h.Attendance.Today)
				r.Get("/history", h.Attendance.History)

				r.With(middleware.RequireManager).Get("/team", h.Attendance.TeamList)
			})

			r.Route("/breaks", func(r chi.Router) {
				r.Post("/start", h.Break.Start)
				r.Post("/end", h.Break.End)
				r.Get("/today", h.Break.Today)

				r.With(middleware.RequireManager).Get("/team", h.Break.TeamList)
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", h.Leave.Apply)
				r.Get("/", h.Leave.Mine)
				r.Get("/approvers", h.Leave.Approvers)
				r.Post("/{id}/cancel-request", h.Leave.RequestCancellation)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/team", h.Leave.TeamList)
					r.Put("/{id}/decision", h.Leave.Decide)
					r.Put("/{id}/cancel-resolution", h.Leave.ResolveCancellation)
				})
			})

			r.Route("/tasks", func(r chi.Router) {
				r.Post("/", h.Task.Create)
				r.Get("/", h.Task.List)
				r.Get("/{id}", h.Task.Get)
				r.Put("/{id}", h.Task.Update)
				r.Put("/{id}/status", h.Task.UpdateStatus)
				r.Delete("/{id}", h.Task.Delete)
				r.Post("/{id}/comments", h.Task.AddComment)
				r.Get("/{id}/comments", h.Task.ListComments)
			})

			r.Route("/settings", func(r chi.Router) {
				r.Get("/", h.Settings.Get)
				r.With(middleware.RequireManager).Put("/", h.Settings.Update)
			})

			r.Route("/announcements", func(r chi.Router) {
				r.Get("/", h.Announcement.List)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", h.Announcement.Create)
					r.Delete("/{id}", h.Announcement.Delete)
				})
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", h.Notification.List)
				r.Delete("/", h.Notification.ClearAll)
				r.Put("/{id}/read", h.Notification.MarkRead)
				r.Get("/sse-token", h.Notification.SSEToken)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/attendance.csv", h.Report.ExportCSV)
				r.Get("/attendance.pdf", h.Report.ExportPDF)
			})
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	return r
}
