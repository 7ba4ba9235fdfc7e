package notification

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Rahul-Sharma5/teamtimetracker/internal/domain/notification"
	"github.com/Rahul-Sharma5/teamtimetracker/internal/pkg/sse"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
)

// Config holds notification delivery tuning.
type Config struct {
	BatchSize     int           // default: 100
	FlushInterval time.Duration // default: 5 seconds
	WorkerCount   int           // default: 2
	QueueSize     int           // default: 1000
}

type NotificationServiceImpl struct {
	notification.NotificationRepository
	hub    *sse.Hub
	config Config

	queue  chan notification.CreateNotificationRequest
	wg     sync.WaitGroup
	stopCh chan struct{}
}

// NewNotificationService starts the background delivery workers and returns
// the service.
func NewNotificationService(repo notification.NotificationRepository, hub *sse.Hub, cfg Config) notification.NotificationService {
	if cfg.BatchSize == 0 {
		cfg.BatchSize = 100
	}
	if cfg.FlushInterval == 0 {
		cfg.FlushInterval = 5 * time.Second
	}
	if cfg.WorkerCount == 0 {
		cfg.WorkerCount = 2
	}
	if cfg.QueueSize == 0 {
		cfg.QueueSize = 1000
	}

	s := &NotificationServiceImpl{
		NotificationRepository: repo,
		hub:                    hub,
		config:                 cfg,
		queue:                  make(chan notification.CreateNotificationRequest, cfg.QueueSize),
		stopCh:                 make(chan struct{}),
	}

	for i := 0; i < cfg.WorkerCount; i++ {
		s.wg.Add(1)
		go s.worker(i)
	}

	return s
}

func (s *NotificationServiceImpl) worker(id int) {
	defer s.wg.Done()

	batch := make([]notification.CreateNotificationRequest, 0, s.config.BatchSize)
	ticker := time.NewTicker(s.config.FlushInterval)
	defer ticker.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		notifications := make([]notification.Notification, len(batch))
		for i, req := range batch {
			notifications[i] = notification.Notification{
				ID:          uuid.New().String(),
				RecipientID: req.RecipientID,
				Kind:        req.Kind,
				Title:       req.Title,
				Body:        req.Body,
				Link:        req.Link,
				Read:        false,
				CreatedAt:   time.Now(),
			}
		}

		if err := s.NotificationRepository.CreateBatch(ctx, notifications); err != nil {
			log.Printf("[NotificationWorker-%d] failed to batch insert: %v", id, err)
		} else {
			for _, n := range notifications {
				s.hub.Publish(n.RecipientID, sse.Event{
					RecipientID: n.RecipientID,
					Event:       "notification",
					Data:        n,
				})
			}
		}

		batch = batch[:0]
	}

	for {
		select {
		case req := <-s.queue:
			batch = append(batch, req)
			if len(batch) >= s.config.BatchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		case <-s.stopCh:
			flush()
			return
		}
	}
}

// Queue implements notification.NotificationService. A full queue drops the
// notification rather than blocking the calling operation.
func (s *NotificationServiceImpl) Queue(reqs ...notification.CreateNotificationRequest) {
	for _, req := range reqs {
		if req.RecipientID == "" {
			continue
		}
		select {
		case s.queue <- req:
		default:
			log.Printf("[NotificationService] queue full, dropping notification for %s", req.RecipientID)
		}
	}
}

// List implements notification.NotificationService.
func (s *NotificationServiceImpl) List(ctx context.Context, limit int, offset int) (notification.ListResponse, error) {
	caller, err := callerIDFromContext(ctx)
	if err != nil {
		return notification.ListResponse{}, err
	}

	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	notifications, err := s.NotificationRepository.ListByRecipient(ctx, caller, limit, offset)
	if err != nil {
		return notification.ListResponse{}, fmt.Errorf("failed to list notifications: %w", err)
	}

	total, err := s.NotificationRepository.CountByRecipient(ctx, caller)
	if err != nil {
		return notification.ListResponse{}, fmt.Errorf("failed to count notifications: %w", err)
	}

	unread, err := s.NotificationRepository.CountUnread(ctx, caller)
	if err != nil {
		return notification.ListResponse{}, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return notification.ListResponse{
		Notifications: notifications,
		UnreadCount:   unread,
		Total:         total,
	}, nil
}

// MarkRead implements notification.NotificationService.
func (s *NotificationServiceImpl) MarkRead(ctx context.Context, notificationID string) error {
	caller, err := callerIDFromContext(ctx)
	if err != nil {
		return err
	}

	n, err := s.NotificationRepository.GetByID(ctx, notificationID)
	if err != nil {
		return err
	}

	if n.RecipientID != caller {
		return notification.ErrNotRecipient
	}

	return s.NotificationRepository.MarkRead(ctx, notificationID)
}

// ClearAll implements notification.NotificationService.
func (s *NotificationServiceImpl) ClearAll(ctx context.Context) error {
	caller, err := callerIDFromContext(ctx)
	if err != nil {
		return err
	}

	return s.NotificationRepository.DeleteAllByRecipient(ctx, caller)
}

// Shutdown implements notification.NotificationService.
func (s *NotificationServiceImpl) Shutdown() {
	close(s.stopCh)
	s.wg.Wait()
}

func callerIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", fmt.Errorf("employee_id claim is missing or invalid")
	}

	return employeeID, nil
}
