package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/eduvault/eduvault/internal/app/models"
	"github.com/eduvault/eduvault/internal/app/repositories"
	"github.com/eduvault/eduvault/internal/pkg/apperrors"
	"github.com/eduvault/eduvault/internal/pkg/helpers"
	"github.com/eduvault/eduvault/internal/pkg/logger"
	"github.com/eduvault/eduvault/internal/seed"
)

// NotificationService defines the interface for the notification feed.
// Notifications are created by upload, report and feedback actions and are
// only ever listed and counted; there is no read-marking or expiry.
type NotificationService interface {
	List() []models.Notification
	UnreadCount() int
	Notify(text string) (models.Notification, error)
	Report(resourceTitle string) (models.Notification, error)
	Feedback(text string) (models.Notification, error)
}

// notificationServiceImpl implements NotificationService
type notificationServiceImpl struct {
	notificationRepo *repositories.NotificationRepository
	notifications    []models.Notification
	now              func() time.Time
}

// NewNotificationService creates a new NotificationService, loading the
// persisted feed or falling back to an empty one, and persisting the result.
func NewNotificationService(notificationRepo *repositories.NotificationRepository, now func() time.Time) (NotificationService, error) {
	if now == nil {
		now = time.Now
	}

	notifications, err := notificationRepo.Load()
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotPersisted) {
			logger.Warn().Err(err).Msg("Persisted notifications unreadable, starting empty")
		}
		notifications = seed.Notifications()
	}

	if err := notificationRepo.Save(notifications); err != nil {
		return nil, err
	}

	return &notificationServiceImpl{
		notificationRepo: notificationRepo,
		notifications:    notifications,
		now:              now,
	}, nil
}

// List returns the feed newest-first.
func (s *notificationServiceImpl) List() []models.Notification {
	out := make([]models.Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

// UnreadCount returns the number of unread notifications.
func (s *notificationServiceImpl) UnreadCount() int {
	count := 0
	for _, n := range s.notifications {
		if !n.Read {
			count++
		}
	}
	return count
}

// Notify prepends a notification with the given text and persists the feed.
func (s *notificationServiceImpl) Notify(text string) (models.Notification, error) {
	n := models.Notification{
		ID:   "n-" + uuid.NewString(),
		Text: text,
		Date: helpers.ISODate(s.now()),
		Read: false,
	}

	updated := append([]models.Notification{n}, s.notifications...)
	if err := s.notificationRepo.Save(updated); err != nil {
		return models.Notification{}, err
	}
	s.notifications = updated

	logger.Debug().Str("id", n.ID).Str("text", n.Text).Msg("Notification recorded")
	return n, nil
}

// Report records a report against the named resource.
func (s *notificationServiceImpl) Report(resourceTitle string) (models.Notification, error) {
	return s.Notify("Report: " + resourceTitle)
}

// Feedback records that feedback was sent. Empty or whitespace-only text is
// rejected without touching the feed.
func (s *notificationServiceImpl) Feedback(text string) (models.Notification, error) {
	if strings.TrimSpace(text) == "" {
		return models.Notification{}, apperrors.ErrEmptyFeedback
	}
	return s.Notify("Feedback sent")
}
