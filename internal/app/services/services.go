package services

import (
	"time"

	"github.com/eduvault/eduvault/internal/app/models"
	"github.com/eduvault/eduvault/internal/app/repositories"
)

// Services defined in this package:
// - AccountService: owns the active identity (login/register/logout)
// - NotificationService: owns the notification feed (upload/report/feedback events)
// - CatalogService: owns the resource collection and the download history
// - AssistantService: canned help answers, no state

// Notifier is the slice of NotificationService the catalog needs: upload
// announcements and the unread count for summaries.
type Notifier interface {
	Notify(text string) (models.Notification, error)
	UnreadCount() int
}

// Services holds all the service instances
type Services struct {
	Account      AccountService
	Notification NotificationService
	Catalog      CatalogService
	Assistant    *AssistantService
}

// NewServices initializes all services on top of the repositories. Each
// service runs the read-or-default-then-write init for its collection, so a
// fresh database comes up seeded and an existing one is left as found.
func NewServices(repos *repositories.Repositories) (*Services, error) {
	account, err := NewAccountService(repos.UserRepository)
	if err != nil {
		return nil, err
	}

	notification, err := NewNotificationService(repos.NotificationRepository, time.Now)
	if err != nil {
		return nil, err
	}

	catalog, err := NewCatalogService(repos.ResourceRepository, repos.DownloadRepository, notification, account.Current, time.Now)
	if err != nil {
		return nil, err
	}

	return &Services{
		Account:      account,
		Notification: notification,
		Catalog:      catalog,
		Assistant:    NewAssistantService(),
	}, nil
}
