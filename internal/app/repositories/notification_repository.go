package repositories

import (
	"github.com/eduvault/eduvault/internal/app/models"
	"github.com/eduvault/eduvault/internal/db"
)

// NotificationRepository persists the notification collection as a single
// whole-collection value.
type NotificationRepository struct {
	DB *db.BoltDB
}

// NewNotificationRepository creates a new instance of NotificationRepository.
func NewNotificationRepository(database *db.BoltDB) *NotificationRepository {
	return &NotificationRepository{DB: database}
}

// Load reads the persisted notification collection.
func (r *NotificationRepository) Load() ([]models.Notification, error) {
	var notifications []models.Notification
	if err := loadValue(r.DB, notificationsKey, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// Save rewrites the whole notification collection.
func (r *NotificationRepository) Save(notifications []models.Notification) error {
	return saveValue(r.DB, notificationsKey, notifications)
}
