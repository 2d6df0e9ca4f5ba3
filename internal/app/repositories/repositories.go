package repositories

import (
	"encoding/json"

	bolt "go.etcd.io/bbolt"

	"github.com/eduvault/eduvault/internal/db"
	"github.com/eduvault/eduvault/internal/pkg/apperrors"
)

// Keys under which the four collections persist inside the catalog bucket.
// Each value is the JSON serialization of the whole collection; every save
// rewrites the full value.
var (
	resourcesKey     = []byte("resources")
	notificationsKey = []byte("notifications")
	userKey          = []byte("user")
	downloadsKey     = []byte("downloads")
)

// Repositories holds all the repository instances
type Repositories struct {
	ResourceRepository     *ResourceRepository
	NotificationRepository *NotificationRepository
	UserRepository         *UserRepository
	DownloadRepository     *DownloadRepository
}

// NewRepositories initializes all repositories on a shared database
func NewRepositories(database *db.BoltDB) *Repositories {
	return &Repositories{
		ResourceRepository:     NewResourceRepository(database),
		NotificationRepository: NewNotificationRepository(database),
		UserRepository:         NewUserRepository(database),
		DownloadRepository:     NewDownloadRepository(database),
	}
}

// loadValue reads and unmarshals the value stored under key. It returns
// apperrors.ErrNotPersisted when the key is absent and the unmarshal error
// when the stored value is corrupt; callers substitute defaults for both.
func loadValue(database *db.BoltDB, key []byte, dest interface{}) error {
	var data []byte
	err := database.DB.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(db.CatalogBucket).Get(key)
		if v == nil {
			return apperrors.ErrNotPersisted
		}
		// bolt-owned memory is only valid inside the transaction
		data = append([]byte(nil), v...)
		return nil
	})
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

// saveValue marshals v and rewrites the value stored under key.
func saveValue(database *db.BoltDB, key []byte, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return database.DB.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(db.CatalogBucket).Put(key, data)
	})
}
