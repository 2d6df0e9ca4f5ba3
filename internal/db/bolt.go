package db

import (
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/eduvault/eduvault/internal/config"
)

// CatalogBucket is the single bucket holding the four persisted collections,
// each under its own stable key.
var CatalogBucket = []byte("catalog")

// BoltDB wraps the bbolt database handle
type BoltDB struct {
	DB *bolt.DB
}

// NewBoltDB opens (creating if necessary) the catalog database file and
// makes sure the catalog bucket exists.
func NewBoltDB(cfg *config.Config) (*BoltDB, error) {
	store, err := bolt.Open(cfg.Storage.Path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog database %s: %w", cfg.Storage.Path, err)
	}

	err = store.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(CatalogBucket)
		return err
	})
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to create catalog bucket: %w", err)
	}

	return &BoltDB{DB: store}, nil
}

// Close closes the underlying database
func (b *BoltDB) Close() error {
	return b.DB.Close()
}
