package repositories

import (
	"github.com/eduvault/eduvault/internal/db"
)

// DownloadRepository persists the download history, an append-only list of
// resource ids. Ids are not checked against the resource collection at
// write time; resolution happens at read time in the catalog service.
type DownloadRepository struct {
	DB *db.BoltDB
}

// NewDownloadRepository creates a new instance of DownloadRepository.
func NewDownloadRepository(database *db.BoltDB) *DownloadRepository {
	return &DownloadRepository{DB: database}
}

// Load reads the persisted download history.
func (r *DownloadRepository) Load() ([]string, error) {
	var ids []string
	if err := loadValue(r.DB, downloadsKey, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// Save rewrites the whole download history.
func (r *DownloadRepository) Save(ids []string) error {
	return saveValue(r.DB, downloadsKey, ids)
}
