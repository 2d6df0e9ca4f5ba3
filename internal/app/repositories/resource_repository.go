package repositories

import (
	"github.com/eduvault/eduvault/internal/app/models"
	"github.com/eduvault/eduvault/internal/db"
)

// ResourceRepository persists the resource collection as a single
// whole-collection value.
type ResourceRepository struct {
	DB *db.BoltDB
}

// NewResourceRepository creates a new instance of ResourceRepository.
func NewResourceRepository(database *db.BoltDB) *ResourceRepository {
	return &ResourceRepository{DB: database}
}

// Load reads the persisted resource collection. It returns
// apperrors.ErrNotPersisted when nothing was ever saved and a json error
// when the stored value is corrupt.
func (r *ResourceRepository) Load() ([]models.Resource, error) {
	var resources []models.Resource
	if err := loadValue(r.DB, resourcesKey, &resources); err != nil {
		return nil, err
	}
	return resources, nil
}

// Save rewrites the whole resource collection.
func (r *ResourceRepository) Save(resources []models.Resource) error {
	return saveValue(r.DB, resourcesKey, resources)
}
