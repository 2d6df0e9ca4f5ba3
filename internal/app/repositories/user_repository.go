package repositories

import (
	"github.com/eduvault/eduvault/internal/app/models"
	"github.com/eduvault/eduvault/internal/db"
)

// UserRepository persists the single active identity.
type UserRepository struct {
	DB *db.BoltDB
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(database *db.BoltDB) *UserRepository {
	return &UserRepository{DB: database}
}

// Load reads the persisted identity.
func (r *UserRepository) Load() (models.User, error) {
	var user models.User
	if err := loadValue(r.DB, userKey, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Save rewrites the persisted identity.
func (r *UserRepository) Save(user models.User) error {
	return saveValue(r.DB, userKey, user)
}
