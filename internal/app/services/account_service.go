package services

import (
	"errors"
	"strings"

	"github.com/eduvault/eduvault/internal/app/models"
	"github.com/eduvault/eduvault/internal/app/repositories"
	"github.com/eduvault/eduvault/internal/pkg/apperrors"
	"github.com/eduvault/eduvault/internal/pkg/logger"
	"github.com/eduvault/eduvault/internal/seed"
)

// AccountService defines the interface for identity operations. The store
// tracks exactly one identity; every operation replaces it wholesale.
type AccountService interface {
	Current() models.User
	Login(name string, role models.RoleType) (models.User, error)
	Register(name string, role models.RoleType) (models.User, error)
	Logout() (models.User, error)
}

// accountServiceImpl implements AccountService
type accountServiceImpl struct {
	userRepo *repositories.UserRepository
	user     models.User
}

// NewAccountService creates a new AccountService, loading the persisted
// identity or falling back to the Guest default, and persisting the result.
func NewAccountService(userRepo *repositories.UserRepository) (AccountService, error) {
	user, err := userRepo.Load()
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotPersisted) {
			logger.Warn().Err(err).Msg("Persisted identity unreadable, falling back to Guest")
		}
		user = seed.User()
	}

	if err := userRepo.Save(user); err != nil {
		return nil, err
	}

	return &accountServiceImpl{userRepo: userRepo, user: user}, nil
}

// Current returns the active identity.
func (s *accountServiceImpl) Current() models.User {
	return s.user
}

// Login signs in as name. A blank name signs in as Guest and a blank role
// falls back to Student, mirroring the sign-in form's fallbacks.
func (s *accountServiceImpl) Login(name string, role models.RoleType) (models.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "Guest"
	}
	if role == "" {
		role = models.RoleStudent
	}
	return s.replace(models.User{Name: name, Role: role})
}

// Register creates the identity with the given name and role. The role
// defaults to Student when empty.
func (s *accountServiceImpl) Register(name string, role models.RoleType) (models.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.User{}, apperrors.ErrEmptyName
	}
	if role == "" {
		role = models.RoleStudent
	}
	return s.replace(models.User{Name: name, Role: role})
}

// Logout resets the identity to the Guest default.
func (s *accountServiceImpl) Logout() (models.User, error) {
	return s.replace(models.GuestUser())
}

func (s *accountServiceImpl) replace(user models.User) (models.User, error) {
	if err := s.userRepo.Save(user); err != nil {
		return models.User{}, err
	}
	s.user = user
	logger.Debug().Str("name", user.Name).Str("role", string(user.Role)).Msg("Identity replaced")
	return user, nil
}
