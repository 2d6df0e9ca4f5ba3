package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduvault/eduvault/internal/app/models"
	"github.com/eduvault/eduvault/internal/pkg/apperrors"
)

func TestAccountService_DefaultsToGuest(t *testing.T) {
	env := newTestEnv(t)

	user := env.account.Current()
	assert.Equal(t, "Guest", user.Name)
	assert.Equal(t, models.RoleVisitor, user.Role)
}

func TestAccountService_LoginReplacesWholesale(t *testing.T) {
	env := newTestEnv(t)

	user, err := env.account.Login("Ada", "")
	require.NoError(t, err)
	assert.Equal(t, "Ada", user.Name)
	assert.Equal(t, models.RoleStudent, user.Role)
	assert.Equal(t, user, env.account.Current())

	// blank name signs in as Guest (still a Student, unlike logout)
	user, err = env.account.Login("  ", "")
	require.NoError(t, err)
	assert.Equal(t, "Guest", user.Name)
	assert.Equal(t, models.RoleStudent, user.Role)
}

func TestAccountService_RegisterValidatesName(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.account.Register("   ", models.RoleTeacher)
	assert.ErrorIs(t, err, apperrors.ErrEmptyName)
	assert.Equal(t, "Guest", env.account.Current().Name, "rejected register must not replace the identity")

	user, err := env.account.Register("Thinley", "")
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, user.Role, "role defaults to Student")

	user, err = env.account.Register("Sonam", models.RoleTeacher)
	require.NoError(t, err)
	assert.Equal(t, models.RoleTeacher, user.Role)
}

func TestAccountService_LogoutRestoresGuest(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.account.Register("Ada", models.RoleTeacher)
	require.NoError(t, err)

	user, err := env.account.Logout()
	require.NoError(t, err)
	assert.Equal(t, models.GuestUser(), user)
}

func TestAccountService_IdentityPersistsAcrossRestart(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.account.Register("Ada", models.RoleTeacher)
	require.NoError(t, err)

	restarted := buildEnv(t, env.database)
	assert.Equal(t, models.User{Name: "Ada", Role: models.RoleTeacher}, restarted.account.Current())
}
