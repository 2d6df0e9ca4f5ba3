package services

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/eduvault/eduvault/internal/app/repositories"
	"github.com/eduvault/eduvault/internal/config"
	"github.com/eduvault/eduvault/internal/db"
)

// testNow pins the clock to the seed catalog's newest creation date so
// "today" counters and upload dates are deterministic.
func testNow() time.Time {
	return time.Date(2025, time.August, 2, 10, 0, 0, 0, time.UTC)
}

type testEnv struct {
	database *db.BoltDB
	repos    *repositories.Repositories

	account AccountService
	notifs  NotificationService
	catalog CatalogService
}

func newTestDB(t *testing.T) *db.BoltDB {
	t.Helper()

	cfg := &config.Config{}
	cfg.Storage.Path = filepath.Join(t.TempDir(), "catalog.db")

	database, err := db.NewBoltDB(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	return database
}

// newTestEnv wires a full service stack on a fresh temp database with a
// pinned clock. The fresh database means every env starts from the seed
// catalog and the Guest identity.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return buildEnv(t, newTestDB(t))
}

// buildEnv constructs services over an existing database, mirroring a
// process restart when called a second time on the same handle.
func buildEnv(t *testing.T, database *db.BoltDB) *testEnv {
	t.Helper()

	repos := repositories.NewRepositories(database)

	account, err := NewAccountService(repos.UserRepository)
	require.NoError(t, err)

	notifs, err := NewNotificationService(repos.NotificationRepository, testNow)
	require.NoError(t, err)

	catalog, err := NewCatalogService(repos.ResourceRepository, repos.DownloadRepository, notifs, account.Current, testNow)
	require.NoError(t, err)

	return &testEnv{
		database: database,
		repos:    repos,
		account:  account,
		notifs:   notifs,
		catalog:  catalog,
	}
}
