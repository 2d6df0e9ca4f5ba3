package bootstrap

import (
	"strings"

	appRepos "github.com/eduvault/eduvault/internal/app/repositories"
	appServices "github.com/eduvault/eduvault/internal/app/services"
	"github.com/eduvault/eduvault/internal/config"
	"github.com/eduvault/eduvault/internal/db"
	"github.com/eduvault/eduvault/internal/pkg/logger"
)

// App holds all the application dependencies
type App struct {
	Config   *config.Config
	DB       *db.BoltDB
	Services *appServices.Services
}

// Setup loads configuration, configures logging, opens the catalog database
// and wires repositories and services. dbPath, when non-empty, overrides the
// configured storage path (the CLI's --db flag).
func Setup(configPath, dbPath string) (*App, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	if dbPath != "" {
		cfg.Storage.Path = dbPath
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(cfg.Logging.Level),
		Pretty: strings.EqualFold(cfg.Logging.Format, "pretty"),
	})

	database, err := db.NewBoltDB(cfg)
	if err != nil {
		return nil, err
	}

	repos := appRepos.NewRepositories(database)

	svcs, err := appServices.NewServices(repos)
	if err != nil {
		database.Close()
		return nil, err
	}

	logger.Debug().Str("path", cfg.Storage.Path).Msg("Catalog store ready")

	return &App{
		Config:   cfg,
		DB:       database,
		Services: svcs,
	}, nil
}

// Close releases the catalog database.
func (a *App) Close() error {
	return a.DB.Close()
}
