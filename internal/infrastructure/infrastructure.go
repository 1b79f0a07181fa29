// Package infrastructure provides core service initialization for application startup.
// It assembles the dependencies (logging, database, metrics) that domain systems require.
package infrastructure

import (
	"fmt"
	"log/slog"

	"github.com/JaimeStill/suggestion-box/internal/config"
	"github.com/JaimeStill/suggestion-box/migrations"
	"github.com/JaimeStill/suggestion-box/pkg/database"
	"github.com/JaimeStill/suggestion-box/pkg/lifecycle"
	"github.com/JaimeStill/suggestion-box/pkg/logging"
	"github.com/JaimeStill/suggestion-box/pkg/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Infrastructure holds the core systems required by all domain modules.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Database  database.System
	Registry  *prometheus.Registry
	Metrics   *middleware.Metrics

	dbConfig *database.Config
}

// New creates an Infrastructure from the application configuration.
// It initializes all systems but does not start them; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	lc := lifecycle.New()
	logger := logging.New(&cfg.Logging)

	db, err := database.New(&cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Infrastructure{
		Lifecycle: lc,
		Logger:    logger,
		Database:  db,
		Registry:  reg,
		Metrics:   middleware.NewMetrics(reg, cfg.Metrics.Namespace),
		dbConfig:  &cfg.Database,
	}, nil
}

// Start connects the database, applies pending migrations when auto-migrate
// is enabled, and registers shutdown hooks with the lifecycle coordinator.
func (i *Infrastructure) Start() error {
	if err := i.Database.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("database start failed: %w", err)
	}

	if i.dbConfig.AutoMigrate {
		if err := database.Migrate(i.dbConfig, migrations.FS, migrations.Dir, database.Up); err != nil {
			return fmt.Errorf("auto-migrate failed: %w", err)
		}
		i.Logger.Info("migrations applied")
	}
	return nil
}
