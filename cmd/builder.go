package cmd

import (
	"fmt"

	"catalog/config"
	"catalog/domain/category"
	"catalog/infrastructure/persistence/memory"
	"catalog/infrastructure/persistence/mysql"
	"catalog/pkg/logger"
	"catalog/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AppBuilder builds an App with customizable components
type AppBuilder struct {
	cfg        *config.Config
	repository category.Repository
	db         *gorm.DB
	registry   prometheus.Registerer
}

// NewBuilder creates a new AppBuilder
func NewBuilder(cfg *config.Config) *AppBuilder {
	return &AppBuilder{cfg: cfg}
}

// WithRepository skips backend selection and uses repo.
func (b *AppBuilder) WithRepository(repo category.Repository) *AppBuilder {
	b.repository = repo
	return b
}

// WithDB uses an existing connection for the mysql driver.
func (b *AppBuilder) WithDB(db *gorm.DB) *AppBuilder {
	b.db = db
	return b
}

// WithRegistry registers metrics on reg instead of the default registerer.
func (b *AppBuilder) WithRegistry(reg prometheus.Registerer) *AppBuilder {
	b.registry = reg
	return b
}

// Build creates the App instance
func (b *AppBuilder) Build() (*App, error) {
	if err := logger.Init(&b.cfg.Log, b.cfg.App.Env); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("Starting application",
		zap.String("app", b.cfg.App.Name),
		zap.String("version", b.cfg.App.Version),
		zap.String("env", b.cfg.App.Env),
		zap.String("driver", b.cfg.Database.Driver))

	if b.cfg.Metrics.Enabled {
		if err := metrics.Register(b.registry); err != nil {
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}
	}

	app := &App{config: b.cfg, repository: b.repository, db: b.db}
	if app.repository != nil {
		return app, nil
	}

	switch b.cfg.Database.Driver {
	case config.DriverMySQL:
		if app.db == nil {
			db, err := NewMySQLConfig(b.cfg).Connect()
			if err != nil {
				return nil, err
			}
			app.db = db
			app.ownsDB = true
		}
		app.repository = mysql.NewCategoryRepository(app.db)
	default:
		if b.cfg.IsProduction() {
			logger.Warn("In-memory persistence in production, data is lost on exit")
		}
		logger.Info("Using in-memory persistence layer")
		app.repository = memory.NewCategoryRepository()
	}
	return app, nil
}
