package cmd

import (
	"context"

	"catalog/config"
	"catalog/domain/category"
	"catalog/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App wires configuration, logging and a category repository.
type App struct {
	config     *config.Config
	repository category.Repository
	db         *gorm.DB
	ownsDB     bool
}

func (a *App) Repository() category.Repository { return a.repository }

// Seed inserts n generated categories.
func (a *App) Seed(ctx context.Context, n int) error {
	if n <= 0 {
		return nil
	}
	items := category.Fake().Many(n).Build()
	if err := a.repository.BulkInsert(ctx, items); err != nil {
		return err
	}
	logger.FromContext(ctx).Info("Seeded categories", zap.Int("count", n))
	return nil
}

// Search runs one search against the configured backend.
func (a *App) Search(ctx context.Context, in category.SearchInput) (category.SearchResult, error) {
	params := category.NewSearchParams(in)
	res, err := a.repository.Search(ctx, params)
	if err != nil {
		logger.FromContext(ctx).Error("Search failed", zap.Stringer("params", params), zap.Error(err))
		return res, err
	}
	logger.FromContext(ctx).Debug("Search finished",
		zap.Stringer("params", params),
		zap.Int("total", res.Total()),
		zap.Int("items", len(res.Items())))
	return res, nil
}

// Close releases the database connection if the app opened it.
func (a *App) Close() error {
	defer logger.Sync()
	if a.db == nil || !a.ownsDB {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
