package command

import (
	"context"

	"tscat/internal/application"
	"tscat/internal/config"
	"tscat/internal/infrastructure/database"
	"tscat/internal/infrastructure/tsfile"
	"tscat/internal/ports/output"
)

// NewFileService returns a catalog service that only reads and writes files.
func NewFileService(cfg *config.Config) *application.CatalogService {
	return application.NewCatalogService(tsfile.NewCodec(), nil, CatalogOptions(cfg)...)
}

// OpenStore connects to the configured database. The returned func closes
// the connection pool.
func OpenStore(ctx context.Context, cfg *config.Config) (*database.CatalogRepository, func(), error) {
	if err := cfg.RequireDatabase(); err != nil {
		return nil, nil, err
	}
	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	return database.NewCatalogRepository(pool), pool.Close, nil
}

// NewCatalogService returns a catalog service backed by the store when a
// database is configured, and by files alone otherwise.
func NewCatalogService(ctx context.Context, cfg *config.Config) (*application.CatalogService, func(), error) {
	if cfg.DatabaseURL == "" {
		return NewFileService(cfg), func() {}, nil
	}
	repo, closeFn, err := OpenStore(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	var store output.CatalogRepository = repo
	return application.NewCatalogService(tsfile.NewCodec(), store, CatalogOptions(cfg)...), closeFn, nil
}
