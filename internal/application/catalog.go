package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hashicorp/go-multierror"

	"tscat/internal/domain"
	"tscat/internal/domain/entities"
	"tscat/internal/ports/input"
	"tscat/internal/ports/output"
)

var _ input.CatalogUseCase = (*CatalogService)(nil)

type CatalogService struct {
	codec output.CatalogCodec
	repo  output.CatalogRepository
	opts  []entities.CatalogOption
}

// NewCatalogService creates a CatalogService. repo may be nil when no
// database is configured; opts apply to every catalog it builds.
func NewCatalogService(
	codec output.CatalogCodec,
	repo output.CatalogRepository,
	opts ...entities.CatalogOption,
) *CatalogService {
	return &CatalogService{
		codec: codec,
		repo:  repo,
		opts:  opts,
	}
}

// LoadFile parses and indexes one catalog file.
func (s *CatalogService) LoadFile(ctx context.Context, path string) (*entities.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	meta, entries, err := s.codec.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := entities.NewCatalog(meta, entries, s.opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logDuplicates(path, c)
	slog.Info("Catalog loaded",
		slog.String("path", path),
		slog.String("language", meta.Language),
		slog.Int("entries", c.Len()))
	return c, nil
}

// LoadFiles loads every path. It fails, reporting every broken file, if any
// of them cannot be loaded.
func (s *CatalogService) LoadFiles(ctx context.Context, paths []string) ([]*entities.Catalog, error) {
	var (
		result   *multierror.Error
		catalogs = make([]*entities.Catalog, 0, len(paths))
	)
	for _, path := range paths {
		c, err := s.LoadFile(ctx, path)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		catalogs = append(catalogs, c)
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	return catalogs, nil
}

func (s *CatalogService) SaveFile(ctx context.Context, path string, c *entities.Catalog) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.codec.WriteFile(path, c.Meta(), c.Entries())
}

// Import loads path and stores it under name.
func (s *CatalogService) Import(ctx context.Context, name, path string) (*entities.Catalog, error) {
	if s.repo == nil {
		return nil, domain.ErrNoStore
	}
	c, err := s.LoadFile(ctx, path)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, name, c); err != nil {
		return nil, err
	}
	slog.Info("Catalog imported", slog.String("name", name), slog.Int("entries", c.Len()))
	return c, nil
}

// Export writes the stored catalog name to path.
func (s *CatalogService) Export(ctx context.Context, name, path string) error {
	c, err := s.Fetch(ctx, name)
	if err != nil {
		return err
	}
	return s.SaveFile(ctx, path, c)
}

func (s *CatalogService) Fetch(ctx context.Context, name string) (*entities.Catalog, error) {
	if s.repo == nil {
		return nil, domain.ErrNoStore
	}
	c, err := s.repo.Load(ctx, name, s.opts...)
	if err != nil {
		return nil, err
	}
	logDuplicates(name, c)
	return c, nil
}

func (s *CatalogService) List(ctx context.Context) ([]output.CatalogSummary, error) {
	if s.repo == nil {
		return nil, domain.ErrNoStore
	}
	return s.repo.List(ctx)
}

func (s *CatalogService) Delete(ctx context.Context, name string) error {
	if s.repo == nil {
		return domain.ErrNoStore
	}
	return s.repo.Delete(ctx, name)
}

func logDuplicates(origin string, c *entities.Catalog) {
	for _, k := range c.Duplicates() {
		slog.Warn("Duplicate entry replaced by a later one",
			slog.String("catalog", origin),
			slog.String("context", k.Context),
			slog.String("source", k.Source),
			slog.String("disambiguation", k.Disambiguator))
	}
}
