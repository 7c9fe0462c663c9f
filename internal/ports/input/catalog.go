package input

import (
	"context"

	"tscat/internal/domain/entities"
	"tscat/internal/ports/output"
)

type CatalogUseCase interface {
	LoadFile(ctx context.Context, path string) (*entities.Catalog, error)
	LoadFiles(ctx context.Context, paths []string) ([]*entities.Catalog, error)
	SaveFile(ctx context.Context, path string, c *entities.Catalog) error
	Import(ctx context.Context, name, path string) (*entities.Catalog, error)
	Export(ctx context.Context, name, path string) error
	Fetch(ctx context.Context, name string) (*entities.Catalog, error)
	List(ctx context.Context) ([]output.CatalogSummary, error)
	Delete(ctx context.Context, name string) error
}
