package output

import (
	"context"
	"time"

	"tscat/internal/domain/entities"
)

// CatalogSummary describes a stored catalog without its entries.
type CatalogSummary struct {
	Name      string
	Meta      entities.Meta
	Entries   int
	UpdatedAt time.Time
}

type CatalogRepository interface {
	Save(ctx context.Context, name string, c *entities.Catalog) error
	Load(ctx context.Context, name string, opts ...entities.CatalogOption) (*entities.Catalog, error)
	List(ctx context.Context) ([]CatalogSummary, error)
	Delete(ctx context.Context, name string) error
}
