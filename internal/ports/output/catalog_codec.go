package output

import "tscat/internal/domain/entities"

// CatalogCodec reads and writes serialized catalogs.
type CatalogCodec interface {
	ReadFile(path string) (entities.Meta, []entities.Entry, error)
	WriteFile(path string, meta entities.Meta, entries []entities.Entry) error
}
