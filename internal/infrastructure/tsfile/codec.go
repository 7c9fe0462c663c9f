package tsfile

import (
	"fmt"
	"os"
	"path/filepath"

	"tscat/internal/domain/entities"
	"tscat/internal/ports/output"
)

var _ output.CatalogCodec = (*Codec)(nil)

// Codec reads and writes .ts files on the local filesystem.
type Codec struct{}

func NewCodec() *Codec {
	return &Codec{}
}

func (Codec) ReadFile(path string) (entities.Meta, []entities.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return entities.Meta{}, nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return decode(f, path)
}

// WriteFile writes to a temporary file next to path and renames it into place.
func (Codec) WriteFile(path string, meta entities.Meta, entries []entities.Entry) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create catalog: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := Encode(tmp, meta, entries); err != nil {
		tmp.Close()
		return fmt.Errorf("write catalog %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write catalog %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("write catalog %s: %w", path, err)
	}
	return nil
}
