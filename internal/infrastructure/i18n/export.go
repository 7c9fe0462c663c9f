package i18n

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"tscat/internal/domain/entities"
)

// tomlMessage is the go-i18n table form of a message.
type tomlMessage struct {
	Description string `toml:"description,omitempty"`
	LeftDelim   string `toml:"leftdelim"`
	RightDelim  string `toml:"rightdelim"`
	Other       string `toml:"other"`
}

// ExportFileName returns the go-i18n message file name for a catalog language.
func ExportFileName(lang string) string {
	return "active." + strings.ReplaceAll(lang, "_", "-") + ".toml"
}

// ExportTOML writes the entries lookup would serve as a go-i18n message file.
// It returns the number of exported messages.
func ExportTOML(w io.Writer, c *entities.Catalog) (int, error) {
	messages := make(map[string]tomlMessage)
	for _, e := range c.Entries() {
		if !e.Resolves(c.AllowsUnfinished()) {
			continue
		}
		messages[MessageID(e.Context, e.Source, e.Disambiguator)] = tomlMessage{
			Description: describe(e),
			LeftDelim:   leftDelim,
			RightDelim:  rightDelim,
			Other:       e.Text(),
		}
	}
	if err := toml.NewEncoder(w).Encode(messages); err != nil {
		return 0, fmt.Errorf("i18n: encode toml: %w", err)
	}
	return len(messages), nil
}

// ExportTOMLFile writes c into dir as active.<lang>.toml and returns the path.
func ExportTOMLFile(dir string, c *entities.Catalog) (string, int, error) {
	if c.Meta().Language == "" {
		return "", 0, fmt.Errorf("i18n: catalog has no language")
	}
	path := filepath.Join(dir, ExportFileName(c.Meta().Language))
	f, err := os.Create(path)
	if err != nil {
		return "", 0, fmt.Errorf("i18n: create %s: %w", path, err)
	}
	n, err := ExportTOML(f, c)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return "", 0, err
	}
	return path, n, nil
}
