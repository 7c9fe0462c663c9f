package output

import (
	"golang.org/x/text/language"

	"tscat/internal/domain/entities"
)

// Translator exposes catalog lookup across several languages.
type Translator interface {
	// T returns the translation of source for the given locale, falling back
	// to the default locale and finally to source itself. Never fails.
	T(locale, context, source, disambiguator string) string
	// AddCatalog registers the resolvable entries of c under its language.
	AddCatalog(c *entities.Catalog) (language.Tag, error)
	// LoadMessageFile registers a go-i18n message file (active.<lang>.toml).
	LoadMessageFile(path string) (language.Tag, error)
	// Languages lists the languages that have at least one catalog.
	Languages() []language.Tag
}
