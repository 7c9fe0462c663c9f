package input

import (
	"golang.org/x/text/language"

	"tscat/internal/domain/entities"
)

// LanguageSummary aggregates the catalogs registered for one language.
type LanguageSummary struct {
	Language language.Tag
	Catalogs int
	Stats    entities.Stats
}

type TranslationUseCase interface {
	Register(c *entities.Catalog) error
	Lookup(locale, context, source, disambiguator string) string
	Languages() []LanguageSummary
}
