package discord

import (
	"tscat/internal/ports/input"
)

// Handler handles Discord interactions using use cases.
type Handler struct {
	translationUseCase input.TranslationUseCase
	catalogUseCase     input.CatalogUseCase
	defaultLocale      string
}

// NewHandler creates a Handler. catalogUseCase may be nil when no catalog
// store is configured.
func NewHandler(
	translationUseCase input.TranslationUseCase,
	catalogUseCase input.CatalogUseCase,
	defaultLocale string,
) *Handler {
	return &Handler{
		translationUseCase: translationUseCase,
		catalogUseCase:     catalogUseCase,
		defaultLocale:      defaultLocale,
	}
}
