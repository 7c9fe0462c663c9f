package application

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"

	"tscat/internal/domain"
	"tscat/internal/domain/entities"
	"tscat/internal/ports/input"
	"tscat/internal/ports/output"
)

var _ input.TranslationUseCase = (*TranslationService)(nil)

// TranslationService serves lookups across every registered catalog.
// Registration happens at startup; afterwards the service is read-only.
type TranslationService struct {
	translator output.Translator
	summaries  map[language.Tag]*input.LanguageSummary
	order      []language.Tag
}

func NewTranslationService(translator output.Translator) *TranslationService {
	return &TranslationService{
		translator: translator,
		summaries:  make(map[language.Tag]*input.LanguageSummary),
	}
}

func (s *TranslationService) Register(c *entities.Catalog) error {
	tag, err := s.translator.AddCatalog(c)
	if err != nil {
		return err
	}
	sum := s.summary(tag)
	sum.Catalogs++
	st := c.Stats()
	sum.Stats.Total += st.Total
	sum.Stats.Finished += st.Finished
	sum.Stats.Unfinished += st.Unfinished
	sum.Stats.Obsolete += st.Obsolete
	sum.Stats.Untranslated += st.Untranslated
	return nil
}

// RegisterMessageFile registers a go-i18n message file. Its entries carry no
// status, so only the catalog count of the language changes.
func (s *TranslationService) RegisterMessageFile(path string) error {
	tag, err := s.translator.LoadMessageFile(path)
	if err != nil {
		return err
	}
	s.summary(tag).Catalogs++
	return nil
}

func (s *TranslationService) summary(tag language.Tag) *input.LanguageSummary {
	sum, ok := s.summaries[tag]
	if !ok {
		sum = &input.LanguageSummary{Language: tag}
		s.summaries[tag] = sum
		s.order = append(s.order, tag)
	}
	return sum
}

// LoadSources registers catalog files (.ts, or go-i18n .toml message files)
// and catalogs stored under the given names. The first source that fails
// aborts startup.
func (s *TranslationService) LoadSources(ctx context.Context, catalogs input.CatalogUseCase, files, stored []string) error {
	var tsFiles, messageFiles []string
	for _, f := range files {
		if strings.EqualFold(filepath.Ext(f), ".toml") {
			messageFiles = append(messageFiles, f)
		} else {
			tsFiles = append(tsFiles, f)
		}
	}

	loaded, err := catalogs.LoadFiles(ctx, tsFiles)
	if err != nil {
		return err
	}
	for _, name := range stored {
		c, err := catalogs.Fetch(ctx, name)
		if err != nil {
			return err
		}
		loaded = append(loaded, c)
	}
	if len(loaded) == 0 && len(messageFiles) == 0 {
		return domain.ErrNoCatalogs
	}

	for _, c := range loaded {
		if err := s.Register(c); err != nil {
			return err
		}
	}
	for _, f := range messageFiles {
		if err := s.RegisterMessageFile(f); err != nil {
			return err
		}
	}
	slog.Info("Translations ready", slog.Int("languages", len(s.order)))
	return nil
}

func (s *TranslationService) Lookup(locale, context, source, disambiguator string) string {
	return s.translator.T(locale, context, source, disambiguator)
}

func (s *TranslationService) Languages() []input.LanguageSummary {
	out := make([]input.LanguageSummary, 0, len(s.order))
	for _, tag := range s.order {
		out = append(out, *s.summaries[tag])
	}
	return out
}
