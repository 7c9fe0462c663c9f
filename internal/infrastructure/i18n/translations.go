package i18n

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"tscat/internal/domain/entities"
	"tscat/internal/ports/output"
)

// Ensure Translator implements the output.Translator port.
var _ output.Translator = (*Translator)(nil)

// Catalog text is never a template: delimiters are control characters that
// cannot appear in a well-formed TS file.
const (
	leftDelim  = "\x02"
	rightDelim = "\x03"
)

// Translator is a thin wrapper around go-i18n's Bundle/Localizer holding one
// message set per catalog language.
//
// Catalogs and message files must be added before the Translator is shared
// between goroutines; lookups are read-only.
type Translator struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
	languages       []language.Tag
}

// NewTranslator builds a Translator using the given default locale (e.g. "en").
func NewTranslator(defaultLocale string) *Translator {
	tag, err := ParseLocale(defaultLocale)
	if err != nil {
		tag = language.English
	}
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	return &Translator{
		bundle:          bundle,
		defaultLanguage: tag,
	}
}

// ParseLocale parses a BCP 47 tag, accepting Qt style underscores ("pt_BR").
func ParseLocale(locale string) (language.Tag, error) {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return language.Und, fmt.Errorf("empty locale")
	}
	return language.Parse(strings.ReplaceAll(locale, "_", "-"))
}

// MessageID builds the message identifier of a catalog key, following the
// gettext msgctxt "\x04" msgid convention.
func MessageID(context, source, disambiguator string) string {
	id := context + "\x04" + source
	if disambiguator != "" {
		id += "\x04" + disambiguator
	}
	return id
}

// AddCatalog registers every entry of c that lookup would serve.
func (t *Translator) AddCatalog(c *entities.Catalog) (language.Tag, error) {
	tag, err := ParseLocale(c.Meta().Language)
	if err != nil {
		return language.Und, fmt.Errorf("i18n: catalog language %q: %w", c.Meta().Language, err)
	}

	entries := c.Entries()
	messages := make([]*i18n.Message, 0, len(entries))
	for _, e := range entries {
		if !e.Resolves(c.AllowsUnfinished()) {
			continue
		}
		messages = append(messages, &i18n.Message{
			ID:          MessageID(e.Context, e.Source, e.Disambiguator),
			Description: describe(e),
			LeftDelim:   leftDelim,
			RightDelim:  rightDelim,
			Other:       e.Text(),
		})
	}
	if err := t.bundle.AddMessages(tag, messages...); err != nil {
		return language.Und, fmt.Errorf("i18n: add %s messages: %w", tag, err)
	}
	t.addLanguage(tag)
	slog.Debug("Catalog registered", slog.String("language", tag.String()), slog.Int("messages", len(messages)))
	return tag, nil
}

// LoadMessageFile loads a go-i18n message file such as active.fr.toml.
func (t *Translator) LoadMessageFile(path string) (language.Tag, error) {
	mf, err := t.bundle.LoadMessageFile(path)
	if err != nil {
		return language.Und, fmt.Errorf("i18n: load %s: %w", path, err)
	}
	t.addLanguage(mf.Tag)
	return mf.Tag, nil
}

func (t *Translator) addLanguage(tag language.Tag) {
	for _, l := range t.languages {
		if l == tag {
			return
		}
	}
	t.languages = append(t.languages, tag)
}

func (t *Translator) Languages() []language.Tag {
	return append([]language.Tag(nil), t.languages...)
}

func (t *Translator) DefaultLanguage() language.Tag {
	return t.defaultLanguage
}

// T returns the translation for the given locale. If the key/locale is not
// found, it falls back to the default locale, then to the key without its
// disambiguator, then finally to source itself.
func (t *Translator) T(locale, context, source, disambiguator string) string {
	if source == "" {
		return ""
	}
	if msg, ok := t.localize(locale, MessageID(context, source, disambiguator)); ok {
		return msg
	}
	if disambiguator != "" {
		if msg, ok := t.localize(locale, MessageID(context, source, "")); ok {
			return msg
		}
	}
	slog.Debug("Translation missing",
		slog.String("locale", locale),
		slog.String("context", context),
		slog.String("source", source),
		slog.String("disambiguation", disambiguator))
	return source
}

func (t *Translator) localize(locale, id string) (string, bool) {
	languages := []string{}
	if locale != "" {
		languages = append(languages, strings.ReplaceAll(locale, "_", "-"))
	}
	languages = append(languages, t.defaultLanguage.String())

	localizer := i18n.NewLocalizer(t.bundle, languages...)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil || msg == "" {
		return "", false
	}
	return msg, true
}

func describe(e entities.Entry) string {
	switch {
	case e.Disambiguator != "" && e.ExtraComment != "":
		return e.Disambiguator + "\n" + e.ExtraComment
	case e.Disambiguator != "":
		return e.Disambiguator
	default:
		return e.ExtraComment
	}
}
