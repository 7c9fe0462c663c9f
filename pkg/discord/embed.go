package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"tscat/internal/ports/input"
	"tscat/internal/ports/output"
)

const (
	embedColor        = 0x41CD52
	maxFieldValue     = 1024
	maxEmbedFields    = 25
	translationTitle  = "🌐 Translation"
	languagesTitle    = "📚 Loaded catalogs"
	storedTitle       = "🗄️ Stored catalogs"
	untranslatedBadge = "(untranslated)"
)

// truncate shortens s to at most n runes, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func code(s string) string {
	return "`" + strings.ReplaceAll(s, "`", "ˋ") + "`"
}

// BuildTranslationEmbed shows a lookup result. When translation equals the
// source text the result is flagged as untranslated.
func BuildTranslationEmbed(context, source, disambiguator, locale, translation string) *discordgo.MessageEmbed {
	result := translation
	if translation == source {
		result = fmt.Sprintf("%s %s", translation, untranslatedBadge)
	}
	fields := []*discordgo.MessageEmbedField{
		{Name: "Context", Value: truncate(code(context), maxFieldValue), Inline: true},
		{Name: "Locale", Value: truncate(code(locale), maxFieldValue), Inline: true},
		{Name: "Source", Value: truncate(source, maxFieldValue)},
	}
	if disambiguator != "" {
		fields = append(fields, &discordgo.MessageEmbedField{Name: "Disambiguation", Value: truncate(disambiguator, maxFieldValue)})
	}
	fields = append(fields, &discordgo.MessageEmbedField{Name: "Translation", Value: truncate(result, maxFieldValue)})
	return &discordgo.MessageEmbed{
		Title:  translationTitle,
		Color:  embedColor,
		Fields: fields,
	}
}

// BuildLanguagesEmbed lists the registered languages with their counters.
func BuildLanguagesEmbed(langs []input.LanguageSummary) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{Title: languagesTitle, Color: embedColor}
	if len(langs) == 0 {
		embed.Description = "No catalog is loaded."
		return embed
	}
	for i, l := range langs {
		if i == maxEmbedFields {
			embed.Footer = &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("%d more not shown", len(langs)-i)}
			break
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: l.Language.String(),
			Value: fmt.Sprintf("%d catalog(s) • %d finished • %d unfinished • %d obsolete",
				l.Catalogs, l.Stats.Finished, l.Stats.Unfinished, l.Stats.Obsolete),
			Inline: true,
		})
	}
	return embed
}

// BuildStoredEmbed lists catalogs kept in the catalog store.
func BuildStoredEmbed(summaries []output.CatalogSummary) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{Title: storedTitle, Color: embedColor}
	if len(summaries) == 0 {
		embed.Description = "The store is empty."
		return embed
	}
	var b strings.Builder
	for _, s := range summaries {
		lang := s.Meta.Language
		if lang == "" {
			lang = "?"
		}
		b.WriteString(fmt.Sprintf("- %s (%s): %d entries, updated %s\n",
			code(s.Name), lang, s.Entries, s.UpdatedAt.Format("2006-01-02 15:04")))
	}
	embed.Description = truncate(b.String(), 4096)
	return embed
}
