package discord

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"tscat/internal/domain"
	pkgdiscord "tscat/pkg/discord"
)

const (
	commandTranslate = "tr"
	commandCatalogs  = "catalogs"

	optContext       = "context"
	optSource        = "source"
	optDisambiguator = "disambiguation"
	optLocale        = "locale"
)

// Commands returns the slash commands registered by the bot.
func Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        commandTranslate,
			Description: "Look up a translation",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: optContext, Description: "Context, e.g. QFileDialog", Required: true},
				{Type: discordgo.ApplicationCommandOptionString, Name: optSource, Description: "Source text", Required: true},
				{Type: discordgo.ApplicationCommandOptionString, Name: optDisambiguator, Description: "Disambiguating comment"},
				{Type: discordgo.ApplicationCommandOptionString, Name: optLocale, Description: "Locale (defaults to yours), e.g. eu or pt-BR"},
			},
		},
		{
			Name:        commandCatalogs,
			Description: "List loaded and stored catalogs",
		},
	}
}

var errMissingOption = errors.New("context and source are required")

// HandleTranslate answers /tr with the translation for the caller's locale.
func (h *Handler) HandleTranslate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	locale := string(i.Locale)
	embed, err := h.translate(locale, pkgdiscord.StringOptions(i.ApplicationCommandData().Options))
	if err != nil {
		respondEphemeral(s, i.Interaction, "❌ "+h.localize(locale, err.Error()))
		return
	}
	respondEmbed(s, i.Interaction, embed)
}

func (h *Handler) translate(userLocale string, opts map[string]string) (*discordgo.MessageEmbed, error) {
	msgContext, source := opts[optContext], opts[optSource]
	if strings.TrimSpace(msgContext) == "" || source == "" {
		return nil, errMissingOption
	}
	locale := strings.TrimSpace(opts[optLocale])
	if locale == "" {
		locale = userLocale
	}
	if locale == "" {
		locale = h.defaultLocale
	}
	disambiguator := opts[optDisambiguator]

	translation := h.translationUseCase.Lookup(locale, msgContext, source, disambiguator)
	return pkgdiscord.BuildTranslationEmbed(msgContext, source, disambiguator, locale, translation), nil
}

// HandleCatalogs answers /catalogs with the loaded languages and, when a
// store is configured, the stored catalogs.
func (h *Handler) HandleCatalogs(s *discordgo.Session, i *discordgo.InteractionCreate) {
	respond(s, i.Interaction, &discordgo.InteractionResponseData{
		Embeds: h.catalogEmbeds(context.Background(), string(i.Locale)),
		Flags:  discordgo.MessageFlagsEphemeral,
	})
}

func (h *Handler) catalogEmbeds(ctx context.Context, locale string) []*discordgo.MessageEmbed {
	embeds := []*discordgo.MessageEmbed{pkgdiscord.BuildLanguagesEmbed(h.translationUseCase.Languages())}
	if h.catalogUseCase == nil {
		return embeds
	}
	summaries, err := h.catalogUseCase.List(ctx)
	switch {
	case errors.Is(err, domain.ErrNoStore):
	case err != nil:
		slog.Error("Listing stored catalogs failed", slog.Any("error", err))
		embeds = append(embeds, &discordgo.MessageEmbed{Description: "⚠️ " + h.localize(locale, pkgdiscord.DomainErrorMessage(err))})
	default:
		embeds = append(embeds, pkgdiscord.BuildStoredEmbed(summaries))
	}
	return embeds
}

// localize translates one of the bot's own messages into locale.
func (h *Handler) localize(locale, message string) string {
	if locale == "" {
		locale = h.defaultLocale
	}
	return h.translationUseCase.Lookup(locale, pkgdiscord.MessageContext, message, "")
}
