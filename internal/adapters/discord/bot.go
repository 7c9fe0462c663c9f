package discord

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"tscat/internal/config"
	"tscat/internal/ports/input"
)

// Bot is the Discord adapter.
type Bot struct {
	session *discordgo.Session
	config  *config.Config
	handler *Handler
}

// NewBot creates a Bot and wires the use cases into the interaction handler.
func NewBot(cfg *config.Config, translations input.TranslationUseCase, catalogs input.CatalogUseCase) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}

	bot := &Bot{
		session: s,
		config:  cfg,
		handler: NewHandler(translations, catalogs, cfg.DefaultLocale),
	}
	bot.setupHandlers()
	return bot, nil
}

func (b *Bot) setupHandlers() {
	b.session.AddHandler(b.handleInteraction)
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	switch i.ApplicationCommandData().Name {
	case commandTranslate:
		b.handler.HandleTranslate(s, i)
	case commandCatalogs:
		b.handler.HandleCatalogs(s, i)
	}
}

// Start runs the bot until ctx is done.
func (b *Bot) Start(ctx context.Context) error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open discord session: %w", err)
	}
	defer b.session.Close()

	for _, cmd := range Commands() {
		if _, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.GuildID, cmd); err != nil {
			slog.Warn("Command registration failed", slog.String("command", cmd.Name), slog.Any("error", err))
		}
	}

	slog.Info("Bot online, press CTRL+C to quit")
	<-ctx.Done()
	slog.Info("Bot shutting down")
	return nil
}
