package botcmd

import (
	"context"

	"github.com/spf13/cobra"

	"tscat/internal/adapters/cli/command"
	"tscat/internal/adapters/discord"
	"tscat/internal/application"
	"tscat/internal/config"
	"tscat/internal/infrastructure/i18n"
)

func New(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "bot",
		Short: "serve lookups over Discord slash commands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := command.LoadConfig(cmd)
			if err != nil {
				return command.WrapError(err)
			}
			return command.WrapError(execute(ctx, cfg))
		},
	}
}

func execute(ctx context.Context, cfg *config.Config) error {
	if err := cfg.ValidateBot(); err != nil {
		return err
	}

	catalogs, closeFn, err := command.NewCatalogService(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeFn()

	translations := application.NewTranslationService(i18n.NewTranslator(cfg.DefaultLocale))
	if err := translations.LoadSources(ctx, catalogs, cfg.Catalogs, cfg.StoredCatalogs); err != nil {
		return err
	}

	bot, err := discord.NewBot(cfg, translations, catalogs)
	if err != nil {
		return err
	}
	return bot.Start(ctx)
}
