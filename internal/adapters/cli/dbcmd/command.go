package dbcmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"tscat/internal/adapters/cli/command"
	"tscat/internal/application"
	"tscat/internal/infrastructure/database"
	"tscat/internal/infrastructure/tsfile"
	"tscat/internal/ports/input"
)

func New(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db",
		Short: "manage catalogs kept in the database",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "migrate",
			Short: "apply pending database migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				cfg, err := command.LoadConfig(cmd)
				if err == nil {
					err = cfg.RequireDatabase()
				}
				if err != nil {
					return command.WrapError(err)
				}
				return command.WrapError(database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath))
			},
		},
		&cobra.Command{
			Use:   "import NAME FILE",
			Short: "store a catalog file under NAME, replacing any catalog of that name",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withStore(ctx, cmd, func(svc input.CatalogUseCase) error {
					_, err := svc.Import(ctx, args[0], args[1])
					return err
				})
			},
		},
		&cobra.Command{
			Use:   "export NAME FILE",
			Short: "write the stored catalog NAME to a TS file",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withStore(ctx, cmd, func(svc input.CatalogUseCase) error {
					if err := svc.Export(ctx, args[0], args[1]); err != nil {
						return err
					}
					slog.Info("Catalog exported", slog.String("name", args[0]), slog.String("path", args[1]))
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "list stored catalogs",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withStore(ctx, cmd, func(svc input.CatalogUseCase) error {
					return list(ctx, cmd.OutOrStdout(), svc)
				})
			},
		},
		&cobra.Command{
			Use:   "delete NAME",
			Short: "remove a stored catalog",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withStore(ctx, cmd, func(svc input.CatalogUseCase) error {
					if err := svc.Delete(ctx, args[0]); err != nil {
						return err
					}
					slog.Info("Catalog deleted", slog.String("name", args[0]))
					return nil
				})
			},
		},
	)
	return cmd
}

func withStore(ctx context.Context, cmd *cobra.Command, fn func(input.CatalogUseCase) error) error {
	cfg, err := command.LoadConfig(cmd)
	if err != nil {
		return command.WrapError(err)
	}
	repo, closeFn, err := command.OpenStore(ctx, cfg)
	if err != nil {
		return command.WrapError(err)
	}
	defer closeFn()

	svc := application.NewCatalogService(tsfile.NewCodec(), repo, command.CatalogOptions(cfg)...)
	return command.WrapError(fn(svc))
}

func list(ctx context.Context, w io.Writer, svc input.CatalogUseCase) error {
	summaries, err := svc.List(ctx)
	if err != nil {
		return err
	}
	if len(summaries) == 0 {
		slog.Info("The store is empty")
		return nil
	}
	fmt.Fprintf(w, "%-24s %-8s %8s  %s\n", "NAME", "LANGUAGE", "ENTRIES", "UPDATED")
	for _, s := range summaries {
		lang := s.Meta.Language
		if lang == "" {
			lang = "-"
		}
		fmt.Fprintf(w, "%-24s %-8s %8d  %s\n", s.Name, lang, s.Entries, s.UpdatedAt.Format("2006-01-02 15:04:05"))
	}
	return nil
}
