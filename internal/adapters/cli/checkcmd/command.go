package checkcmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"tscat/internal/adapters/cli/command"
	"tscat/internal/domain/entities"
	"tscat/internal/ports/input"
)

func New(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE...",
		Short: "load catalog files and report their translation status",
		Long: "Load every catalog file and print how many entries are finished, unfinished\n" +
			"and obsolete. Malformed files always fail the check; duplicate entries fail\n" +
			"it only in strict mode.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := command.LoadConfig(cmd)
			if err != nil {
				return command.WrapError(err)
			}
			return command.WrapError(execute(ctx, cmd.OutOrStdout(), command.NewFileService(cfg), args))
		},
	}
}

func execute(ctx context.Context, w io.Writer, svc input.CatalogUseCase, paths []string) error {
	var result *multierror.Error
	for _, path := range paths {
		c, err := svc.LoadFile(ctx, path)
		if err != nil {
			slog.Error("Catalog check failed", slog.String("path", path), slog.Any("error", err))
			result = multierror.Append(result, err)
			continue
		}
		report(w, path, c)
	}
	return result.ErrorOrNil()
}

// report prints a summary in the style of lrelease.
func report(w io.Writer, path string, c *entities.Catalog) {
	st := c.Stats()
	fmt.Fprintf(w, "Checking '%s'...\n", path)
	fmt.Fprintf(w, "    Found %d translation(s) (%d finished and %d unfinished)\n",
		st.Finished+st.Unfinished, st.Finished, st.Unfinished)
	if st.Untranslated > 0 {
		fmt.Fprintf(w, "    Ignored %d untranslated source text(s)\n", st.Untranslated)
	}
	if st.Obsolete > 0 {
		fmt.Fprintf(w, "    Skipped %d obsolete message(s)\n", st.Obsolete)
	}
	if n := len(c.Duplicates()); n > 0 {
		fmt.Fprintf(w, "    Replaced %d duplicate message(s)\n", n)
	}
}
