package lookupcmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"tscat/internal/adapters/cli/command"
	"tscat/internal/ports/input"
)

const disambiguationFlag = "disambiguation"

func New(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup FILE CONTEXT SOURCE",
		Short: "print the translation of a source text, or the source text itself",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			disambiguator, err := cmd.Flags().GetString(disambiguationFlag)
			if err != nil {
				return fmt.Errorf("get disambiguation flag: %w", err)
			}
			cfg, err := command.LoadConfig(cmd)
			if err != nil {
				return command.WrapError(err)
			}

			svc := command.NewFileService(cfg)
			return command.WrapError(execute(ctx, cmd.OutOrStdout(), svc, args[0], args[1], args[2], disambiguator))
		},
	}
	cmd.Flags().StringP(disambiguationFlag, "d", "", "disambiguating comment of the source text")
	return cmd
}

func execute(ctx context.Context, w io.Writer, svc input.CatalogUseCase, path, msgContext, source, disambiguator string) error {
	c, err := svc.LoadFile(ctx, path)
	if err != nil {
		return err
	}
	text, ok := c.Resolve(msgContext, source, disambiguator)
	if !ok {
		slog.Debug("No usable translation, falling back to source text",
			slog.String("context", msgContext),
			slog.String("source", source))
	}
	_, err = fmt.Fprintln(w, text)
	return err
}
