package convertcmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"tscat/internal/adapters/cli/command"
	"tscat/internal/infrastructure/i18n"
	"tscat/internal/ports/input"
)

const (
	formatFlag = "format"
	outFlag    = "out"

	formatTS   = "ts"
	formatTOML = "toml"
)

var errNoOutput = errors.New("--out is required for ts output")

func New(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert FILE",
		Short: "rewrite a catalog file as normalized TS or as a go-i18n TOML message file",
		Long: "Rewrite a catalog file. With --format ts the catalog is written to the file\n" +
			"named by --out, grouped by context. With --format toml an active.<lang>.toml\n" +
			"message file is written into the directory named by --out.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := cmd.Flags().GetString(formatFlag)
			if err != nil {
				return fmt.Errorf("get format flag: %w", err)
			}
			out, err := cmd.Flags().GetString(outFlag)
			if err != nil {
				return fmt.Errorf("get out flag: %w", err)
			}
			cfg, err := command.LoadConfig(cmd)
			if err != nil {
				return command.WrapError(err)
			}
			return command.WrapError(execute(ctx, command.NewFileService(cfg), args[0], format, out))
		},
	}
	cmd.Flags().StringP(formatFlag, "f", formatTS, "output format: ts or toml")
	cmd.Flags().StringP(outFlag, "o", "", "output file (ts) or directory (toml)")
	return cmd
}

func execute(ctx context.Context, svc input.CatalogUseCase, path, format, out string) error {
	switch format {
	case formatTS:
		if out == "" {
			return errNoOutput
		}
	case formatTOML:
		if out == "" {
			out = "."
		}
	default:
		return fmt.Errorf("unknown format %q, want %s or %s", format, formatTS, formatTOML)
	}

	c, err := svc.LoadFile(ctx, path)
	if err != nil {
		return err
	}

	if format == formatTS {
		if err := svc.SaveFile(ctx, out, c); err != nil {
			return err
		}
		slog.Info("Catalog written", slog.String("path", out), slog.Int("entries", c.Len()))
		return nil
	}

	written, n, err := i18n.ExportTOMLFile(out, c)
	if err != nil {
		return err
	}
	slog.Info("Message file written", slog.String("path", written), slog.Int("messages", n))
	return nil
}
