package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/dusted-go/logging/prettylog"
	"github.com/mattn/go-isatty"
	slogformatter "github.com/samber/slog-formatter"
	"github.com/spf13/cobra"

	"tscat/internal/adapters/cli"
	"tscat/internal/adapters/cli/command"
	"tscat/internal/domain"
)

func initLogging(verbose bool) {
	logLvl := func() slog.Level {
		if verbose {
			return slog.LevelDebug
		}
		return slog.LevelInfo
	}()
	w := os.Stderr

	logger := slog.New(
		slogformatter.NewFormatterHandler(
			slogformatter.FormatByType(func(s []string) slog.Value {
				return slog.StringValue(strings.Join(s, ","))
			}),
		)(
			prettylog.New(&slog.HandlerOptions{Level: logLvl},
				prettylog.WithDestinationWriter(w),
				func() prettylog.Option {
					if isatty.IsTerminal(w.Fd()) {
						return prettylog.WithColor()
					}
					return func(_ *prettylog.Handler) {}
				}(),
			),
		),
	)
	slog.SetDefault(logger)
}

const (
	verboseFlag = "verbose"
)

func main() {
	os.Exit(mainFn())
}

func mainFn() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := cli.NewRootCommand(ctx)
	rootCmd.PersistentFlags().BoolP(verboseFlag, "v", false, "verbose output")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		verbose, err := cmd.Flags().GetBool(verboseFlag)
		if err != nil {
			fmt.Printf("Failed to get verbosity flag: %v\n", err)
			os.Exit(1)
		}

		initLogging(verbose)
	}

	if err := rootCmd.Execute(); err != nil {
		var cmdErr *command.Error
		if errors.As(err, &cmdErr) && cmdErr.Inner != nil {
			attrs := []any{slog.Any("error", cmdErr.Inner)}
			if code := domain.Code(cmdErr.Inner); code != "" {
				attrs = append(attrs, slog.String("code", code))
			}
			slog.Error("Command failed", attrs...)
		} else {
			fmt.Fprintln(os.Stderr, err)
			_ = rootCmd.Usage()
		}
		return 1
	}

	return 0
}
