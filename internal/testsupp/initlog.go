// Package testsupp holds helpers shared by package tests.
package testsupp

import (
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/dusted-go/logging/prettylog"
	slogformatter "github.com/samber/slog-formatter"
)

// InitLog routes slog through the same pretty handler the CLI uses, at debug level.
func InitLog(t *testing.T) {
	t.Helper()

	funcHandler := slogformatter.NewFormatterHandler(
		slogformatter.FormatByType(func(s []string) slog.Value {
			return slog.StringValue(strings.Join(s, ","))
		}),
	)

	plHandler := prettylog.New(
		&slog.HandlerOptions{
			Level:     slog.LevelDebug,
			AddSource: false,
		},
		prettylog.WithDestinationWriter(os.Stdout),
	)

	slog.SetDefault(slog.New(funcHandler(plHandler)))
}
