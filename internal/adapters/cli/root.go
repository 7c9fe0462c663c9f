// Package cli assembles the tscat command tree.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"tscat/internal/adapters/cli/botcmd"
	"tscat/internal/adapters/cli/checkcmd"
	"tscat/internal/adapters/cli/command"
	"tscat/internal/adapters/cli/convertcmd"
	"tscat/internal/adapters/cli/dbcmd"
	"tscat/internal/adapters/cli/lookupcmd"
)

func NewRootCommand(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tscat",
		Short:         "tscat loads Qt translation catalogs and answers lookups",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	command.AddConfigFlags(cmd)

	cmd.AddCommand(
		lookupcmd.New(ctx),
		checkcmd.New(ctx),
		convertcmd.New(ctx),
		dbcmd.New(ctx),
		botcmd.New(ctx),
	)
	return cmd
}
