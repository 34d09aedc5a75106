// Package cli wires the cobra command tree.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/doeshing/shellbridge/internal/app"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	container, err := app.BuildContainer(ctx, opts.Verbose)
	if err != nil {
		return nil, err
	}

	translateCmd := newTranslateCommand(container)

	root := &cobra.Command{
		Use:   "shellbridge [command-line]",
		Short: "Translate command lines between bash and PowerShell",
		Long: "shellbridge rewrites a single command line between POSIX shell and\n" +
			"PowerShell syntax. The rewrite is purely syntactic: quoted literals are\n" +
			"preserved and nothing is executed unless --run is given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			translateCmd.SetArgs(args)
			return translateCmd.ExecuteContext(cmd.Context())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(translateCmd)
	root.AddCommand(newTokensCommand())
	root.AddCommand(newVarsCommand())
	root.AddCommand(newEscapeCommand())
	root.AddCommand(newDetectCommand())
	root.AddCommand(newHistoryCommand(container))
	root.AddCommand(newConfigCommand(container))
	root.AddCommand(newVersionCommand())
	return root, nil
}
