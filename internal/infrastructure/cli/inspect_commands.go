package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doeshing/shellbridge/internal/domain"
	"github.com/doeshing/shellbridge/internal/translate"
)

// newTokensCommand prints the quote-aware token split of a command line.
func newTokensCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens [command-line]",
		Short: "Show how a command line tokenizes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, token := range translate.Tokenize(strings.Join(args, " ")) {
				fmt.Fprintln(cmd.OutOrStdout(), token)
			}
			return nil
		},
	}
}

// newVarsCommand lists the environment variables a command line
// references, flagging the ones unset in the current environment.
func newVarsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "vars [command-line]",
		Short: "List environment variables referenced by a command line",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			refs := translate.ExtractEnvVars(strings.Join(args, " "))
			seen := make(map[string]bool, len(refs))
			for _, name := range refs {
				if seen[name] {
					continue
				}
				seen[name] = true
				status := "set"
				if _, ok := os.LookupEnv(name); !ok {
					status = "unset"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", name, status)
			}
			return nil
		},
	}
}

func newEscapeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "escape [string]",
		Short: "Single-quote a string for safe use on a POSIX command line",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), translate.EscapeSingleQuoted(strings.Join(args, " ")))
			return nil
		},
	}
}

// newDetectCommand reports the classified host shell.
func newDetectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "detect",
		Short: "Detect the host shell from environment signals",
		RunE: func(cmd *cobra.Command, args []string) error {
			identity := domain.ClassifyShell(domain.SignalsFromEnv())
			fmt.Fprintf(cmd.OutOrStdout(), "shell: %s\n", identity.Name)
			if identity.Raw != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "raw: %s\n", identity.Raw)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "posix: %t\nwindows: %t\n", identity.IsPosix(), identity.IsWindows())
			return nil
		},
	}
}
