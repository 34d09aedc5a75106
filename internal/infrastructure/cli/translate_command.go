package cli

import (
	"context"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/doeshing/shellbridge/internal/app"
	"github.com/doeshing/shellbridge/internal/domain"
)

func newTranslateCommand(container *app.Container) *cobra.Command {
	var (
		to        string
		run       bool
		noHistory bool
		timeout   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "translate [command-line]",
		Short: "Translate a command line to the other dialect",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}
			req := domain.TranslateRequest{
				Context:   ctx,
				Command:   strings.Join(args, " "),
				Direction: domain.Direction(to),
				Execute:   run,
				NoHistory: noHistory,
			}
			resp, err := container.BridgeService.Run(req)
			if err != nil {
				return err
			}
			RenderResponse(cmd.OutOrStdout(), cmd.ErrOrStderr(), resp)
			if resp.ExecutionResult != nil && resp.ExecutionResult.Err != nil {
				return resp.ExecutionResult.Err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", string(domain.DirectionAuto), "Target dialect (auto|to-powershell|to-bash)")
	cmd.Flags().BoolVar(&run, "run", false, "Execute the translated command in the host shell")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "Skip recording this translation")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Override execution timeout")

	return cmd
}
