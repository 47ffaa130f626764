package cli

import (
	"fmt"
	"konsulin-admin-console/internal/pkg/constvars"
	"konsulin-admin-console/internal/pkg/exceptions"

	"github.com/spf13/cobra"
)

func newHealthCommand(deps Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the backend answers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd, deps.Timeout)
			defer cancel()

			status, err := deps.APIClient.Health(ctx)
			if err != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "backend unreachable: %s\n", exceptions.ClientMessageOf(err, constvars.ErrClientBackendUnreachable))
				return errActionFailed
			}
			if !status.Reachable {
				fmt.Fprintf(cmd.OutOrStdout(), "backend unhealthy: %s\n", status.Message)
				return errActionFailed
			}
			fmt.Fprintf(cmd.OutOrStdout(), "backend healthy (%d)\n", status.StatusCode)
			return nil
		},
	}
}
