package cli

import "github.com/spf13/cobra"

func newToggleCommand(deps Dependencies) *cobra.Command {
	var current bool

	cmd := &cobra.Command{
		Use:   "toggle <id>",
		Short: "Flip the active flag of a specialization",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd, deps.Timeout)
			defer cancel()

			list := deps.SpecializationUsecase.NewListState()
			notices := deps.SpecializationUsecase.ToggleActive(ctx, list, args[0], current)
			return printNotices(cmd.OutOrStdout(), notices)
		},
	}
	cmd.Flags().BoolVar(&current, "current", false, "the active flag the record has now")
	_ = cmd.MarkFlagRequired("current")
	return cmd
}
