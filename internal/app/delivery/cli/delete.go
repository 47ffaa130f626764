package cli

import (
	"bufio"
	"fmt"
	"io"
	"konsulin-admin-console/internal/pkg/constvars"
	"strings"

	"github.com/spf13/cobra"
)

func newDeleteCommand(deps Dependencies) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a specialization after confirmation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			confirmed := yes
			if !confirmed {
				confirmed = confirm(cmd.InOrStdin(), cmd.OutOrStdout(), constvars.ConfirmDeleteSpecialization)
			}

			ctx, cancel := commandContext(cmd, deps.Timeout)
			defer cancel()

			list := deps.SpecializationUsecase.NewListState()
			notices := deps.SpecializationUsecase.Delete(ctx, list, args[0], confirmed)
			if !confirmed {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
				return nil
			}
			return printNotices(cmd.OutOrStdout(), notices)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

// confirm accepts y or yes in any case; everything else, EOF included, declines.
func confirm(in io.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", question)
	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
