package cli

import (
	"fmt"
	"konsulin-admin-console/internal/pkg/dto/responses"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newListCommand(deps Dependencies) *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List specializations, optionally filtered by name or description",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd, deps.Timeout)
			defer cancel()

			list := deps.SpecializationUsecase.NewListState()
			if notice := list.FetchAll(ctx); notice != nil {
				return printNotices(cmd.OutOrStdout(), []responses.Notice{*notice})
			}

			records := list.ApplyFilter(query)
			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No specializations found.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tSTATUS\tDESCRIPTION")
			for _, record := range records {
				status := "inactive"
				if record.IsActive {
					status = "active"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", record.Key, record.Name, status, record.Description)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "case-insensitive filter on name or description")
	return cmd
}
