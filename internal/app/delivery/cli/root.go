// Package cli is specctl, the terminal counterpart of the specialization
// management screen.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"konsulin-admin-console/internal/app/contracts"
	"konsulin-admin-console/internal/pkg/dto/responses"
	"konsulin-admin-console/internal/pkg/utils"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var errActionFailed = errors.New("action failed")

type Dependencies struct {
	SpecializationUsecase contracts.SpecializationUsecase
	APIClient             contracts.APIClient
	Log                   *zap.Logger
	In                    io.Reader
	Out                   io.Writer
	Timeout               time.Duration
}

func NewRootCommand(deps Dependencies) *cobra.Command {
	root := &cobra.Command{
		Use:           "specctl",
		Short:         "Manage Konsulin specializations from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = deps.Log.Sync()
		},
	}
	root.SetIn(deps.In)
	root.SetOut(deps.Out)
	root.SetErr(deps.Out)

	root.AddCommand(
		newListCommand(deps),
		newToggleCommand(deps),
		newDeleteCommand(deps),
		newHealthCommand(deps),
	)
	return root
}

// commandContext tags the command with its own request id so backend logs
// can be correlated.
func commandContext(cmd *cobra.Command, timeout time.Duration) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = utils.ContextWithRequestID(ctx, utils.GenerateRequestID())
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

// printNotices writes one line per notice and reports errActionFailed when
// any of them is destructive, so the exit status follows the outcome.
func printNotices(out io.Writer, notices []responses.Notice) error {
	failed := false
	for _, notice := range notices {
		fmt.Fprintf(out, "[%s] %s\n", notice.Title, notice.Description)
		if notice.IsDestructive() {
			failed = true
		}
	}
	if failed {
		return errActionFailed
	}
	return nil
}
