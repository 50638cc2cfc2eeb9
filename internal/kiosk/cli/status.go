package cli

import (
	"fmt"

	"github.com/dmitrijs2005/hrakiosk/internal/common"
	"github.com/dmitrijs2005/hrakiosk/internal/kiosk/models"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status <entry-id> <new-status>",
		Short: "Move an entry through the review pipeline",
		Long: `Sets the review status of an entry. Any valid status is accepted from
any current status; a jump outside the normal pipeline only prints a
warning, since administrators keep discretion over the queue.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := requireAdmin(ctx, app, cmd); err != nil {
				return err
			}

			id := args[0]
			next := models.EntryStatus(args[1])
			if !next.Valid() {
				return fmt.Errorf("%w: unknown status %q (valid: %s)",
					common.ErrorValidation, args[1], joinStatuses())
			}

			current, err := app.admin.GetEntry(ctx, id)
			if err != nil {
				return err
			}
			if current.Status != next && !models.CanTransition(current.Status, next) {
				cmd.PrintErrf("warning: %s to %s is outside the normal pipeline\n",
					current.Status, next)
			}

			if err := app.admin.MarkStatus(ctx, id, next); err != nil {
				return err
			}
			cmd.Printf("entry %s: %s -> %s\n", id, current.Status, next)
			return nil
		},
	}
	return cmd
}
