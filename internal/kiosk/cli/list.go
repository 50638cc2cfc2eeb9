package cli

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/hrakiosk/internal/common"
	"github.com/dmitrijs2005/hrakiosk/internal/kiosk/models"
	"github.com/dmitrijs2005/hrakiosk/internal/kiosk/repositories/entries"
	"github.com/spf13/cobra"
)

func parseStatusFlag(s string) (*models.EntryStatus, error) {
	if s == "" {
		return nil, nil
	}
	status := models.EntryStatus(s)
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q (valid: %s)",
			common.ErrorValidation, s, joinStatuses())
	}
	return &status, nil
}

func joinStatuses() string {
	names := make([]string, len(models.AllStatuses))
	for i, s := range models.AllStatuses {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

func newListCmd(app *App) *cobra.Command {
	var (
		statusFlag string
		descending bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List entry records",
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := parseStatusFlag(statusFlag)
			if err != nil {
				return err
			}
			records, err := app.admin.List(cmd.Context(), entries.Filter{
				Status:     status,
				Descending: descending,
			})
			if err != nil {
				return err
			}
			for i := range records {
				r := &records[i]
				cmd.Printf("%s  %s  %-13s  %-24s  %s  %s\n",
					r.Id, r.Timestamp, r.Status, r.AreaName,
					r.WorkRequest, strings.Join(r.BadgesMasked, ";"))
			}
			cmd.Printf("%d entr%s\n", len(records), plural(len(records), "y", "ies"))
			return nil
		},
	}

	cmd.Flags().StringVar(&statusFlag, "status", "", "only entries with this status")
	cmd.Flags().BoolVar(&descending, "desc", false, "newest first")
	return cmd
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
