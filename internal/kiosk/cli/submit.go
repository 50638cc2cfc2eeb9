package cli

import (
	"fmt"

	"github.com/dmitrijs2005/hrakiosk/internal/common"
	"github.com/dmitrijs2005/hrakiosk/internal/kiosk/models"
	"github.com/dmitrijs2005/hrakiosk/internal/kiosk/services"
	"github.com/dmitrijs2005/hrakiosk/internal/kiosk/session"
	"github.com/spf13/cobra"
)

func newSubmitCmd(app *App) *cobra.Command {
	var (
		areaID         string
		badges         []string
		workRequest    string
		note           string
		spot           []float64
		overheadNeeded bool
		overheadHeight string
		ackAll         bool
	)

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Log a high-radiation-area entry",
		Long: `Stages a full operator session from flags and commits it as one entry
record. The safety checklist must be acknowledged with --ack-all; a submit
without it is rejected, matching the kiosk screen flow.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if len(spot) != 0 && len(spot) != 2 {
				return fmt.Errorf("%w: --spot takes exactly two values, x,y", common.ErrorValidation)
			}

			area, err := app.store.Areas.GetByID(ctx, areaID)
			if err != nil {
				return fmt.Errorf("failed to resolve area %s: %w", areaID, err)
			}

			sess := session.New()
			draft := &models.DraftEntry{AreaId: area.Id, AreaName: area.Name}
			if len(spot) == 2 {
				draft.SpotX = &spot[0]
				draft.SpotY = &spot[1]
			}
			sess.UpdateDraft(draft)
			sess.SetCrew(models.CrewDraft{WorkRequest: workRequest, Badges: badges})
			if ackAll {
				sess.SetAcks(models.AckState{
					RWP: true, Briefed: true, Dose: true,
					OnlyAreasBriefed: true, UseMapsForTripTicket: true, ContactRpForQuestions: true,
				})
			}

			record, err := app.entry.Submit(ctx, sess, services.SubmitInput{
				PlanningNote:   note,
				OverheadNeeded: overheadNeeded,
				OverheadHeight: overheadHeight,
			})
			if err != nil {
				return err
			}
			cmd.Printf("logged entry %s for %s with %d badge(s)\n",
				record.Id, record.AreaName, len(record.BadgesMasked))
			return nil
		},
	}

	cmd.Flags().StringVar(&areaID, "area", "", "area id")
	cmd.Flags().StringSliceVar(&badges, "badge", nil, "crew badge number (repeatable)")
	cmd.Flags().StringVar(&workRequest, "work-request", "", "work request number")
	cmd.Flags().StringVar(&note, "note", "", "planning note")
	cmd.Flags().Float64SliceVar(&spot, "spot", nil, "map pin position as x,y fractions of the map image")
	cmd.Flags().BoolVar(&overheadNeeded, "overhead", false, "overhead coverage needed")
	cmd.Flags().StringVar(&overheadHeight, "overhead-height", "", "working height for overhead coverage")
	cmd.Flags().BoolVar(&ackAll, "ack-all", false, "acknowledge the full safety checklist")
	_ = cmd.MarkFlagRequired("area")
	_ = cmd.MarkFlagRequired("badge")
	_ = cmd.MarkFlagRequired("work-request")

	return cmd
}
