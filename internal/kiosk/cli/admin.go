package cli

import (
	"bytes"
	"fmt"

	"github.com/dmitrijs2005/hrakiosk/internal/common"
	"github.com/spf13/cobra"
)

func newAdminCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Kiosk administration",
	}
	cmd.AddCommand(
		newAdminSetPinCmd(app),
		newAdminClearPinCmd(app),
		newAdminClearEntriesCmd(app),
	)
	return cmd
}

func newAdminSetPinCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-pin",
		Short: "Set or replace the admin PIN",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			// Replacing an existing PIN requires knowing it.
			if err := requireAdmin(ctx, app, cmd); err != nil {
				return err
			}

			pin, err := GetPIN(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer common.WipeByteArray(pin)

			confirm, err := GetPIN(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer common.WipeByteArray(confirm)

			if !bytes.Equal(pin, confirm) {
				return fmt.Errorf("%w: pins do not match", common.ErrorValidation)
			}
			if err := app.gate.SetPIN(ctx, pin); err != nil {
				return err
			}
			cmd.Println("admin pin set")
			return nil
		},
	}
	return cmd
}

func newAdminClearPinCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear-pin",
		Short: "Remove the admin PIN, leaving the dashboard open",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := requireAdmin(ctx, app, cmd); err != nil {
				return err
			}
			if err := app.gate.ClearPIN(ctx); err != nil {
				return err
			}
			cmd.Println("admin pin cleared")
			return nil
		},
	}
	return cmd
}

func newAdminClearEntriesCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear-entries",
		Short: "Delete every entry record",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := requireAdmin(ctx, app, cmd); err != nil {
				return err
			}
			if !yes {
				return fmt.Errorf("%w: pass --yes to confirm deleting all entries", common.ErrorValidation)
			}
			if err := app.admin.ClearEntries(ctx); err != nil {
				return err
			}
			cmd.Println("all entries cleared")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the deletion")
	return cmd
}
