package cli

import (
	"fmt"
	"os"

	"github.com/dmitrijs2005/hrakiosk/internal/common"
	"github.com/spf13/cobra"
)

func newSeedCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed [file]",
		Short: "Replace the areas collection from a seed file",
		Long: `Loads an area seed document (JSON or YAML, flat list or grouped under
ctmt/rhr keys) and replaces the whole areas collection with it. Without an
argument the configured seed file is used. Entry records are not touched.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := requireAdmin(ctx, app, cmd); err != nil {
				return err
			}

			path := app.cfg.SeedFile
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				return fmt.Errorf("%w: no seed file given and none configured", common.ErrorValidation)
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read seed file: %w", err)
			}
			n, err := app.admin.Seed(ctx, data)
			if err != nil {
				return err
			}
			cmd.Printf("seeded %d area%s from %s\n", n, plural(n, "", "s"), path)
			return nil
		},
	}
	return cmd
}
