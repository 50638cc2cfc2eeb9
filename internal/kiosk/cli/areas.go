package cli

import (
	"fmt"

	"github.com/dmitrijs2005/hrakiosk/internal/common"
	"github.com/dmitrijs2005/hrakiosk/internal/kiosk/models"
	"github.com/spf13/cobra"
)

func newAreasCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "areas",
		Short: "Manage the area catalog",
	}
	cmd.AddCommand(
		newAreasListCmd(app),
		newAreasAddCmd(app),
		newAreasSetMapCmd(app),
		newAreasDeleteCmd(app),
	)
	return cmd
}

func parseCategoryFlag(s string) (models.AreaCategory, error) {
	switch models.AreaCategory(s) {
	case "", models.CategoryCTMT, models.CategoryRHR:
		return models.AreaCategory(s), nil
	default:
		return "", fmt.Errorf("%w: unknown category %q (valid: %s, %s)",
			common.ErrorValidation, s, models.CategoryCTMT, models.CategoryRHR)
	}
}

func newAreasListCmd(app *App) *cobra.Command {
	var categoryFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List areas",
		RunE: func(cmd *cobra.Command, args []string) error {
			category, err := parseCategoryFlag(categoryFlag)
			if err != nil {
				return err
			}
			list, err := app.admin.Areas(cmd.Context(), category)
			if err != nil {
				return err
			}
			for i := range list {
				a := &list[i]
				cmd.Printf("%s  %-4s  %-28s  %s\n",
					a.Id, a.ResolvedCategory(), a.Name, a.MapPathOrPlaceholder())
			}
			cmd.Printf("%d area%s\n", len(list), plural(len(list), "", "s"))
			return nil
		},
	}

	cmd.Flags().StringVar(&categoryFlag, "category", "", "only areas in this category")
	return cmd
}

func newAreasAddCmd(app *App) *cobra.Command {
	var (
		name         string
		categoryFlag string
		mapPath      string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an area",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := requireAdmin(ctx, app, cmd); err != nil {
				return err
			}
			category, err := parseCategoryFlag(categoryFlag)
			if err != nil {
				return err
			}
			area, err := app.admin.CreateArea(ctx, name, category, mapPath)
			if err != nil {
				return err
			}
			cmd.Printf("created area %s (%s)\n", area.Id, area.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "area display name")
	cmd.Flags().StringVar(&categoryFlag, "category", "", "area category (default CTMT)")
	cmd.Flags().StringVar(&mapPath, "map", "", "map image path (default: placeholder)")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newAreasSetMapCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-map <area-id> <map-path>",
		Short: "Point an area at a new map image",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := requireAdmin(ctx, app, cmd); err != nil {
				return err
			}
			if err := app.admin.UpdateAreaMap(ctx, args[0], args[1]); err != nil {
				return err
			}
			cmd.Printf("area %s map set to %s\n", args[0], args[1])
			return nil
		},
	}
	return cmd
}

func newAreasDeleteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <area-id>",
		Short: "Delete an area",
		Long: `Deletes an area from the catalog. Existing entry records keep their
snapshotted area id and name and are unaffected.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := requireAdmin(ctx, app, cmd); err != nil {
				return err
			}
			if err := app.admin.DeleteArea(ctx, args[0]); err != nil {
				return err
			}
			cmd.Printf("deleted area %s\n", args[0])
			return nil
		},
	}
	return cmd
}
