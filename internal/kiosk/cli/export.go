package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/hrakiosk/internal/filex"
	"github.com/dmitrijs2005/hrakiosk/internal/kiosk/export"
	"github.com/dmitrijs2005/hrakiosk/internal/kiosk/repositories/entries"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var (
		statusFlag string
		formatFlag string
		outPath    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export entries and stamp them as exported",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := requireAdmin(ctx, app, cmd); err != nil {
				return err
			}

			status, err := parseStatusFlag(statusFlag)
			if err != nil {
				return err
			}
			format, err := export.ParseFormat(formatFlag)
			if err != nil {
				return err
			}

			out, n, err := app.admin.Export(ctx, entries.Filter{Status: status}, format)
			if err != nil {
				return err
			}

			if outPath == "" {
				dir, err := filex.EnsureDir(app.cfg.ExportDir)
				if err != nil {
					return err
				}
				name := fmt.Sprintf("hra_entries_%s.%s",
					time.Now().UTC().Format("20060102T150405Z"), format)
				outPath = filepath.Join(dir, name)
			}
			if err := os.WriteFile(outPath, out, 0o644); err != nil {
				return fmt.Errorf("failed to write export file: %w", err)
			}
			cmd.Printf("exported %d entr%s to %s\n", n, plural(n, "y", "ies"), outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&statusFlag, "status", "", "only entries with this status")
	cmd.Flags().StringVar(&formatFlag, "format", "csv", "export format: csv or json")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default: generated name in the export dir)")
	return cmd
}

func newPurgeCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Delete entries older than the retention window",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := requireAdmin(ctx, app, cmd); err != nil {
				return err
			}

			if !cmd.Flags().Changed("days") {
				days = app.cfg.RetentionDays
			}
			n, err := app.admin.Purge(ctx, days)
			if err != nil {
				return err
			}
			if days <= 0 {
				cmd.Println("retention disabled, nothing purged")
				return nil
			}
			cmd.Printf("purged %d entr%s older than %d days\n", n, plural(n, "y", "ies"), days)
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 0, "retention window in days (default: configured value)")
	return cmd
}
