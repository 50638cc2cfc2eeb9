package cli

import (
	"context"

	"github.com/dmitrijs2005/hrakiosk/internal/common"
	"github.com/dmitrijs2005/hrakiosk/internal/kiosk/config"
	"github.com/dmitrijs2005/hrakiosk/internal/logging"
	"github.com/spf13/cobra"
)

// Execute runs the root command and returns the process exit code.
func Execute() int {
	log := logging.NewDefault()
	root := NewRootCmd(log)
	if err := root.Execute(); err != nil {
		log.Error(context.Background(), "command failed", "error", err)
		return 1
	}
	return 0
}

// NewRootCmd builds the kiosk command tree. The store is opened before any
// command body runs and closed after it returns.
func NewRootCmd(log logging.Logger) *cobra.Command {
	var (
		configPath string
		dbPath     string
	)
	app := NewApp(log)

	root := &cobra.Command{
		Use:           "kiosk",
		Short:         "High-radiation-area entry logging kiosk",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}
			if dbPath != "" {
				cfg.DatabasePath = dbPath
			}
			app.cfg = cfg
			return app.Open(cmd.Context())
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return app.Close()
		},
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a JSON config file")
	root.PersistentFlags().StringVar(&dbPath, "db", "", "path to the kiosk database file")

	root.AddCommand(
		newSubmitCmd(app),
		newListCmd(app),
		newStatusCmd(app),
		newExportCmd(app),
		newPurgeCmd(app),
		newSeedCmd(app),
		newAreasCmd(app),
		newAdminCmd(app),
	)
	return root
}

// requireAdmin prompts for the PIN unless the gate is unconfigured or this
// invocation already logged in.
func requireAdmin(ctx context.Context, app *App, cmd *cobra.Command) error {
	if app.gate.LoggedIn() {
		return nil
	}
	configured, err := app.gate.Configured(ctx)
	if err != nil {
		return err
	}
	if !configured {
		return nil
	}
	pin, err := GetPIN(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pin)
	return app.gate.Login(ctx, pin)
}
