package cmd

import (
	"fmt"
	"os"

	"recipevault-backend/lib/configutil"
	"recipevault-backend/lib/sqliteutil"
	"recipevault-backend/lib/telemetry"
	"recipevault-backend/services/recipes"
	"recipevault-backend/services/recipes/db"

	"github.com/spf13/cobra"
)

type Config struct {
	// path of a sqlite file or a libsql:// url
	Database string `json:"database"`
}

var service recipes.Service

var verbose bool
var databaseFlag string

var rootCmd = &cobra.Command{
	Use:   "recipes-cli",
	Short: "recipes-cli manages the recipe vault from the terminal.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		telemetry.InitSlog(verbose)
		if verbose {
			tel, err := telemetry.SetupFromEnv(cmd.Context(), "recipes-cli")
			if err != nil && !os.IsNotExist(err) {
				return err
			}
			if err == nil {
				telemetry.InstrumentPerfStats(cmd.Context())
				cobra.OnFinalize(func() {
					tel.Shutdown(cmd.Context())
				})
			}
		}

		location := databaseFlag
		if location == "" {
			config, err := configutil.ReadRecursively[Config]("recipes.json5")
			if err != nil && !os.IsNotExist(err) {
				return err
			}
			location = config.Database
		}
		if location == "" {
			location = "recipes.db"
		}

		database, err := sqliteutil.OpenDB(db.Schema, location)
		if err != nil {
			return fmt.Errorf("open recipe database: %w", err)
		}
		service = recipes.NewService(database)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging/instrumentation.")
	rootCmd.PersistentFlags().StringVar(&databaseFlag, "db", "", "Path of the recipe database, overrides recipes.json5.")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
