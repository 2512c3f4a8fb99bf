package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ssargent/edda/pkg/rows"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "edda",
	Short: "edda - typed decoding for wide-column row data",
	Long: `edda stores raw wide-column cells in an embedded pebble database and
decodes rows into typed values using declared column schemas.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		dataDir, _ := cmd.Flags().GetString("data-dir")
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return fmt.Errorf("failed to create data dir: %w", err)
		}
		store := rows.NewStore(rows.Config{DataDir: dataDir})
		if err := store.Open(); err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}
		// Store in command context
		cmd.SetContext(context.WithValue(cmd.Context(), "store", store))
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if store, ok := storeFromContext(cmd); ok {
			return store.Close()
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global data directory and config flags
	rootCmd.PersistentFlags().StringP("data-dir", "d", "./data", "Data directory for the store")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Config file with table schemas (default ~/.config/edda/config.yaml)")
}

func storeFromContext(cmd *cobra.Command) (*rows.Store, bool) {
	store, ok := cmd.Context().Value("store").(*rows.Store)
	return store, ok
}
