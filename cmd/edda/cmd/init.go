package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ssargent/edda/pkg/config"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter config file with a sample table schema",
	Long: `Write a starter config file with a sample table schema.

Example:
  edda init --config ./edda.yaml --data-dir ./data`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		if path == "" {
			path = config.GetDefaultConfigPath()
		}
		dataDir, _ := cmd.Flags().GetString("data-dir")
		force, _ := cmd.Flags().GetBool("force")

		if config.ConfigExists(path) && !force {
			cmd.Printf("Config already exists at %s. Use --force to overwrite.\n", path)
			return nil
		}

		cfg, err := config.BootstrapConfig(path, dataDir)
		if err != nil {
			return err
		}

		cmd.Printf("Wrote config to %s\n", path)
		for _, tbl := range cfg.Tables {
			cmd.Printf("  table %s: %s\n", tbl.Name, tbl.TypeSpec())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().Bool("force", false, "Overwrite an existing config file")
}
