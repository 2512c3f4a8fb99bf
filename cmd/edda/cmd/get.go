package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get <row>",
	Short: "Fetch one row and decode it",
	Long: `Fetch one row and decode its columns against a declared schema.

Examples:
  edda get user:1 --table users
  edda get user:1 --columns name,age --types string,i32`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		decoder, qualifiers, err := resolveSchema(cmd)
		if err != nil {
			return err
		}

		store, ok := storeFromContext(cmd)
		if !ok {
			return fmt.Errorf("store not found in context")
		}

		rd, err := store.GetRow([]byte(args[0]), qualifiers)
		if err != nil {
			return fmt.Errorf("get row: %w", err)
		}

		values, err := decoder.Decode(rd)
		if err != nil {
			return fmt.Errorf("decode row: %w", err)
		}

		printRow(cmd, rd.Key, qualifiers, values)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
	addSchemaFlags(getCmd)
}
