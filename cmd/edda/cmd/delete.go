package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete <row> [qualifier]",
	Short: "Delete a cell or a whole row",
	Long: `Delete a single cell, or every cell of a row when no qualifier is given.

Examples:
  edda delete user:1 email
  edda delete user:1`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, ok := storeFromContext(cmd)
		if !ok {
			return fmt.Errorf("store not found in context")
		}

		row := []byte(args[0])
		if len(args) == 2 {
			if err := store.DeleteCell(row, args[1]); err != nil {
				return fmt.Errorf("delete cell: %w", err)
			}
			return nil
		}
		if err := store.DeleteRow(row); err != nil {
			return fmt.Errorf("delete row: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
