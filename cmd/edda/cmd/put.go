package cmd

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ssargent/edda/pkg/rows"
)

// putCmd represents the put command
var putCmd = &cobra.Command{
	Use:   "put <row> <qualifier> <value>",
	Short: "Write the raw bytes of one cell",
	Long: `Write the raw bytes of one cell. Values are stored verbatim: edda has
no typed write path, so fixed-width column layouts must be supplied as hex.

Examples:
  edda put user:1 name alice
  edda put user:1 age --hex 0000002a
  edda put --auto-key name alice`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		autoKey, _ := cmd.Flags().GetBool("auto-key")
		isHex, _ := cmd.Flags().GetBool("hex")

		var row []byte
		var qualifier, raw string
		if autoKey {
			if len(args) != 2 {
				return fmt.Errorf("with --auto-key: put <qualifier> <value>")
			}
			row = rows.NewRowKey()
			qualifier, raw = args[0], args[1]
		} else {
			if len(args) != 3 {
				return fmt.Errorf("put <row> <qualifier> <value>")
			}
			row = []byte(args[0])
			qualifier, raw = args[1], args[2]
		}

		value, err := parseCellValue(raw, isHex)
		if err != nil {
			return err
		}

		store, ok := storeFromContext(cmd)
		if !ok {
			return fmt.Errorf("store not found in context")
		}
		if err := store.PutCell(row, qualifier, value); err != nil {
			return fmt.Errorf("put cell: %w", err)
		}

		if autoKey {
			cmd.Printf("%s\n", row)
		}
		return nil
	},
}

// parseCellValue turns a command-line value into cell bytes. Hex values may
// carry an 0x prefix.
func parseCellValue(raw string, isHex bool) ([]byte, error) {
	if !isHex {
		return []byte(raw), nil
	}
	cleaned := strings.TrimPrefix(strings.ToLower(raw), "0x")
	value, err := hex.DecodeString(cleaned)
	if err != nil {
		return nil, fmt.Errorf("invalid hex value %q: %w", raw, err)
	}
	return value, nil
}

func init() {
	rootCmd.AddCommand(putCmd)

	putCmd.Flags().Bool("hex", false, "Interpret the value as hex bytes")
	putCmd.Flags().Bool("auto-key", false, "Generate a KSUID row key and print it")
}
