package cmd

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan a row range and decode every row",
	Long: `Scan a row range and decode every row against a declared schema.
Rows that fail to decode are reported and skipped; the scan continues.

Examples:
  edda scan --table users
  edda scan --start user:1 --end user:9 --columns name,age --types string,i32
  edda scan --table users --metrics-listen :9464`,
	RunE: func(cmd *cobra.Command, args []string) error {
		decoder, qualifiers, err := resolveSchema(cmd)
		if err != nil {
			return err
		}

		if addr, _ := cmd.Flags().GetString("metrics-listen"); addr != "" {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			go func() {
				if err := http.ListenAndServe(addr, mux); err != nil {
					cmd.PrintErrf("metrics listener: %v\n", err)
				}
			}()
		}

		store, ok := storeFromContext(cmd)
		if !ok {
			return fmt.Errorf("store not found in context")
		}

		startKey, _ := cmd.Flags().GetString("start")
		endKey, _ := cmd.Flags().GetString("end")
		var start, end []byte
		if startKey != "" {
			start = []byte(startKey)
		}
		if endKey != "" {
			end = []byte(endKey)
		}

		it, err := store.Scan(start, end, qualifiers)
		if err != nil {
			return fmt.Errorf("scan: %w", err)
		}
		defer it.Close()

		decoded, failed := 0, 0
		for it.Next() {
			rd := it.Row()
			values, err := decoder.Decode(rd)
			if err != nil {
				// Skip-row policy: decoding failures belong to the caller,
				// and for the CLI the caller is the operator.
				cmd.PrintErrf("%s\tdecode error: %v\n", rd.Key, err)
				failed++
				continue
			}
			printRow(cmd, rd.Key, qualifiers, values)
			decoded++
		}
		if err := it.Err(); err != nil {
			return fmt.Errorf("scan: %w", err)
		}

		cmd.Printf("%d rows decoded, %d failed\n", decoded, failed)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
	addSchemaFlags(scanCmd)

	scanCmd.Flags().String("start", "", "First row key of the scan range (inclusive)")
	scanCmd.Flags().String("end", "", "Row key the scan stops before (exclusive)")
	scanCmd.Flags().String("metrics-listen", "", "Expose Prometheus metrics on this address during the scan")
}
