package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ssargent/edda/pkg/codec"
	"github.com/ssargent/edda/pkg/config"
)

// resolveSchema builds the row decoder and qualifier list a command should
// use, either from a named table in the config file or from explicit
// --columns/--types flags.
func resolveSchema(cmd *cobra.Command) (codec.Decoder[[]any], []string, error) {
	tableName, _ := cmd.Flags().GetString("table")
	columns, _ := cmd.Flags().GetString("columns")
	types, _ := cmd.Flags().GetString("types")

	if tableName != "" {
		cfg, err := loadConfigFlag(cmd)
		if err != nil {
			return nil, nil, err
		}
		tbl, ok := cfg.Table(tableName)
		if !ok {
			return nil, nil, fmt.Errorf("table %q not found in config", tableName)
		}
		decoder, err := codec.DefaultRegistry().Schema(tbl.TypeSpec())
		if err != nil {
			return nil, nil, err
		}
		return decoder, tbl.Qualifiers(), nil
	}

	if columns == "" || types == "" {
		return nil, nil, fmt.Errorf("either --table or both --columns and --types are required")
	}
	qualifiers := splitList(columns)
	decoder, err := codec.DefaultRegistry().Schema(types)
	if err != nil {
		return nil, nil, err
	}
	if decoder.Arity() != len(qualifiers) {
		return nil, nil, fmt.Errorf("%d columns but %d types", len(qualifiers), decoder.Arity())
	}
	return decoder, qualifiers, nil
}

func loadConfigFlag(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.GetDefaultConfigPath()
	}
	return config.LoadConfig(path)
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// formatValue renders a decoded value for terminal output.
func formatValue(v any) string {
	switch x := v.(type) {
	case codec.Null[any]:
		if !x.Valid {
			return "NULL"
		}
		return formatValue(x.V)
	case []byte:
		return fmt.Sprintf("0x%x", x)
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}

// printRow writes one decoded row as qualifier=value pairs.
func printRow(cmd *cobra.Command, key []byte, qualifiers []string, values []any) {
	pairs := make([]string, len(values))
	for i, v := range values {
		pairs[i] = fmt.Sprintf("%s=%s", qualifiers[i], formatValue(v))
	}
	cmd.Printf("%s\t%s\n", key, strings.Join(pairs, "\t"))
}

func addSchemaFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("table", "t", "", "Table schema name from the config file")
	cmd.Flags().String("columns", "", "Comma-separated column qualifiers (with --types)")
	cmd.Flags().String("types", "", "Comma-separated codec type tags, e.g. i32,?string (with --columns)")
}
