// Package cli provides the vanisher command-line interface.
package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vanisher/vanisher"
	"github.com/vanisher/vanisher/internal/output"

	// Register the optional export formats.
	_ "github.com/vanisher/vanisher/codectoml"
	_ "github.com/vanisher/vanisher/codecyaml"
)

var (
	// Global flags
	configFlag  string
	verboseFlag bool
	noEnvFlag   bool
)

// NewRootCmd creates the root command for the vanisher CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "vanisher",
		Short:         "Hierarchical JSON configuration from the command line",
		Long:          `vanisher reads and writes dot-notation keys in a JSON config file, with environment variable overrides and YAML/TOML export.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.Setup(verboseFlag)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "config.json", "Path to the JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noEnvFlag, "no-env", false, "Ignore environment variable overrides")

	rootCmd.AddCommand(NewGetCmd())
	rootCmd.AddCommand(NewSetCmd())
	rootCmd.AddCommand(NewDelCmd())
	rootCmd.AddCommand(NewKeysCmd())
	rootCmd.AddCommand(NewMergeCmd())
	rootCmd.AddCommand(NewImportCmd())
	rootCmd.AddCommand(NewExportCmd())

	return rootCmd
}

// openStore opens the config file named by --config.
func openStore() (*vanisher.Store, error) {
	output.Debug("opening config", "path", configFlag)
	return vanisher.Open(configFlag, vanisher.WithEnvOverride(!noEnvFlag))
}

// formatValue renders a resolved value for terminal output: strings
// print as-is, composites print as compact JSON.
func formatValue(v any) (string, error) {
	switch vv := v.(type) {
	case nil:
		return "null", nil
	case string:
		return vv, nil
	case map[string]any, []any:
		data, err := json.Marshal(vv)
		if err != nil {
			return "", fmt.Errorf("format value: %w", err)
		}
		return string(data), nil
	default:
		return fmt.Sprint(vv), nil
	}
}

// parseValue interprets a command-line value: valid JSON becomes the
// decoded value (numbers, booleans, null, composites), anything else
// stays a plain string.
func parseValue(raw string) any {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err == nil {
		return v
	}
	return raw
}

// formatFromExt maps a file extension to a codec name.
func formatFromExt(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json", nil
	case ".yaml", ".yml":
		return "yaml", nil
	case ".toml":
		return "toml", nil
	default:
		return "", fmt.Errorf("cannot infer format from %q (supported: .json, .yaml, .yml, .toml)", filepath.Base(path))
	}
}
