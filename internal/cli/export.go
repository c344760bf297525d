package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewExportCmd creates the export command.
func NewExportCmd() *cobra.Command {
	var format string
	var outFile string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Serialize the whole config as JSON, YAML, or TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}

			out, err := st.Export(format)
			if err != nil {
				return err
			}

			if outFile != "" {
				return os.WriteFile(outFile, []byte(out), 0o600)
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format: json, yaml, toml")
	cmd.Flags().StringVarP(&outFile, "output", "o", "", "Write to a file instead of stdout")

	return cmd
}
