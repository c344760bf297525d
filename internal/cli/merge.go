package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vanisher/vanisher"
	"github.com/vanisher/vanisher/internal/output"
)

// NewMergeCmd creates the merge command.
func NewMergeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "merge FILE",
		Short: "Deep-merge a JSON, YAML, or TOML file into the config and save",
		Long: `Deep-merge a JSON, YAML, or TOML file into the config file and save.

Keys that are mappings on both sides merge recursively; everything
else is overwritten by the incoming file. Format is inferred from the
file extension.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := formatFromExt(args[0])
			if err != nil {
				return err
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}

			m, err := vanisher.Decode(format, data)
			if err != nil {
				return err
			}

			st, err := openStore()
			if err != nil {
				return err
			}

			st.Merge(m)
			output.Debug("merged file", "file", args[0], "format", format)
			return st.Save()
		},
	}
}

// NewImportCmd creates the import command.
func NewImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Merge JSON data into the config and save",
		Long: `Merge JSON data into the config file and save.

FILE may be "-" to read from standard input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var data []byte
			var err error
			if args[0] == "-" {
				data, err = io.ReadAll(cmd.InOrStdin())
			} else {
				data, err = os.ReadFile(args[0])
			}
			if err != nil {
				return fmt.Errorf("read import data: %w", err)
			}

			st, err := openStore()
			if err != nil {
				return err
			}

			if err := st.ImportData(data); err != nil {
				return err
			}
			return st.Save()
		},
	}
}
