package cli

import (
	"github.com/spf13/cobra"

	"github.com/vanisher/vanisher/internal/output"
)

// NewSetCmd creates the set command.
func NewSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Write a value at a dot-notation key and save",
		Long: `Write a value at a dot-notation key and save the config file.

VALUE is parsed as JSON when possible, so numbers, booleans, null,
arrays, and objects keep their types; everything else is stored as a
string.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}

			key, value := args[0], parseValue(args[1])
			st.Set(key, value)
			output.Debug("set key", "key", key, "value", value)
			return st.Save()
		},
	}
}

// NewDelCmd creates the del command.
func NewDelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "del KEY...",
		Short: "Delete one or more dot-notation keys and save",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}

			deleted := st.Delete(args...)
			output.Debug("deleted keys", "count", len(deleted))
			return st.Save()
		},
	}
}
