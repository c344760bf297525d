package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewGetCmd creates the get command.
func NewGetCmd() *cobra.Command {
	var defaultValue string

	cmd := &cobra.Command{
		Use:   "get KEY",
		Short: "Print the value at a dot-notation key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}

			key := args[0]
			if !st.Has(key) {
				if cmd.Flags().Changed("default") {
					fmt.Fprintln(cmd.OutOrStdout(), defaultValue)
					return nil
				}
				return fmt.Errorf("key %q not found in %s", key, st.File())
			}

			out, err := formatValue(st.Get(key, nil))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&defaultValue, "default", "", "Value to print when the key is missing")

	return cmd
}

// NewKeysCmd creates the keys command.
func NewKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List every leaf key as a dot-notation path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}
			for _, key := range st.Keys() {
				fmt.Fprintln(cmd.OutOrStdout(), key)
			}
			return nil
		},
	}
}
