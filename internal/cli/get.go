package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewGetCommand creates the get command
func NewGetCommand(bootstrap bootstrapFunc) *cobra.Command {
	var showSource bool

	cmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Print the effective value of a property",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := bootstrap(cmd)
			if err != nil {
				return err
			}

			key := args[0]
			value, from, ok := env.Registry.Lookup(key)
			if !ok {
				return fmt.Errorf("%w: %s", ErrPropertyNotFound, key)
			}

			if showSource {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", value, from)
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&showSource, "show-source", "s", false, "Also print the registry source the value came from")

	return cmd
}
