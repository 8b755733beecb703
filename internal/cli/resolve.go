package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-track/internal/propfile"
)

// Output formats accepted by --output.
const (
	FormatProperties = "properties"
	FormatJSON       = "json"
	FormatYAML       = "yaml"
)

// NewResolveCommand creates the resolve command
func NewResolveCommand(bootstrap bootstrapFunc) *cobra.Command {
	var (
		output string
		all    bool
	)

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the merged external configuration",
		Long: `Resolve the user, environment-variable and process-property
configuration files and print the merged properties.

With --all the whole registry is printed instead: process properties and
environment variables included, each key resolved with registry precedence.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := bootstrap(cmd)
			if err != nil {
				return err
			}

			props := env.View.Map()
			if all {
				props = env.Registry.Snapshot()
			}

			return writeProperties(cmd.OutOrStdout(), props, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", FormatProperties, "Output format: properties, json or yaml")
	cmd.Flags().BoolVar(&all, "all", false, "Print every registry property, not only external configuration")

	return cmd
}

func writeProperties(w io.Writer, props map[string]string, format string) error {
	switch format {
	case FormatProperties:
		return propfile.Encode(w, props)
	case FormatJSON:
		data, err := json.MarshalIndent(props, "", "  ")
		if err != nil {
			return fmt.Errorf("error encoding json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(props); err != nil {
			return fmt.Errorf("error encoding yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOutputFormat, format)
	}
}
