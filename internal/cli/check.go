package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// NewCheckCommand creates the check command
func NewCheckCommand(bootstrap bootstrapFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Bind and validate the application settings",
		Long: `Resolve the configuration, bind it to the typed application settings
and validate them. Exits non-zero when a required setting is missing or a
value is invalid. Secrets are masked in the output.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := bootstrap(cmd)
			if err != nil {
				return err
			}

			settings, err := env.Settings(cmd.Context())
			if err != nil {
				return err
			}

			data, err := yaml.Marshal(settings.Redacted())
			if err != nil {
				return fmt.Errorf("error encoding settings: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Settings are valid")
			fmt.Fprint(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}
