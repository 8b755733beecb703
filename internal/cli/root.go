package cli

import (
	"flag"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-track/internal/app"
	"github.com/MKhiriev/go-track/internal/config"
	"github.com/MKhiriev/go-track/internal/logger"
	"github.com/MKhiriev/go-track/models"
)

// Exit codes
const (
	ExitSuccess = 0
	ExitFailure = 1
)

const role = "trackctl"

// bootstrapFunc resolves the process environment for a command.
type bootstrapFunc func(cmd *cobra.Command) (*app.Environment, error)

// NewRootCommand returns the trackctl command tree. Bootstrap flags are
// registered as persistent flags so every subcommand accepts them.
func NewRootCommand(info models.AppBuildInfo) *cobra.Command {
	goFlags := flag.NewFlagSet(role, flag.ContinueOnError)
	flags := config.RegisterFlags(goFlags)

	rootCmd := &cobra.Command{
		Use:           role,
		Short:         "Inspect layered external configuration",
		Long:          "trackctl resolves the user, environment-variable and process-property configuration files the way the application does and prints the result.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().AddGoFlagSet(goFlags)

	bootstrap := func(cmd *cobra.Command) (*app.Environment, error) {
		cfg, err := config.GetStructuredConfig(flags)
		if err != nil {
			return nil, fmt.Errorf("error getting configs: %w", err)
		}

		log := logger.New(cmd.ErrOrStderr(), role, cfg.Log.Level)
		log.Debug().Any("config", cfg).Msg("received configs")

		return app.New(cfg, log).Bootstrap(), nil
	}

	rootCmd.AddCommand(
		NewResolveCommand(bootstrap),
		NewGetCommand(bootstrap),
		NewSourcesCommand(bootstrap),
		NewCheckCommand(bootstrap),
		NewVersionCommand(info),
	)

	return rootCmd
}

// Run executes the root command and returns an exit code.
func Run(info models.AppBuildInfo) int {
	if err := NewRootCommand(info).Execute(); err != nil {
		// Cobra already prints the error
		return ExitFailure
	}

	return ExitSuccess
}
