package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-track/internal/app"
	"github.com/MKhiriev/go-track/internal/pipeline"
)

// NewSourcesCommand creates the sources command
func NewSourcesCommand(bootstrap bootstrapFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "sources",
		Short: "Show what each configuration source contributed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := bootstrap(cmd)
			if err != nil {
				return err
			}

			return printSources(cmd.OutOrStdout(), env)
		},
	}
}

func printSources(w io.Writer, env *app.Environment) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	if env.Tag != "" {
		fmt.Fprintf(tw, "Active environment:\t%s\n\n", env.Tag)
	}

	fmt.Fprintln(tw, "SOURCE\tSTATUS\tDETAIL")
	for _, o := range env.View.Outcomes() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", o.Source, o.Status, outcomeDetail(o))
	}

	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "PRECEDENCE\tREGISTRY SOURCE\tKEYS")
	for i, src := range env.Registry.Sources() {
		fmt.Fprintf(tw, "%d\t%s\t%d\n", i+1, src.Name(), len(src.Keys()))
	}

	return tw.Flush()
}

func outcomeDetail(o pipeline.Outcome) string {
	switch {
	case o.Err != nil:
		return o.Err.Error()
	case o.Set == nil:
		return "-"
	case o.Status == pipeline.StatusLoaded:
		return fmt.Sprintf("%s (%d properties)", o.Set.Provenance(), o.Set.Len())
	default:
		return o.Set.Provenance()
	}
}
