package cli

import (
	"github.com/spf13/cobra"

	"github.com/halverson/scribe/internal/emit"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Escape  bool // apply JSON escaping to text output
}

// Emitter returns an emitter configured from the global flags.
func (o *RootOptions) Emitter() *emit.Emitter {
	return &emit.Emitter{EscapeStrings: o.Escape}
}

// NewRootCommand creates the root command for the scribe CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "scribe",
		Short:         "Scribe - schema-less structural rendering",
		Long:          "Renders values and documents into compact nested key/value text, dispatching on structural shape instead of a schema.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().BoolVar(&opts.Escape, "escape", false, "JSON-escape text output")

	// Add subcommands
	cmd.AddCommand(NewRenderCommand(opts))
	cmd.AddCommand(NewSeedCommand(opts))
	cmd.AddCommand(NewDumpCommand(opts))

	return cmd
}
