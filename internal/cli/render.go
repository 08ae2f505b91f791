package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/halverson/scribe/internal/emit"
)

// NewRenderCommand creates the render command: load a YAML or JSON
// document and emit it as compact nested key/value text.
func NewRenderCommand(opts *RootOptions) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render a YAML or JSON document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := LoadDocument(args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to load document", err)
			}
			opts.verboseLog(cmd.ErrOrStderr(), "loaded %s", args[0])

			out := cmd.OutOrStdout()
			if err := opts.Emitter().Emit(emit.NewSink(out), Wrap(doc), name); err != nil {
				return WrapExitError(ExitFailure, "failed to render document", err)
			}
			fmt.Fprintln(out)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "label the document with a top-level field name")
	return cmd
}
