package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/halverson/scribe/internal/emit"
	"github.com/halverson/scribe/internal/store"
)

// NewDumpCommand creates the dump command: emit a stored roster as
// `"employees":[...]`.
func NewDumpCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "dump <db>",
		Short: "Render the roster stored in a database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := store.Open(args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to open database", err)
			}
			defer st.Close()

			records, err := st.LoadAll()
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to load records", err)
			}
			opts.verboseLog(cmd.ErrOrStderr(), "loaded %d records", len(records))

			out := cmd.OutOrStdout()
			if err := opts.Emitter().Emit(emit.NewSink(out), records, "employees"); err != nil {
				return WrapExitError(ExitFailure, "failed to render roster", err)
			}
			fmt.Fprintln(out)
			return nil
		},
	}
}
