package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/halverson/scribe/internal/employees"
	"github.com/halverson/scribe/internal/store"
)

// NewSeedCommand creates the seed command: load roster records from a
// YAML file and persist them to a SQLite database.
func NewSeedCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed <db> <file>",
		Short: "Seed a roster database from a YAML file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := LoadRecords(args[1])
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to load records", err)
			}
			db := employees.NewDB(records...)
			opts.verboseLog(cmd.ErrOrStderr(), "loaded %d records from %s", db.Len(), args[1])

			st, err := store.Open(args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to open database", err)
			}
			defer st.Close()

			if err := st.SaveAll(db.All()); err != nil {
				return WrapExitError(ExitFailure, "failed to save records", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d records\n", db.Len())
			return nil
		},
	}
}
