package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rowgraph/rowgraph/internal/answers"
	"github.com/rowgraph/rowgraph/internal/store"
)

// RecordResult is the JSON payload for a successful record.
type RecordResult struct {
	Name string `json:"name"`
	ID   int64  `json:"id"`
	Rows int    `json:"rows"`
}

// NewRecordCommand creates the record command.
func NewRecordCommand(rootOpts *RootOptions) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "record <name> <answers-file>",
		Short: "Record an answer-set document in the database",
		Long: `Validate an answer-set document and store it under a name, so it
can be replayed later without the source file.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecord(rootOpts, args[0], args[1], dbPath, cmd)
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "rowgraph.db", "path to the answer-set database")

	return cmd
}

func runRecord(opts *RootOptions, name, path, dbPath string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	doc, err := answers.LoadFile(path)
	if err != nil {
		_ = formatter.Error(ErrCodeLoad, err.Error(), nil)
		return WrapExitError(ExitCommandError, "load answers", err)
	}

	// Reject documents that would fail at replay time.
	if _, _, _, err := doc.Compile(); err != nil {
		_ = formatter.Error(ErrCodeCompile, err.Error(), nil)
		return WrapExitError(ExitFailure, "compile answers", err)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		_ = formatter.Error(ErrCodeStore, err.Error(), nil)
		return WrapExitError(ExitCommandError, "open database", err)
	}
	defer st.Close()

	id, err := st.RecordAnswerSet(cmd.Context(), name, doc)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateName) {
			_ = formatter.Error(ErrCodeStore, err.Error(), nil)
			return WrapExitError(ExitFailure, "record", err)
		}
		_ = formatter.Error(ErrCodeStore, err.Error(), nil)
		return WrapExitError(ExitCommandError, "record", err)
	}

	formatter.VerboseLog("Recorded set %d with %d row(s)", id, len(doc.Rows))

	if formatter.Format == "json" {
		return formatter.Success(RecordResult{Name: name, ID: id, Rows: len(doc.Rows)})
	}

	fmt.Fprintf(formatter.Writer, "✓ Recorded %q (%d rows)\n", name, len(doc.Rows))
	return nil
}
