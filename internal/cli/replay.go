package cli

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rowgraph/rowgraph/internal/store"
)

// SetListing is the JSON payload for --list.
type SetListing struct {
	Sets []SetEntry `json:"sets"`
}

// SetEntry is one recorded set in a listing.
type SetEntry struct {
	Name      string `json:"name"`
	Rows      int    `json:"rows"`
	CreatedAt string `json:"created_at"`
}

// NewReplayCommand creates the replay command.
func NewReplayCommand(rootOpts *RootOptions) *cobra.Command {
	var dbPath string
	var emit string
	var output string
	var list bool

	cmd := &cobra.Command{
		Use:   "replay [name]",
		Short: "Convert a recorded answer set from the database",
		Long: `Load a previously recorded answer set by name and convert it into
a graph, exactly as convert would from the original file.

With --list, prints the recorded sets instead of converting.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if list {
				return runReplayList(rootOpts, dbPath, cmd)
			}
			if len(args) != 1 {
				return NewExitError(ExitCommandError, "replay requires a set name (or --list)")
			}
			return runReplay(rootOpts, args[0], dbPath, emit, output, cmd)
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "rowgraph.db", "path to the answer-set database")
	cmd.Flags().StringVar(&emit, "emit", "dot", "graph output format (dot|json)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write graph to file instead of stdout")
	cmd.Flags().BoolVar(&list, "list", false, "list recorded answer sets")

	return cmd
}

func runReplay(opts *RootOptions, name, dbPath, emit, output string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	st, err := store.Open(dbPath)
	if err != nil {
		_ = formatter.Error(ErrCodeStore, err.Error(), nil)
		return WrapExitError(ExitCommandError, "open database", err)
	}
	defer st.Close()

	doc, err := st.LoadAnswerSet(cmd.Context(), name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			msg := fmt.Sprintf("answer set %q not recorded", name)
			_ = formatter.Error(ErrCodeNotFound, msg, nil)
			return NewExitError(ExitCommandError, msg)
		}
		_ = formatter.Error(ErrCodeStore, err.Error(), nil)
		return WrapExitError(ExitCommandError, "load answer set", err)
	}

	formatter.VerboseLog("Replaying %q: %d row(s)", name, len(doc.Rows))

	return convertDocument(opts, formatter, doc, emit, output, cmd)
}

func runReplayList(opts *RootOptions, dbPath string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	st, err := store.Open(dbPath)
	if err != nil {
		_ = formatter.Error(ErrCodeStore, err.Error(), nil)
		return WrapExitError(ExitCommandError, "open database", err)
	}
	defer st.Close()

	infos, err := st.ListAnswerSets(cmd.Context())
	if err != nil {
		_ = formatter.Error(ErrCodeStore, err.Error(), nil)
		return WrapExitError(ExitCommandError, "list answer sets", err)
	}

	if formatter.Format == "json" {
		listing := SetListing{Sets: []SetEntry{}}
		for _, info := range infos {
			listing.Sets = append(listing.Sets, SetEntry{
				Name:      info.Name,
				Rows:      info.RowCount,
				CreatedAt: info.CreatedAt,
			})
		}
		return formatter.Success(listing)
	}

	if len(infos) == 0 {
		fmt.Fprintln(formatter.Writer, "No answer sets recorded")
		return nil
	}

	for _, info := range infos {
		fmt.Fprintf(formatter.Writer, "%s\t%d rows\t%s\n", info.Name, info.RowCount, info.CreatedAt)
	}
	return nil
}
