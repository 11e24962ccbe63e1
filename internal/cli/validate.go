package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rowgraph/rowgraph/internal/answers"
)

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid     bool   `json:"valid"`
	Rows      int    `json:"rows,omitempty"`
	Variables int    `json:"variables,omitempty"`
	Error     string `json:"error,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <answers-file>",
		Short: "Validate an answer-set document without converting",
		Long: `Validate an answer-set document against the schema and compile
it without producing a graph. Faster feedback than a full convert
when authoring documents by hand.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	doc, err := answers.LoadFile(path)
	if err != nil {
		return outputValidateFailure(formatter, ErrCodeSchema, err)
	}
	formatter.VerboseLog("Schema accepted %s", path)

	// Compile to catch errors the schema cannot express, like references
	// to undeclared variables.
	if _, _, _, err := doc.Compile(); err != nil {
		return outputValidateFailure(formatter, ErrCodeCompile, err)
	}

	if formatter.Format == "json" {
		return formatter.Success(ValidationResult{
			Valid:     true,
			Rows:      len(doc.Rows),
			Variables: len(doc.Query.Variables),
		})
	}

	fmt.Fprintf(formatter.Writer, "✓ %s valid (%d variables, %d rows)\n",
		path, len(doc.Query.Variables), len(doc.Rows))
	return nil
}

func outputValidateFailure(formatter *OutputFormatter, code string, err error) error {
	if formatter.Format == "json" {
		_ = formatter.Success(ValidationResult{Valid: false, Error: err.Error()})
		return NewExitError(ExitFailure, err.Error())
	}

	fmt.Fprintln(formatter.Writer, "✗ Validation failed")
	fmt.Fprintf(formatter.Writer, "  %s: %s\n", code, err.Error())
	return NewExitError(ExitFailure, err.Error())
}
