package cli

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/rowgraph/rowgraph/internal/answers"
	"github.com/rowgraph/rowgraph/internal/convert"
	"github.com/rowgraph/rowgraph/internal/graph"
	"github.com/rowgraph/rowgraph/internal/resolve"
)

// ValidEmitFormats defines the allowed graph output formats.
var ValidEmitFormats = []string{"dot", "json"}

// ConvertResult is the JSON payload for a successful conversion.
type ConvertResult struct {
	Session  string `json:"session"`
	Rows     int    `json:"rows"`
	Vertices int    `json:"vertices"`
	Edges    int    `json:"edges"`
	Output   string `json:"output,omitempty"`
}

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	var emit string
	var output string

	cmd := &cobra.Command{
		Use:   "convert <answers-file>",
		Short: "Convert an answer-set document into a graph",
		Long: `Convert a recorded answer-set document (YAML or JSON) into a
directed labeled graph and emit it as DOT or JSON.

All rows in the document are merged into a single graph; the first
edge recorded for an ordered vertex pair wins.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(rootOpts, args[0], emit, output, cmd)
		},
	}

	cmd.Flags().StringVar(&emit, "emit", "dot", "graph output format (dot|json)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write graph to file instead of stdout")

	return cmd
}

func runConvert(opts *RootOptions, path, emit, output string, cmd *cobra.Command) error {
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
	formatter.VerboseLog("Loaded %d row(s) from %s", len(doc.Rows), path)

	return convertDocument(opts, formatter, doc, emit, output, cmd)
}

// convertDocument compiles a document, runs the conversion session, and
// emits the resulting graph. Shared by convert and replay.
func convertDocument(opts *RootOptions, formatter *OutputFormatter, doc *answers.Document, emit, output string, cmd *cobra.Command) error {
	if !isValidEmit(emit) {
		msg := fmt.Sprintf("invalid emit format %q: must be one of %v", emit, ValidEmitFormats)
		_ = formatter.Error(ErrCodeGeneric, msg, nil)
		return NewExitError(ExitCommandError, msg)
	}

	pipeline, constraints, rows, err := doc.Compile()
	if err != nil {
		_ = formatter.Error(ErrCodeCompile, err.Error(), nil)
		return WrapExitError(ExitFailure, "compile answers", err)
	}

	session := convert.NewSession(pipeline, constraints, convert.WithLogger(commandLogger(opts, cmd)))
	formatter.VerboseLog("Session %s: converting %d row(s)", session.Token(), len(rows))

	for _, row := range rows {
		if err := session.ConvertRow(row); err != nil {
			code := ErrCodeConvert
			if resolve.IsUnsupportedKind(err) {
				code = ErrCodeSkew
			}
			_ = formatter.Error(code, err.Error(), nil)
			return WrapExitError(ExitFailure, "convert", err)
		}
	}

	g := session.Finish()

	rendered, err := renderGraph(g, emit)
	if err != nil {
		_ = formatter.Error(ErrCodeGeneric, err.Error(), nil)
		return WrapExitError(ExitFailure, "render graph", err)
	}

	if output != "" {
		if err := os.WriteFile(output, rendered, 0o644); err != nil {
			_ = formatter.Error(ErrCodeGeneric, err.Error(), nil)
			return WrapExitError(ExitCommandError, "write output", err)
		}
	}

	result := ConvertResult{
		Session:  session.Token(),
		Rows:     session.RowCount(),
		Vertices: g.VertexCount(),
		Edges:    g.EdgeCount(),
		Output:   output,
	}

	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	if output == "" {
		if _, err := formatter.Writer.Write(rendered); err != nil {
			return err
		}
		return nil
	}

	fmt.Fprintf(formatter.Writer, "✓ Wrote %s (%d vertices, %d edges from %d rows)\n",
		output, result.Vertices, result.Edges, result.Rows)
	return nil
}

// renderGraph serializes a graph in the requested format.
func renderGraph(g *graph.Graph, emit string) ([]byte, error) {
	switch emit {
	case "json":
		data, err := g.MarshalJSON()
		if err != nil {
			return nil, fmt.Errorf("marshal graph: %w", err)
		}
		return append(data, '\n'), nil
	default:
		var buf bytes.Buffer
		if err := g.WriteDOT(&buf); err != nil {
			return nil, fmt.Errorf("write dot: %w", err)
		}
		return buf.Bytes(), nil
	}
}

// commandLogger builds the session logger: silent unless --verbose, in
// which case debug-level text logs go to stderr.
func commandLogger(opts *RootOptions, cmd *cobra.Command) *slog.Logger {
	if !opts.Verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

func isValidEmit(emit string) bool {
	for _, e := range ValidEmitFormats {
		if e == emit {
			return true
		}
	}
	return false
}
