package convert

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rowgraph/rowgraph/internal/concept"
	"github.com/rowgraph/rowgraph/internal/graph"
	"github.com/rowgraph/rowgraph/internal/ir"
	"github.com/rowgraph/rowgraph/internal/resolve"
)

// Session converts the answer rows of one matched query into one graph.
// Not safe for concurrent use: one session, one goroutine, one graph.
type Session struct {
	token       string
	pipeline    *ir.Pipeline
	constraints []ir.Constraint
	builder     *graph.Builder
	logger      *slog.Logger
	rows        int
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger. Defaults to a discarding logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

// NewSession creates a session over one query's pipeline and constraint
// tree. Each session gets a unique token for log correlation.
func NewSession(pipeline *ir.Pipeline, constraints []ir.Constraint, opts ...Option) *Session {
	s := &Session{
		token:       uuid.NewString(),
		pipeline:    pipeline,
		constraints: constraints,
		builder:     graph.NewBuilder(pipeline),
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Token returns the session's correlation token.
func (s *Session) Token() string { return s.token }

// RowCount returns the number of rows converted so far.
func (s *Session) RowCount() int { return s.rows }

// ConvertRow resolves and emits every constraint against one answer row.
// The same graph accumulates across all rows of the session.
func (s *Session) ConvertRow(row concept.Row) error {
	for _, c := range s.constraints {
		if err := s.convert(c, nil, row); err != nil {
			return fmt.Errorf("convert row %d: %w", s.rows, err)
		}
	}
	s.rows++
	return nil
}

// convert handles one constraint: branch wrappers are descended into with
// the appropriate answer index, everything else is resolved and emitted.
func (s *Session) convert(c ir.Constraint, answerIndex *int, row concept.Row) error {
	switch c := c.(type) {
	case *ir.Disjunction:
		for i, branch := range c.Branches {
			branchIndex := i
			for _, nested := range branch {
				if err := s.convert(nested, &branchIndex, row); err != nil {
					return err
				}
			}
		}
		return nil

	case *ir.Negation:
		return s.convertBody(c.Body, answerIndex, row)

	case *ir.Try:
		return s.convertBody(c.Body, answerIndex, row)

	default:
		dc, err := resolve.Constraint(s.pipeline, c, answerIndex, row)
		if err != nil {
			s.logger.Error("constraint resolution failed",
				"session", s.token,
				"error", err)
			return err
		}
		if dc == nil {
			// Branch wrappers were handled above; a nil here means the
			// resolver declined to draw, which is fine.
			s.logger.Debug("constraint not drawable", "session", s.token)
			return nil
		}
		s.builder.Add(dc)
		return nil
	}
}

func (s *Session) convertBody(body []ir.Constraint, answerIndex *int, row concept.Row) error {
	for _, nested := range body {
		if err := s.convert(nested, answerIndex, row); err != nil {
			return err
		}
	}
	return nil
}

// Finish hands the accumulated graph to the caller. Call after the answer
// stream is exhausted.
func (s *Session) Finish() *graph.Graph {
	g := s.builder.Finish()
	s.logger.Info("conversion finished",
		"session", s.token,
		"rows", s.rows,
		"vertices", g.VertexCount(),
		"edges", g.EdgeCount())
	return g
}
