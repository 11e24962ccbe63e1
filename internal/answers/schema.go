package answers

import (
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

//go:embed schema.cue
var schemaCUE string

// Validate checks a decoded document value against the embedded CUE
// schema. The value is the result of decoding YAML or JSON into plain Go
// maps and slices, before it is bound to the Document structs: validating
// first means typos (an unknown kind, a misspelled field) surface as
// schema errors instead of silently-zero struct fields.
func Validate(doc any) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE)
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compiling answer-set schema: %w", err)
	}

	def := schema.LookupPath(cue.ParsePath("#Document"))
	if err := def.Err(); err != nil {
		return fmt.Errorf("looking up #Document: %w", err)
	}

	val := ctx.Encode(doc)
	if err := val.Err(); err != nil {
		return fmt.Errorf("encoding document for validation: %w", err)
	}

	unified := def.Unify(val)
	if err := unified.Validate(cue.Final(), cue.Concrete(true)); err != nil {
		return fmt.Errorf("answer-set document invalid: %w", err)
	}

	return nil
}
