package ir

// Pipeline is the variable-name registry of one matched query: it maps
// query variables to their declared names. Variables without a declared
// name (anonymous or internal) cannot be looked up in answer rows, so
// endpoints referring to them resolve as absent.
type Pipeline struct {
	names map[Variable]string
}

// NewPipeline creates an empty pipeline.
func NewPipeline() *Pipeline {
	return &Pipeline{names: make(map[Variable]string)}
}

// Declare registers the declared name for a variable. Later declarations
// for the same variable overwrite earlier ones.
func (p *Pipeline) Declare(v Variable, name string) {
	p.names[v] = name
}

// VariableName returns the declared name of a variable. The second return
// is false for anonymous variables.
func (p *Pipeline) VariableName(v Variable) (string, bool) {
	name, ok := p.names[v]
	if !ok || name == "" {
		return "", false
	}
	return name, true
}
