package pattern

// Node is a Literal or a Variable.
type Node interface {
	node()
}

// Literal is text copied verbatim into the output.
type Literal struct {
	Value string
}

// Variable is a {name:transforms} block.
type Variable struct {
	Name       string
	Transforms []Call
}

// Call is one transform invocation on a variable, applied in order.
type Call struct {
	Name string
	Args []string
}

func (Literal) node()  {}
func (Variable) node() {}

// Parsed is the result of parsing a pattern.
type Parsed struct {
	Nodes []Node
	// VariablesUsed lists every variable name once, in order of first
	// appearance.
	VariablesUsed []string
}
