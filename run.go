package arith

// ProgramName is the display name of the context Run creates.
const ProgramName = "<Program>"

// Run lexes, parses, and evaluates text in a new context named ProgramName.
// name identifies the source in diagnostics. The first error from any stage
// is returned and the remaining stages do not run.
func Run(text, name string, opts ...ContextOption) (Number, error) {
	toks, err := Lex(text, name)
	if err != nil {
		return Number{}, err
	}
	e, err := Parse(toks)
	if err != nil {
		return Number{}, err
	}
	return e.Eval(NewContext(ProgramName, opts...))
}

// RunString is a shortcut to run text named "<stdin>".
func RunString(text string, opts ...ContextOption) (Number, error) {
	return Run(text, "<stdin>", opts...)
}
