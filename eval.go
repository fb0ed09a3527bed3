package arith

// Context is a frame for evaluating expressions. Contexts chain to their
// parents to form the traceback of a runtime error. A Context is read-only
// during evaluation, so one Context may evaluate any number of expressions
// concurrently.
type Context struct {
	// Name is the display name of the frame, e.g. "<Program>".
	Name string
	// Parent is the enclosing frame, or nil for a root context.
	Parent *Context
	// Call is the position in the parent frame where this frame was entered.
	// It is meaningless for a root context.
	Call Position

	prec uint
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type precopt uint

func (precopt) ctxOption() {}

// Prec sets the precision in bits of float literals and float results. Integer
// results are exact regardless of precision.
func Prec(prec uint) ContextOption {
	return precopt(prec)
}

// NewContext creates a new root evaluation context. If no precision is
// given, the default is DefaultPrec.
func NewContext(name string, opts ...ContextOption) *Context {
	ctx := Context{Name: name, prec: DefaultPrec}
	ctx.apply(opts)
	return &ctx
}

// Child creates a context entered from ctx at the position call. The child
// inherits the parent's precision unless opts override it.
func (ctx *Context) Child(name string, call Position, opts ...ContextOption) *Context {
	n := Context{Name: name, Parent: ctx, Call: call, prec: ctx.prec}
	n.apply(opts)
	return &n
}

func (ctx *Context) apply(opts []ContextOption) {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case precopt:
			if opt == 0 {
				panic("arith: zero precision")
			}
			ctx.prec = uint(opt)
		default:
			panic("arith: unknown option type")
		}
	}
}

// Prec returns the precision of floats computed in the context. Contexts not
// created by NewContext use DefaultPrec.
func (ctx *Context) Prec() uint {
	if ctx == nil || ctx.prec == 0 {
		return DefaultPrec
	}
	return ctx.prec
}

// Depth returns the number of frames in the chain ending at ctx.
func (ctx *Context) Depth() int {
	n := 0
	for ; ctx != nil; ctx = ctx.Parent {
		n++
	}
	return n
}

// Eval evaluates the expression under ctx. If an error occurs, e.g. a
// division by zero, the error is a *RuntimeError carrying ctx.
func (e *Expr) Eval(ctx *Context) (Number, error) {
	return e.n.eval(ctx)
}

// eval computes the node's value.
func (n *node) eval(ctx *Context) (Number, error) {
	switch n.kind {
	case nodeNum:
		x := n.tok.Value
		if x.f != nil && x.f.Prec() != ctx.Prec() {
			x = floatNum(parseFloat(n.tok.Text, ctx.Prec()))
		}
		return x.at(n.span, ctx), nil
	case nodeUnary:
		x, err := n.left.eval(ctx)
		if err != nil {
			return Number{}, err
		}
		switch n.tok.Kind {
		case TokenMinus:
			x = x.mul(intNum(minusOne), ctx.Prec())
		case TokenPlus: // do nothing
		default:
			panic("arith: invalid unary operator " + n.tok.String())
		}
		return x.at(n.span, ctx), nil
	case nodeBinary:
		x, err := n.left.eval(ctx)
		if err != nil {
			return Number{}, err
		}
		y, err := n.right.eval(ctx)
		if err != nil {
			return Number{}, err
		}
		var r Number
		switch n.tok.Kind {
		case TokenPlus:
			r = x.add(y, ctx.Prec())
		case TokenMinus:
			r = x.sub(y, ctx.Prec())
		case TokenMul:
			r = x.mul(y, ctx.Prec())
		case TokenDiv:
			r, err = x.quo(y, ctx)
		default:
			panic("arith: invalid binary operator " + n.tok.String())
		}
		if err != nil {
			return Number{}, err
		}
		return r.at(n.span, ctx), nil
	default:
		panic("arith: invalid AST node " + n.kind.String())
	}
}
