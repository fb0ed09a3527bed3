package arith

// Expr = Term { ('+' | '-') Term }
// Term = Factor { ('*' | '/') Factor }
// Factor = ('+' | '-') Factor | Atom
// Atom = int | float | '(' Expr ')'

// Expr is a parsed expression that can be evaluated with a context.
type Expr struct {
	// n is the root node of the expression.
	n *node
}

// parser is a cursor over a token sequence. The last token is always EOF,
// and the cursor never moves past it.
type parser struct {
	toks []Token
	i    int
}

// cur returns the token under the cursor.
func (p *parser) cur() Token {
	return p.toks[p.i]
}

// next moves the cursor to the next token, if there is one.
func (p *parser) next() {
	if p.i < len(p.toks)-1 {
		p.i++
	}
}

// rule is a parsing rule of the grammar.
type rule func(p *parser) (*node, error)

// Parse parses a token sequence produced by Lex. If the tokens do not form
// exactly one expression, the error is a *SyntaxError.
func Parse(toks []Token) (*Expr, error) {
	if len(toks) == 0 || toks[len(toks)-1].Kind != TokenEOF {
		panic("arith: token sequence does not end with EOF")
	}
	p := parser{toks: toks}
	n, err := parseexpr(&p)
	// Leftover input is reported in preference to whatever went wrong inside.
	if tok := p.cur(); tok.Kind != TokenEOF {
		return nil, expected("operator", tok)
	}
	if err != nil {
		return nil, err
	}
	return &Expr{n: n}, nil
}

func parseexpr(p *parser) (*node, error) {
	return binop(p, parseterm, TokenPlus, TokenMinus)
}

func parseterm(p *parser) (*node, error) {
	return binop(p, parsefactor, TokenMul, TokenDiv)
}

func parsefactor(p *parser) (*node, error) {
	switch tok := p.cur(); tok.Kind {
	case TokenPlus, TokenMinus:
		p.next()
		operand, err := parsefactor(p)
		if err != nil {
			return nil, err
		}
		return unaryNode(tok, operand), nil
	default:
		return parseatom(p)
	}
}

func parseatom(p *parser) (*node, error) {
	switch tok := p.cur(); tok.Kind {
	case TokenInt, TokenFloat:
		p.next()
		return numNode(tok), nil
	case TokenLParen:
		p.next()
		n, err := parseexpr(p)
		if err != nil {
			return nil, err
		}
		if end := p.cur(); end.Kind != TokenRParen {
			return nil, expected("')'", end)
		}
		p.next()
		return n, nil
	default:
		return nil, expected("Integer Or Float", tok)
	}
}

// binop parses a chain of binary operators of one precedence level, with
// operands parsed by operand. Each operator found folds the result so far
// into the left child of a new node.
func binop(p *parser, operand rule, ops ...TokenKind) (*node, error) {
	n, err := operand(p)
	if err != nil {
		return nil, err
	}
	for isOneOf(p.cur().Kind, ops) {
		op := p.cur()
		p.next()
		r, err := operand(p)
		if err != nil {
			return nil, err
		}
		n = binaryNode(n, op, r)
	}
	return n, nil
}

func isOneOf(k TokenKind, ks []TokenKind) bool {
	for _, v := range ks {
		if k == v {
			return true
		}
	}
	return false
}

// String formats the parse tree with each operation in parentheses, e.g.
// "(INT:1, PLUS, (MINUS, INT:2))".
func (e *Expr) String() string {
	return e.n.String()
}

// Span returns the source range of the whole expression.
func (e *Expr) Span() Span {
	return e.n.span
}
