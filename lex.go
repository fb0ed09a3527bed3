package arith

import (
	"math/big"
	"strconv"
)

// Token is a lexical unit of an expression.
type Token struct {
	Kind TokenKind
	// Text is the source text of the token. It is empty for EOF.
	Text string
	// Value is the literal value of an Int or Float token. Float values have
	// DefaultPrec bits.
	Value Number
	Span
}

func (t Token) String() string {
	switch t.Kind {
	case TokenInt, TokenFloat:
		return t.Kind.String() + ":" + t.Text
	default:
		return t.Kind.String()
	}
}

// TokenKind classifies tokens.
type TokenKind int8

const (
	tokenNone TokenKind = iota
	// TokenInt is an integer literal like 12.
	TokenInt
	// TokenFloat is a literal with a decimal point like 1.5 or 2.
	TokenFloat
	TokenPlus
	TokenMinus
	TokenMul
	TokenDiv
	TokenLParen
	TokenRParen
	// TokenEOF is the zero-width token ending every token sequence.
	TokenEOF
)

var tokenNames = [...]string{
	tokenNone:   "NONE",
	TokenInt:    "INT",
	TokenFloat:  "FLOAT",
	TokenPlus:   "PLUS",
	TokenMinus:  "MINUS",
	TokenMul:    "MUL",
	TokenDiv:    "DIV",
	TokenLParen: "LPAREN",
	TokenRParen: "RPAREN",
	TokenEOF:    "EOF",
}

func (k TokenKind) String() string {
	if k < 0 || int(k) >= len(tokenNames) {
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
	return tokenNames[k]
}

// punct maps single-character tokens to their kinds.
var punct = map[rune]TokenKind{
	'+': TokenPlus,
	'-': TokenMinus,
	'*': TokenMul,
	'/': TokenDiv,
	'(': TokenLParen,
	')': TokenRParen,
}

// Lex scans text into tokens. The result always ends with an EOF token
// unless there is an error, in which case the result is nil and the error is
// an *IllegalCharError.
func Lex(text, name string) ([]Token, error) {
	var toks []Token
	pos := Start(name, text)
	for {
		r, ok := pos.Char()
		if !ok {
			break
		}
		switch {
		case r == ' ', r == '\t', r == '\r', r == '\n':
			pos = pos.Advance()
		case '0' <= r && r <= '9':
			var tok Token
			tok, pos = scanNum(pos)
			toks = append(toks, tok)
		default:
			k, ok := punct[r]
			if !ok {
				return nil, &IllegalCharError{span: point(pos), Char: r}
			}
			toks = append(toks, Token{Kind: k, Text: string(r), Span: point(pos)})
			pos = pos.Advance()
		}
	}
	toks = append(toks, Token{Kind: TokenEOF, Span: Span{Start: pos, End: pos}})
	return toks, nil
}

// scanNum scans a numeric literal starting at a digit. It returns the token
// and the position just past it. A second decimal point ends the literal.
func scanNum(start Position) (Token, Position) {
	pos := start
	dot := false
	for {
		r, ok := pos.Char()
		if !ok {
			break
		}
		if r == '.' {
			if dot {
				break
			}
			dot = true
		} else if r < '0' || '9' < r {
			break
		}
		pos = pos.Advance()
	}
	tok := Token{
		Text: start.Text[start.Offset:pos.Offset],
		Span: Span{Start: start, End: pos},
	}
	if dot {
		// Evaluation reparses the text when its context has another precision.
		tok.Kind = TokenFloat
		tok.Value = floatNum(parseFloat(tok.Text, DefaultPrec))
	} else {
		i, ok := new(big.Int).SetString(tok.Text, 10)
		if !ok {
			panic("arith: invalid integer literal " + strconv.Quote(tok.Text))
		}
		tok.Kind = TokenInt
		tok.Value = intNum(i)
	}
	tok.Value.span = tok.Span
	return tok, pos
}
