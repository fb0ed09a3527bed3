package arith

import (
	"math/big"
	"strconv"
	"strings"
)

// DefaultPrec is the precision in bits of floats in contexts that do not set
// one. It matches float64.
const DefaultPrec = 53

// minusOne is shared by all negations. It must never be modified.
var minusOne = big.NewInt(-1)

// Number is a numeric value produced by evaluation: either an arbitrary
// precision integer or a binary float. Numbers are immutable; arithmetic
// produces new Numbers. The zero value is the integer 0.
//
// Floats never become infinite or NaN. Literals have no exponent, division by
// zero is an error, and big.Float exponents are far wider than any input can
// reach.
type Number struct {
	i    *big.Int
	f    *big.Float
	span Span
	ctx  *Context
}

func intNum(i *big.Int) Number {
	return Number{i: i}
}

func floatNum(f *big.Float) Number {
	return Number{f: f}
}

// parseFloat parses a float literal at prec bits. Lex only produces text
// that parses.
func parseFloat(text string, prec uint) *big.Float {
	f, _, err := new(big.Float).SetPrec(prec).Parse(text, 10)
	if err != nil {
		panic("arith: invalid float literal " + strconv.Quote(text) + ": " + err.Error())
	}
	return f
}

// IsFloat reports whether x is in the float domain.
func (x Number) IsFloat() bool {
	return x.f != nil
}

// Int returns a copy of the value of x if x is an integer, or nil if x is a
// float.
func (x Number) Int() *big.Int {
	if x.f != nil {
		return nil
	}
	return new(big.Int).Set(x.bigint())
}

// Float returns a copy of the value of x if x is a float, or nil if x is an
// integer. The copy has the precision x was computed with.
func (x Number) Float() *big.Float {
	if x.f == nil {
		return nil
	}
	return new(big.Float).Copy(x.f)
}

// Float64 returns the value of x as a float64, rounding to nearest.
func (x Number) Float64() float64 {
	var f float64
	if x.f != nil {
		f, _ = x.f.Float64()
	} else {
		f, _ = new(big.Float).SetInt(x.bigint()).Float64()
	}
	return f
}

// Span returns the source range that produced x.
func (x Number) Span() Span {
	return x.span
}

// Context returns the context in which x was evaluated.
func (x Number) Context() *Context {
	return x.ctx
}

// String formats x. Floats always include a decimal point or exponent, so 2.0
// prints as "2.0" rather than "2". Floats use an exponent when their
// magnitude is below 1e-4 or at least 1e16. Float digits are the fewest that
// identify the value at its precision.
func (x Number) String() string {
	if x.f == nil {
		return x.bigint().String()
	}
	var s string
	a, _ := new(big.Float).Abs(x.f).Float64()
	if x.f.Sign() == 0 || 1e-4 <= a && a < 1e16 {
		s = x.f.Text('f', -1)
	} else {
		s = x.f.Text('g', -1)
	}
	if strings.ContainsAny(s, ".eIN") {
		return s
	}
	return s + ".0"
}

func (x Number) bigint() *big.Int {
	if x.i == nil {
		return new(big.Int)
	}
	return x.i
}

// asFloat returns x in the float domain. Integers are rounded to prec bits;
// floats are returned as they are and must not be modified.
func (x Number) asFloat(prec uint) *big.Float {
	if x.f != nil {
		return x.f
	}
	return new(big.Float).SetPrec(prec).SetInt(x.bigint())
}

// at returns x stamped with a span and context.
func (x Number) at(s Span, ctx *Context) Number {
	x.span = s
	x.ctx = ctx
	return x
}

// isZero reports whether the value of x is exactly zero.
func (x Number) isZero() bool {
	if x.f != nil {
		return x.f.Sign() == 0
	}
	return x.bigint().Sign() == 0
}

func (x Number) add(y Number, prec uint) Number {
	if x.f != nil || y.f != nil {
		return floatNum(new(big.Float).SetPrec(prec).Add(x.asFloat(prec), y.asFloat(prec)))
	}
	return intNum(new(big.Int).Add(x.bigint(), y.bigint()))
}

func (x Number) sub(y Number, prec uint) Number {
	if x.f != nil || y.f != nil {
		return floatNum(new(big.Float).SetPrec(prec).Sub(x.asFloat(prec), y.asFloat(prec)))
	}
	return intNum(new(big.Int).Sub(x.bigint(), y.bigint()))
}

func (x Number) mul(y Number, prec uint) Number {
	if x.f != nil || y.f != nil {
		return floatNum(new(big.Float).SetPrec(prec).Mul(x.asFloat(prec), y.asFloat(prec)))
	}
	return intNum(new(big.Int).Mul(x.bigint(), y.bigint()))
}

// quo divides x by y at the precision of ctx. The result is always a float.
// y must have a span for error reporting.
func (x Number) quo(y Number, ctx *Context) (Number, error) {
	if y.isZero() {
		return Number{}, divzero(y.span, ctx)
	}
	prec := ctx.Prec()
	if x.f != nil || y.f != nil {
		return floatNum(new(big.Float).SetPrec(prec).Quo(x.asFloat(prec), y.asFloat(prec))), nil
	}
	// Divide exactly and round once so large integers keep their precision.
	r := new(big.Rat).SetFrac(x.bigint(), y.bigint())
	return floatNum(new(big.Float).SetPrec(prec).SetRat(r)), nil
}

func divzero(s Span, ctx *Context) error {
	return &RuntimeError{span: s, Msg: "Division By 0", Context: ctx, Cause: ErrDivisionByZero}
}
