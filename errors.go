package arith

import (
	"errors"
	"strconv"
)

// ErrorKind classifies user-facing errors by the stage that produced them.
type ErrorKind int8

const (
	// KindIllegalCharacter is a lexical error.
	KindIllegalCharacter ErrorKind = iota + 1
	// KindInvalidSyntax is a grammatical error.
	KindInvalidSyntax
	// KindRuntime is an evaluation error.
	KindRuntime
)

func (k ErrorKind) String() string {
	switch k {
	case KindIllegalCharacter:
		return "Illegal Character"
	case KindInvalidSyntax:
		return "Invalid Syntax"
	case KindRuntime:
		return "Runtime Error"
	default:
		return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// InputError is an error with position information. Every error resulting
// from invalid input implements InputError.
type InputError interface {
	error
	// Span returns the source range the error concerns.
	Span() Span
	// Kind returns the stage classification of the error.
	Kind() ErrorKind
	// Details returns the message without kind or position.
	Details() string
}

// errmsg formats the one-line message shared by all input errors.
func errmsg(err InputError) string {
	return err.Span().Start.String() + ": " + err.Kind().String() + ": " + err.Details()
}

// IllegalCharError is an error indicating a character that does not begin
// any token. It implements InputError.
type IllegalCharError struct {
	span Span
	// Char is the offending character.
	Char rune
}

func (err *IllegalCharError) Error() string   { return errmsg(err) }
func (err *IllegalCharError) Span() Span      { return err.span }
func (err *IllegalCharError) Kind() ErrorKind { return KindIllegalCharacter }
func (err *IllegalCharError) Details() string { return "'" + string(err.Char) + "'" }

// SyntaxError is an error indicating a token that the grammar does not allow
// where it appears. It implements InputError.
type SyntaxError struct {
	span Span
	// Expected describes what the parser wanted instead, e.g. "')'".
	Expected string
	// Found is the token that was found.
	Found Token
}

func (err *SyntaxError) Error() string   { return errmsg(err) }
func (err *SyntaxError) Span() Span      { return err.span }
func (err *SyntaxError) Kind() ErrorKind { return KindInvalidSyntax }
func (err *SyntaxError) Details() string { return "Expected " + err.Expected }

// expected creates a syntax error at tok.
func expected(what string, tok Token) *SyntaxError {
	return &SyntaxError{span: tok.Span, Expected: what, Found: tok}
}

// ErrDivisionByZero is the cause of a runtime error dividing by zero.
var ErrDivisionByZero = errors.New("division by zero")

// RuntimeError is an error during evaluation. It implements InputError and
// unwraps to its Cause, e.g. ErrDivisionByZero.
type RuntimeError struct {
	span Span
	// Msg is the human-readable description, e.g. "Division By 0".
	Msg string
	// Context is the evaluation context active where the error occurred.
	Context *Context
	// Cause is the sentinel classifying the error.
	Cause error
}

func (err *RuntimeError) Error() string   { return errmsg(err) }
func (err *RuntimeError) Span() Span      { return err.span }
func (err *RuntimeError) Kind() ErrorKind { return KindRuntime }
func (err *RuntimeError) Details() string { return err.Msg }
func (err *RuntimeError) Unwrap() error   { return err.Cause }

var (
	_ InputError = (*IllegalCharError)(nil)
	_ InputError = (*SyntaxError)(nil)
	_ InputError = (*RuntimeError)(nil)
)
