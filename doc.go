// Package arith evaluates simple arithmetic expressions.
//
// Source text is scanned into tokens, parsed into a tree, and evaluated to a
// number. Integers are arbitrary precision. Literals containing a decimal
// point are binary floats with the precision of the evaluation context, 53
// bits unless set with Prec, which matches float64. "+ - * /" work as usual
// and parentheses group. "/" always produces a float: "10 / 4" is 2.5 and
// "4 / 2" is 2.0.
//
// Every error carries the span of source text it concerns. Render turns an
// error into a report quoting the offending line with carets beneath it, and
// runtime errors include a traceback through the evaluation contexts.
//
package arith
