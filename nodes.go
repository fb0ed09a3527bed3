package arith

import (
	"strconv"
	"strings"
)

// node is a node in the abstract syntax tree of an expression.
type node struct {
	kind nodeKind
	// tok is the literal for nodeNum and the operator otherwise.
	tok Token
	// left is the operand of nodeUnary and the lhs of nodeBinary.
	left  *node
	right *node
	span  Span
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum    // literal tok
	nodeUnary  // apply tok to left
	nodeBinary // apply tok to left and right
)

func (k nodeKind) String() string {
	switch k {
	case nodeNone:
		return "None"
	case nodeNum:
		return "Num"
	case nodeUnary:
		return "Unary"
	case nodeBinary:
		return "Binary"
	default:
		return "nodeKind(" + strconv.Itoa(int(k)) + ")"
	}
}

func numNode(tok Token) *node {
	return &node{kind: nodeNum, tok: tok, span: tok.Span}
}

func unaryNode(op Token, operand *node) *node {
	return &node{
		kind: nodeUnary,
		tok:  op,
		left: operand,
		span: Span{Start: op.Start, End: operand.span.End},
	}
}

func binaryNode(left *node, op Token, right *node) *node {
	return &node{
		kind:  nodeBinary,
		tok:   op,
		left:  left,
		right: right,
		span:  Span{Start: left.span.Start, End: right.span.End},
	}
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

func (n *node) fmt(b *strings.Builder) {
	switch n.kind {
	case nodeNum:
		b.WriteString(n.tok.String())
	case nodeUnary:
		b.WriteByte('(')
		b.WriteString(n.tok.String())
		b.WriteString(", ")
		n.left.fmt(b)
		b.WriteByte(')')
	case nodeBinary:
		b.WriteByte('(')
		n.left.fmt(b)
		b.WriteString(", ")
		b.WriteString(n.tok.String())
		b.WriteString(", ")
		n.right.fmt(b)
		b.WriteByte(')')
	default:
		panic("arith: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}
