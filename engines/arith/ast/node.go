// Package ast holds the expression tree produced by the arith compiler and
// the interpreter that reduces it to an integer.
package ast

import "strconv"

// Op is the operator of a BinaryOp.
type Op int

const (
	Add Op = iota
	Subtract
)

// Symbol returns the source token for the operator.
func (o Op) Symbol() string {
	switch o {
	case Add:
		return "+"
	case Subtract:
		return "-"
	}
	return "?"
}

func (o Op) String() string {
	switch o {
	case Add:
		return "Add"
	case Subtract:
		return "Subtract"
	}
	return "Op(" + strconv.Itoa(int(o)) + ")"
}

// OpFromSymbol maps a source token to its operator.
func OpFromSymbol(s string) (Op, bool) {
	switch s {
	case "+":
		return Add, true
	case "-":
		return Subtract, true
	}
	return 0, false
}

// A Node is a sub-expression in a tree. The only implementations are
// Literal and *BinaryOp.
type Node interface {
	// String returns the expression's source representation, with tokens
	// separated by single spaces.
	String() string

	node()
}

// A Literal is a leaf holding an integer.
type Literal int64

func (l Literal) String() string {
	return strconv.FormatInt(int64(l), 10)
}

func (Literal) node() {}

// BinaryOp combines two sub-expressions. Trees built by the parser lean left:
// Left holds everything read so far and Right is always a Literal.
type BinaryOp struct {
	Op    Op
	Left  Node
	Right Node
}

func (b *BinaryOp) String() string {
	return b.Left.String() + " " + b.Op.Symbol() + " " + b.Right.String()
}

func (*BinaryOp) node() {}
