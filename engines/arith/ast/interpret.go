package ast

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrOverflow is returned when an intermediate result leaves the int64 range.
	ErrOverflow = errors.New("integer overflow")

	// ErrNilNode is returned when a tree contains a missing child.
	ErrNilNode = errors.New("nil expression node")
)

// Interpret reduces the tree rooted at n to its integer value. The left
// child is evaluated before the right. Results that do not fit in an int64
// fail with ErrOverflow rather than wrapping.
func Interpret(n Node) (int64, error) {
	switch n := n.(type) {
	case Literal:
		return int64(n), nil
	case *BinaryOp:
		if n == nil {
			return 0, ErrNilNode
		}
		left, err := Interpret(n.Left)
		if err != nil {
			return 0, err
		}
		right, err := Interpret(n.Right)
		if err != nil {
			return 0, err
		}
		return apply(n.Op, left, right)
	case nil:
		return 0, ErrNilNode
	default:
		return 0, fmt.Errorf("unsupported node type %T", n)
	}
}

func apply(op Op, left, right int64) (int64, error) {
	switch op {
	case Add:
		if (right > 0 && left > math.MaxInt64-right) ||
			(right < 0 && left < math.MinInt64-right) {
			return 0, fmt.Errorf("%w: %d + %d", ErrOverflow, left, right)
		}
		return left + right, nil
	case Subtract:
		if (right < 0 && left > math.MaxInt64+right) ||
			(right > 0 && left < math.MinInt64+right) {
			return 0, fmt.Errorf("%w: %d - %d", ErrOverflow, left, right)
		}
		return left - right, nil
	}
	return 0, fmt.Errorf("unsupported operator %s", op)
}
