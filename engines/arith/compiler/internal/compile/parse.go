package compile

import (
	"strconv"

	"github.com/robbyt/go-arithscript/engines/arith/ast"
)

// cursor walks a token slice for a single Parse call.
type cursor struct {
	tokens []string
	pos    int
}

func (c *cursor) done() bool {
	return c.pos >= len(c.tokens)
}

func (c *cursor) next() (string, bool) {
	if c.done() {
		return "", false
	}
	tok := c.tokens[c.pos]
	c.pos++
	return tok, true
}

// Parse builds a left-leaning tree from tokens of the form
// number (op number)*, where op is "+" or "-". There is no precedence and no
// grouping: "5 - 3 + 2" is (5 - 3) + 2.
func Parse(tokens []string) (ast.Node, error) {
	c := &cursor{tokens: tokens}

	first, err := c.term()
	if err != nil {
		return nil, err
	}

	var expr ast.Node = first

	for !c.done() {
		op, err := c.operator()
		if err != nil {
			return nil, err
		}
		right, err := c.term()
		if err != nil {
			return nil, err
		}
		expr = &ast.BinaryOp{Op: op, Left: expr, Right: right}
	}

	return expr, nil
}

// ParseString tokenizes and parses input.
func ParseString(input string) (ast.Node, error) {
	return Parse(Tokenize(input))
}

func (c *cursor) term() (ast.Literal, error) {
	pos := c.pos
	tok, ok := c.next()
	if !ok {
		return 0, &ParseError{Kind: ErrUnexpectedEndOfInput, Pos: pos}
	}
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, &ParseError{Kind: ErrInvalidNumber, Token: tok, Pos: pos}
	}
	return ast.Literal(v), nil
}

func (c *cursor) operator() (ast.Op, error) {
	pos := c.pos
	tok, ok := c.next()
	if !ok {
		return 0, &ParseError{Kind: ErrUnexpectedEndOfInput, Pos: pos}
	}
	op, ok := ast.OpFromSymbol(tok)
	if !ok {
		return 0, &ParseError{Kind: ErrInvalidOperator, Token: tok, Pos: pos}
	}
	return op, nil
}
