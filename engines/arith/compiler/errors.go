package compiler

import (
	"errors"

	"github.com/robbyt/go-arithscript/engines/arith/compiler/internal/compile"
)

var (
	ErrContentNil         = errors.New("arith content is nil")
	ErrExecCreationFailed = errors.New("unable to create arith executable")
	ErrValidationFailed   = errors.New("arith expression validation error")
)

// Parse failures. A validation error wraps exactly one of these inside a
// *ParseError.
var (
	ErrInvalidNumber        = compile.ErrInvalidNumber
	ErrInvalidOperator      = compile.ErrInvalidOperator
	ErrUnexpectedEndOfInput = compile.ErrUnexpectedEndOfInput
)

// ParseError carries the failing token and its position.
type ParseError = compile.ParseError
