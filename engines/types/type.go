package types

// Type identifies the engine a compiled script is intended to run on.
type Type string

const (
	// Arith is the left-to-right integer arithmetic engine.
	Arith Type = "arith"
)

func (t Type) String() string {
	return string(t)
}
