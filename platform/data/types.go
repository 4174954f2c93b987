package data

// Types of an evaluation result as a string.
type Types string

const (
	ERROR Types = "error"
	INT   Types = "int"
	NONE  Types = "none"
)
