package compile

import "strings"

// Tokenize splits input on runs of whitespace. Input holding only whitespace
// yields an empty slice.
func Tokenize(input string) []string {
	return strings.Fields(input)
}
