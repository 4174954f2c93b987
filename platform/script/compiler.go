package script

import "io"

// Compiler validates expression source and turns it into ExecutableContent.
//
// Example usage:
//
//	comp, _ := compiler.New()
//	content, err := comp.Compile(io.NopCloser(strings.NewReader("5 + 3 - 2")))
//	if err != nil {
//	    // Handle parse error
//	}
type Compiler interface {
	// Compile reads the source from scriptReader, closes it, and returns the
	// validated and compiled content. Parse failures are returned as errors.
	Compile(scriptReader io.ReadCloser) (ExecutableContent, error)
}
