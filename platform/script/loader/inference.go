package loader

import (
	"fmt"
	"io"
	"net/url"
	"path/filepath"
	"strings"
)

// InferLoader analyzes the input and returns an appropriate loader based on type inference.
// It supports the following input types:
//   - string: file:// URLs and strings containing a path separator load from disk,
//     anything else is inline expression source
//   - []byte: Returns FromBytes loader
//   - io.Reader: Returns FromIoReader loader
//   - Loader: Returns as-is
//
// Returns an error if the input type is unsupported or if loader creation fails.
func InferLoader(input any) (Loader, error) {
	switch v := input.(type) {
	case Loader:
		return v, nil
	case string:
		return inferFromString(v)
	case []byte:
		return NewFromBytes(v)
	case io.Reader:
		return NewFromIoReader(v, "inferred")
	default:
		return nil, fmt.Errorf("unsupported input type: %T", input)
	}
}

// inferFromString treats the input as a file reference when it looks like one,
// and as inline source otherwise. Expressions never contain '/' or '\'.
func inferFromString(input string) (Loader, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, fmt.Errorf("%w: empty string input", ErrScriptNotAvailable)
	}

	// single-letter schemes are Windows drive letters
	if parsed, err := url.Parse(input); err == nil && len(parsed.Scheme) > 1 {
		if parsed.Scheme != "file" {
			return nil, fmt.Errorf("%w: %s", ErrSchemeUnsupported, parsed.Scheme)
		}
		return NewFromDisk(absPath(parsed.Path))
	}

	if filepath.IsAbs(input) || strings.ContainsAny(input, `/\`) {
		return NewFromDisk(absPath(input))
	}

	return NewFromString(input)
}

// absPath resolves a relative path against the working directory, returning
// the input unchanged when that fails.
func absPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
