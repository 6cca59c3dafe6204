package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoCandidates is returned when the profile walk completes without finding
// a single recovery file. It is distinct from "every candidate failed".
var ErrNoCandidates = errors.New("no recovery files found")

// RootNotFoundError means the Firefox profile root is missing or cannot be
// listed. Discovery aborts immediately; no candidate is attempted.
type RootNotFoundError struct {
	Path string
	Err  error
}

func (e *RootNotFoundError) Error() string {
	return fmt.Sprintf("firefox profile root not found: %s: %v", e.Path, e.Err)
}

func (e *RootNotFoundError) Unwrap() error { return e.Err }

// DecompressionError means a candidate file's mozLz4 framing could not be
// inflated. Soft: the pipeline records it and moves on.
type DecompressionError struct {
	Path string
	Err  error
}

func (e *DecompressionError) Error() string {
	return fmt.Sprintf("decompress %s: %v", e.Path, e.Err)
}

func (e *DecompressionError) Unwrap() error { return e.Err }

// MalformedSessionError means a candidate decompressed fine but its session
// document is structurally broken: invalid JSON, a missing required field, or
// a selected-index pointing outside the tab's history. Soft, like
// DecompressionError.
type MalformedSessionError struct {
	Path string
	Err  error
}

func (e *MalformedSessionError) Error() string {
	return fmt.Sprintf("malformed session %s: %v", e.Path, e.Err)
}

func (e *MalformedSessionError) Unwrap() error { return e.Err }

// MultiError composes the per-candidate failures when every candidate failed.
// Order follows discovery order; each entry keeps its original error value.
type MultiError struct {
	Errors []error
}

func (e *MultiError) Error() string {
	var b strings.Builder
	b.WriteString("multiple errors:")
	for i, err := range e.Errors {
		fmt.Fprintf(&b, " (%d) %v", i, err)
	}
	return b.String()
}

func (e *MultiError) Unwrap() []error { return e.Errors }
