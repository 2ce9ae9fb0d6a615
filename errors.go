package svgmesh

import (
	"errors"
	"fmt"
)

// Sentinel errors. Use errors.Is to test for them.
var (
	// ErrParse is matched by every *ParseError.
	ErrParse = errors.New("svgmesh: cannot parse scene")

	// ErrFillTessellation is matched by every *GeometryError.
	ErrFillTessellation = errors.New("svgmesh: fill tessellation failed")

	// ErrNilTree is returned when Tessellate is called without a tree.
	ErrNilTree = errors.New("svgmesh: nil scene tree")
)

// ParseError reports that the scene description could not be turned into a
// tree. Err holds the parser's own error.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("svgmesh: parse: %v", e.Err)
}

// Unwrap returns both ErrParse and the parser error.
func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}

// GeometryError reports a fill that the triangulator could not handle.
// It aborts the whole tessellation.
type GeometryError struct {
	// PathID is the id of the failing path, empty when it had none.
	PathID string

	// PathIndex is the position of the path in drawing order.
	PathIndex int

	Err error
}

func (e *GeometryError) Error() string {
	if e.PathID != "" {
		return fmt.Sprintf("svgmesh: fill of path %q (#%d): %v", e.PathID, e.PathIndex, e.Err)
	}
	return fmt.Sprintf("svgmesh: fill of path #%d: %v", e.PathIndex, e.Err)
}

// Unwrap returns both ErrFillTessellation and the triangulator error.
func (e *GeometryError) Unwrap() []error {
	return []error{ErrFillTessellation, e.Err}
}
