package classify

import "fmt"

// UnrecognizedShapeError reports a shape that carries individual data but
// cannot be classified under strict rules.
type UnrecognizedShapeError struct {
	ShapeID string
	Style   string
	Reason  string
}

func (e *UnrecognizedShapeError) Error() string {
	return fmt.Sprintf("shape %q (style %q): %s", e.ShapeID, e.Style, e.Reason)
}

// UnknownClassError reports a type tag naming a class outside RiC-O.
type UnknownClassError struct {
	ShapeID string
	Class   string
}

func (e *UnknownClassError) Error() string {
	return fmt.Sprintf("shape %q: %q is not a RiC-O class", e.ShapeID, e.Class)
}
