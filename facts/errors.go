package facts

import "fmt"

// UnknownPredicateError reports a connector label that names no supported
// relation.
type UnknownPredicateError struct {
	ConnectorID string
	Label       string
}

func (e *UnknownPredicateError) Error() string {
	return fmt.Sprintf("connector %q: %q is not a RiC-O object or datatype property nor a supported meta relation", e.ConnectorID, e.Label)
}
