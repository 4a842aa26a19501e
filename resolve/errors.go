package resolve

import "fmt"

// DanglingConnectionError reports a connector end that could not be
// attached to an individual or literal shape.
type DanglingConnectionError struct {
	ConnectorID string
	Label       string
	End         End
	Reason      string
}

func (e *DanglingConnectionError) Error() string {
	return fmt.Sprintf("connector %q labelled %q has no %s: %s", e.ConnectorID, e.Label, e.End, e.Reason)
}
