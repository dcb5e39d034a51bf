package deltalog

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned when either top-level value handed to a
	// comparison is nil. It is raised before any traversal; no partial
	// changelog is ever produced.
	ErrInvalidInput = errors.New("deltalog: prior and latest values must be non-nil")

	// ErrUnknownNote indicates an entry was requested with a note outside
	// Added, Updated, Deleted. Not reachable through the public surface.
	ErrUnknownNote = errors.New("deltalog: unknown changelog note")
)

// UnsupportedValueError is returned when a function value is found at a
// compared position. It aborts the entire comparison, not just the branch
// it was found on.
type UnsupportedValueError struct {
	// Path addresses the exact position of the offending value,
	// eg "root.key1.subKey1[0]"
	Path string
}

func (e *UnsupportedValueError) Error() string {
	return fmt.Sprintf("deltalog: function found at %s", e.Path)
}
