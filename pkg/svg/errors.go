package svg

import (
	"errors"
	"fmt"
)

// NotFoundError is returned when a requested icon name resolves to no
// existing file in any searched set, or when a filtered name has no
// backing file. Name carries the prefix-stripped icon name and Set the
// set against which the final check failed.
type NotFoundError struct {
	Name string
	Set  string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Svg by name %q from set %q not found.", e.Name, e.Set)
}

// ErrUnknownSet is returned when an operation references a set name that
// was never registered.
var ErrUnknownSet = errors.New("svg: unknown set")

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
