package object

import (
	"errors"
	"fmt"
)

// ErrNoAttribute is the not-found signal of attribute resolution.
// Every miss — an unknown name, an out-of-scope extension — wraps it,
// so callers distinguish a miss from a genuine failure with errors.Is.
var ErrNoAttribute = errors.New("no attribute")

// NoAttribute builds the canonical not-found error for name.
func NoAttribute(name string) error {
	return fmt.Errorf("%w '%s'", ErrNoAttribute, name)
}
