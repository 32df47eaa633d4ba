package ratiobox

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDirection is matched by a ConfigError for a bad direction value.
	ErrInvalidDirection = errors.New("invalid direction")
	// ErrInvalidRatio is matched by a ConfigError for a ratio that cannot be resolved.
	ErrInvalidRatio = errors.New("ratio must be a valid proportion")
	// ErrChildCount is matched by a StructuralError.
	ErrChildCount = errors.New("exactly one child required")
)

// ConfigError reports a direction or ratio value that could not be parsed.
// Construction fails outright when one is returned.
type ConfigError struct {
	Attr  string
	Value string
	Err   error
}

func (e *ConfigError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("ratiobox: %s: %v", e.Attr, e.Err)
	}
	return fmt.Sprintf("ratiobox: %s %q: %v", e.Attr, e.Value, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// StructuralError reports a measure or layout pass on a box that does not
// hold exactly one child.
type StructuralError struct {
	Children int
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("ratiobox: %v, have %d", ErrChildCount, e.Children)
}

func (e *StructuralError) Unwrap() error {
	return ErrChildCount
}
