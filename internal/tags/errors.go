package tags

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateDefinition indicates an attempt to register a tag name twice.
	ErrDuplicateDefinition = errors.New("tags: duplicate definition")
	// ErrInvalidDefinition occurs when a definition fails schema validation.
	ErrInvalidDefinition = errors.New("tags: invalid definition")
)

// MissingAttributeError reports a required attribute omitted from a tag. It
// aborts the render: required attributes never fall back to defaults.
type MissingAttributeError struct {
	Tag  string
	Attr string
}

func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("tags: <%s> missing required attribute %q", e.Tag, e.Attr)
}
