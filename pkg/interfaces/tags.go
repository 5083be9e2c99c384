package interfaces

import (
	"github.com/goliatone/go-landing/pkg/page"
)

// TagRegistry describes the lifecycle contract for registering and resolving
// custom tag definitions. Implementations must be safe for concurrent use.
type TagRegistry interface {
	// Register stores a definition and returns an error when a tag with the
	// same name already exists or the definition fails validation.
	Register(definition TagDefinition) error

	// Get returns the definition for the supplied tag name. Lookup is
	// case-insensitive.
	Get(name string) (TagDefinition, bool)

	// List exposes the current catalogue sorted by name.
	List() []TagDefinition

	// Remove deletes the tag from the registry. Removing an unknown tag is
	// a no-op.
	Remove(name string)
}

// TagAttrType enumerates the supported attribute coercions. Attribute values
// always arrive as raw strings from the markup; the type controls how they
// are resolved before the handler runs.
type TagAttrType string

const (
	TagAttrString TagAttrType = "string"
	TagAttrInt    TagAttrType = "int"
	TagAttrURL    TagAttrType = "url"
)

// TagAttr declares one attribute accepted by a tag. A required attribute has
// no default: omitting it fails the render. An optional attribute falls back
// to Default, and an int-typed attribute whose value does not parse also
// falls back to Default without surfacing an error.
type TagAttr struct {
	Name     string
	Type     TagAttrType
	Required bool
	Default  string
}

// TagDefinition captures the metadata, attribute schema, and handler the
// registry stores for a custom tag.
type TagDefinition struct {
	Name        string
	Description string
	Attrs       []TagAttr
	Handler     TagHandler
}

// TagAttrs holds resolved attribute values keyed by name. Values are either
// string or int depending on the declared type; the accessors hide the
// distinction.
type TagAttrs map[string]any

// String returns the named attribute as a string, or "" when absent.
func (a TagAttrs) String(name string) string {
	if value, ok := a[name].(string); ok {
		return value
	}
	return ""
}

// Int returns the named attribute as an int, or 0 when absent.
func (a TagAttrs) Int(name string) int {
	if value, ok := a[name].(int); ok {
		return value
	}
	return 0
}

// TagContext provides runtime collaborators surfaced to handlers.
type TagContext struct {
	Logger Logger
}

// TagHandler folds a tag's resolved attributes and already-rendered children
// into a deferred view. Handlers must be pure: all state-dependent behaviour
// belongs inside the returned view.
type TagHandler func(ctx TagContext, attrs TagAttrs, children []page.View) (page.View, error)
