package tags

import (
	"fmt"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-landing/pkg/interfaces"
)

// Validator performs definition validation for the registry.
type Validator struct{}

// NewValidator returns a Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateDefinition ensures the definition carries a name, a handler, and a
// well-formed attribute schema.
func (v *Validator) ValidateDefinition(def interfaces.TagDefinition) error {
	err := validation.ValidateStruct(&def,
		validation.Field(&def.Name, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("landing.tags.name_required", "tag name is required")
			}
			return nil
		})),
		validation.Field(&def.Handler, validation.By(func(value any) error {
			if handler, ok := value.(interfaces.TagHandler); !ok || handler == nil {
				return validation.NewError("landing.tags.handler_required", "tag handler is required")
			}
			return nil
		})),
		validation.Field(&def.Attrs, validation.By(validateAttrSchema)),
	)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidDefinition, def.Name, err)
	}
	return nil
}

func validateAttrSchema(value any) error {
	attrs, ok := value.([]interfaces.TagAttr)
	if !ok {
		return validation.NewError("landing.tags.attrs_invalid", "attribute schema has unexpected type")
	}

	seen := make(map[string]struct{}, len(attrs))
	for _, attr := range attrs {
		name := strings.TrimSpace(attr.Name)
		if name == "" {
			return validation.NewError("landing.tags.attr_name_required", "attribute name is required")
		}
		if _, dup := seen[name]; dup {
			return validation.NewError("landing.tags.attr_duplicate", fmt.Sprintf("duplicate attribute %q", name))
		}
		seen[name] = struct{}{}

		switch attr.Type {
		case interfaces.TagAttrString, interfaces.TagAttrInt, interfaces.TagAttrURL:
		default:
			return validation.NewError("landing.tags.attr_type_unknown", fmt.Sprintf("attribute %q has unknown type %q", name, attr.Type))
		}
	}
	return nil
}

// ResolveAttrs normalises the raw attribute strings parsed from markup
// against the definition schema. Two distinct failure policies apply:
//
//   - a required attribute that is absent aborts the render with a
//     *MissingAttributeError naming the tag and attribute;
//   - an optional int attribute whose value does not parse falls back to its
//     declared default without surfacing an error.
//
// Attributes the schema does not declare are ignored, matching how browsers
// treat stray attributes on HTML-like markup.
func ResolveAttrs(def interfaces.TagDefinition, supplied map[string]string) (interfaces.TagAttrs, error) {
	out := make(interfaces.TagAttrs, len(def.Attrs))

	for _, attr := range def.Attrs {
		raw, present := supplied[attr.Name]
		if !present {
			if attr.Required {
				return nil, &MissingAttributeError{Tag: def.Name, Attr: attr.Name}
			}
			out[attr.Name] = resolveDefault(attr)
			continue
		}

		switch attr.Type {
		case interfaces.TagAttrInt:
			parsed, err := strconv.Atoi(strings.TrimSpace(raw))
			if err != nil {
				out[attr.Name] = resolveDefault(attr)
				continue
			}
			out[attr.Name] = parsed
		case interfaces.TagAttrURL:
			// Supplied URLs are used as-is after trimming: relative paths
			// ("hero.png", "/buy/pro") are valid authoring input, and a
			// present value never escalates to a hard failure.
			out[attr.Name] = strings.TrimSpace(raw)
		default:
			out[attr.Name] = raw
		}
	}

	return out, nil
}

func resolveDefault(attr interfaces.TagAttr) any {
	if attr.Type == interfaces.TagAttrInt {
		parsed, err := strconv.Atoi(strings.TrimSpace(attr.Default))
		if err != nil {
			return 0
		}
		return parsed
	}
	return attr.Default
}
