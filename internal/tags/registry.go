// Package tags implements the custom tag catalogue for the landing page
// dialect: a registry of named definitions, attribute resolution against the
// declared schema, and the built-in handler set.
package tags

import (
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-landing/pkg/interfaces"
)

// DefinitionValidator checks a definition before it enters the catalogue.
// A nil validator skips the check entirely.
type DefinitionValidator interface {
	ValidateDefinition(def interfaces.TagDefinition) error
}

// Registry maps tag names to their definitions. Names are canonicalized
// through normalizeTag on every operation, so <Section> and <section> in page
// markup resolve to the same handler. Concurrent renders may look up tags
// while a host registers more, hence the RWMutex.
type Registry struct {
	mu        sync.RWMutex
	validator DefinitionValidator
	catalogue map[string]interfaces.TagDefinition
}

// NewRegistry returns an empty registry. Definitions registered later are
// checked by the supplied validator.
func NewRegistry(validator DefinitionValidator) *Registry {
	return &Registry{
		validator: validator,
		catalogue: make(map[string]interfaces.TagDefinition),
	}
}

// normalizeTag is the single place tag names are canonicalized. The HTML
// tokenizer already lowercases names on the markup side; this keeps
// registration and lookup on the same form.
func normalizeTag(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Register adds a definition under its canonical name. A blank name or a
// validator rejection yields ErrInvalidDefinition; a name already in the
// catalogue yields ErrDuplicateDefinition and leaves the existing entry
// untouched. The definition is stored as given: only the map key is
// canonicalized, Name keeps the author's casing.
func (r *Registry) Register(def interfaces.TagDefinition) error {
	key := normalizeTag(def.Name)
	if key == "" {
		return ErrInvalidDefinition
	}

	if r.validator != nil {
		if err := r.validator.ValidateDefinition(def); err != nil {
			return err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.catalogue[key]; taken {
		return ErrDuplicateDefinition
	}
	r.catalogue[key] = def
	return nil
}

// Get resolves a tag name to its definition.
func (r *Registry) Get(name string) (interfaces.TagDefinition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	def, ok := r.catalogue[normalizeTag(name)]
	return def, ok
}

// List returns the catalogue sorted by name, one entry per tag.
func (r *Registry) List() []interfaces.TagDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	defs := make([]interfaces.TagDefinition, 0, len(r.catalogue))
	for _, def := range r.catalogue {
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i, j int) bool {
		return defs[i].Name < defs[j].Name
	})
	return defs
}

// Remove drops a tag from the catalogue. Unknown names are a no-op.
func (r *Registry) Remove(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.catalogue, normalizeTag(name))
}

var _ interfaces.TagRegistry = (*Registry)(nil)
