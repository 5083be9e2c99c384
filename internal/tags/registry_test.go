package tags

import (
	"errors"
	"testing"

	"github.com/goliatone/go-landing/pkg/interfaces"
	"github.com/goliatone/go-landing/pkg/page"
	"github.com/goliatone/go-landing/pkg/ui"
)

func noopHandler(ctx interfaces.TagContext, attrs interfaces.TagAttrs, children []page.View) (page.View, error) {
	return page.Static(ui.El("div")), nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	registry := NewRegistry(NewValidator())

	def := interfaces.TagDefinition{Name: "Stripe", Handler: noopHandler}
	if err := registry.Register(def); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	got, ok := registry.Get("stripe")
	if !ok {
		t.Fatalf("Get(stripe) expected definition")
	}
	if got.Name != "Stripe" {
		t.Fatalf("Get(stripe) name = %q", got.Name)
	}

	// Lookup shares Register's canonical form: case and padding are
	// irrelevant on both sides.
	if _, ok := registry.Get("STRIPE"); !ok {
		t.Fatalf("Get(STRIPE) expected definition")
	}
	if _, ok := registry.Get("  stripe  "); !ok {
		t.Fatalf("Get with padded name expected definition")
	}
}

func TestRegistry_DuplicateRejected(t *testing.T) {
	registry := NewRegistry(NewValidator())

	def := interfaces.TagDefinition{Name: "grid", Handler: noopHandler}
	if err := registry.Register(def); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	err := registry.Register(interfaces.TagDefinition{Name: "GRID", Handler: noopHandler})
	if !errors.Is(err, ErrDuplicateDefinition) {
		t.Fatalf("Register() duplicate error = %v, want ErrDuplicateDefinition", err)
	}
}

func TestRegistry_EmptyNameRejected(t *testing.T) {
	registry := NewRegistry(NewValidator())

	err := registry.Register(interfaces.TagDefinition{Name: "   ", Handler: noopHandler})
	if !errors.Is(err, ErrInvalidDefinition) {
		t.Fatalf("Register() error = %v, want ErrInvalidDefinition", err)
	}
}

func TestRegistry_ListSorted(t *testing.T) {
	registry := NewRegistry(nil)

	for _, name := range []string{"stars", "callout", "grid"} {
		if err := registry.Register(interfaces.TagDefinition{Name: name, Handler: noopHandler}); err != nil {
			t.Fatalf("Register(%s) error = %v", name, err)
		}
	}

	defs := registry.List()
	if len(defs) != 3 {
		t.Fatalf("List() len = %d, want 3", len(defs))
	}
	want := []string{"callout", "grid", "stars"}
	for i, def := range defs {
		if def.Name != want[i] {
			t.Fatalf("List()[%d] = %q, want %q", i, def.Name, want[i])
		}
	}
}

func TestRegistry_Remove(t *testing.T) {
	registry := NewRegistry(nil)

	if err := registry.Register(interfaces.TagDefinition{Name: "quote", Handler: noopHandler}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	registry.Remove("QUOTE")
	if _, ok := registry.Get("quote"); ok {
		t.Fatalf("Get(quote) expected definition removed")
	}
}
