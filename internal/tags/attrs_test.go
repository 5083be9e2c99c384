package tags

import (
	"errors"
	"testing"

	"github.com/goliatone/go-landing/pkg/interfaces"
)

func TestValidator_ValidateDefinition(t *testing.T) {
	validator := NewValidator()

	valid := interfaces.TagDefinition{
		Name:    "image",
		Handler: noopHandler,
		Attrs: []interfaces.TagAttr{
			{Name: "src", Type: interfaces.TagAttrURL, Required: true},
			{Name: "width", Type: interfaces.TagAttrInt, Default: "1"},
		},
	}
	if err := validator.ValidateDefinition(valid); err != nil {
		t.Fatalf("ValidateDefinition() error = %v", err)
	}

	cases := []struct {
		name string
		def  interfaces.TagDefinition
	}{
		{"missing handler", interfaces.TagDefinition{Name: "x"}},
		{"blank name", interfaces.TagDefinition{Name: " ", Handler: noopHandler}},
		{"duplicate attr", interfaces.TagDefinition{
			Name:    "x",
			Handler: noopHandler,
			Attrs: []interfaces.TagAttr{
				{Name: "a", Type: interfaces.TagAttrString},
				{Name: "a", Type: interfaces.TagAttrString},
			},
		}},
		{"unknown attr type", interfaces.TagDefinition{
			Name:    "x",
			Handler: noopHandler,
			Attrs:   []interfaces.TagAttr{{Name: "a", Type: "float"}},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validator.ValidateDefinition(tc.def)
			if !errors.Is(err, ErrInvalidDefinition) {
				t.Fatalf("ValidateDefinition() error = %v, want ErrInvalidDefinition", err)
			}
		})
	}
}

func TestResolveAttrs_RequiredMissing(t *testing.T) {
	def := interfaces.TagDefinition{
		Name:    "link",
		Handler: noopHandler,
		Attrs:   []interfaces.TagAttr{{Name: "url", Type: interfaces.TagAttrURL, Required: true}},
	}

	_, err := ResolveAttrs(def, map[string]string{})

	var missing *MissingAttributeError
	if !errors.As(err, &missing) {
		t.Fatalf("ResolveAttrs() error = %v, want MissingAttributeError", err)
	}
	if missing.Tag != "link" || missing.Attr != "url" {
		t.Fatalf("MissingAttributeError = %+v", missing)
	}
}

func TestResolveAttrs_IntFallsBackSilently(t *testing.T) {
	def := interfaces.TagDefinition{
		Name:    "grid",
		Handler: noopHandler,
		Attrs:   []interfaces.TagAttr{{Name: "columns", Type: interfaces.TagAttrInt, Default: "2"}},
	}

	attrs, err := ResolveAttrs(def, map[string]string{"columns": "lots"})
	if err != nil {
		t.Fatalf("ResolveAttrs() error = %v", err)
	}
	if got := attrs.Int("columns"); got != 2 {
		t.Fatalf("columns = %d, want default 2", got)
	}

	attrs, err = ResolveAttrs(def, map[string]string{"columns": " 3 "})
	if err != nil {
		t.Fatalf("ResolveAttrs() error = %v", err)
	}
	if got := attrs.Int("columns"); got != 3 {
		t.Fatalf("columns = %d, want 3", got)
	}
}

func TestResolveAttrs_OptionalDefaults(t *testing.T) {
	def := interfaces.TagDefinition{
		Name:    "section",
		Handler: noopHandler,
		Attrs: []interfaces.TagAttr{
			{Name: "background", Type: interfaces.TagAttrString, Default: "default"},
			{Name: "padding", Type: interfaces.TagAttrInt, Default: "16"},
		},
	}

	attrs, err := ResolveAttrs(def, nil)
	if err != nil {
		t.Fatalf("ResolveAttrs() error = %v", err)
	}
	if got := attrs.String("background"); got != "default" {
		t.Fatalf("background = %q", got)
	}
	if got := attrs.Int("padding"); got != 16 {
		t.Fatalf("padding = %d", got)
	}
}

func TestResolveAttrs_URLUsesSuppliedValue(t *testing.T) {
	def := interfaces.TagDefinition{
		Name:    "button",
		Handler: noopHandler,
		Attrs: []interfaces.TagAttr{
			{Name: "url", Type: interfaces.TagAttrURL, Required: true},
			{Name: "fallback", Type: interfaces.TagAttrURL, Default: "mailto:support@example.com"},
		},
	}

	// A supplied required URL always resolves: relative references are
	// valid authoring input and never escalate to a hard failure.
	cases := []string{
		"hero.png",
		"/buy/pro",
		"https://example.com/pricing",
		"mailto:hello@example.com",
	}
	for _, supplied := range cases {
		attrs, err := ResolveAttrs(def, map[string]string{"url": supplied})
		if err != nil {
			t.Fatalf("ResolveAttrs(url=%q) error = %v", supplied, err)
		}
		if got := attrs.String("url"); got != supplied {
			t.Fatalf("url = %q, want %q", got, supplied)
		}
	}

	// Whitespace is trimmed; the missing optional attr falls back.
	attrs, err := ResolveAttrs(def, map[string]string{"url": " /buy/pro "})
	if err != nil {
		t.Fatalf("ResolveAttrs() error = %v", err)
	}
	if got := attrs.String("url"); got != "/buy/pro" {
		t.Fatalf("url = %q", got)
	}
	if got := attrs.String("fallback"); got != "mailto:support@example.com" {
		t.Fatalf("fallback = %q", got)
	}
}

func TestResolveAttrs_IgnoresUndeclared(t *testing.T) {
	def := interfaces.TagDefinition{
		Name:    "center",
		Handler: noopHandler,
		Attrs:   []interfaces.TagAttr{{Name: "spacing", Type: interfaces.TagAttrInt, Default: "12"}},
	}

	attrs, err := ResolveAttrs(def, map[string]string{"spacing": "8", "onclick": "alert(1)"})
	if err != nil {
		t.Fatalf("ResolveAttrs() error = %v", err)
	}
	if _, ok := attrs["onclick"]; ok {
		t.Fatalf("undeclared attribute leaked into resolved attrs")
	}
	if got := attrs.Int("spacing"); got != 8 {
		t.Fatalf("spacing = %d", got)
	}
}
