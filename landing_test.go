package landing

import (
	"context"
	"strings"
	"testing"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-landing/pkg/ui"
)

const demoPage = `---
title: Launch
---

# Ship faster

Copy that sells.

<section background="light">

<email-input group="launch" />

</section>

<test id="hero" version="b">

## Variant headline

</test>
`

func newModule(t *testing.T) *Module {
	t.Helper()
	module, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return module
}

func TestRenderPage_EndToEnd(t *testing.T) {
	module := newModule(t)

	el, err := module.RenderPage(context.Background(), []byte(demoPage), State{})
	if err != nil {
		t.Fatalf("RenderPage() error = %v", err)
	}
	if el.Tag != "main" {
		t.Fatalf("root tag = %q", el.Tag)
	}

	var formCount int
	var walk func(ui.Element)
	walk = func(e ui.Element) {
		if e.Tag == "form" {
			formCount++
		}
		for _, c := range e.Children {
			walk(c)
		}
	}
	walk(el)
	if formCount != 1 {
		t.Fatalf("forms = %d, want 1", formCount)
	}
}

func TestRenderPage_StateDrivesOutput(t *testing.T) {
	module := newModule(t)
	ctx := context.Background()
	source := []byte(demoPage)

	idle, err := module.RenderPage(ctx, source, State{})
	if err != nil {
		t.Fatalf("RenderPage() error = %v", err)
	}
	assigned, err := module.RenderPage(ctx, source, State{
		Experiments: []Assignment{{Test: "hero", Variant: "B"}},
	})
	if err != nil {
		t.Fatalf("RenderPage() error = %v", err)
	}

	hasVariant := func(el Element) bool {
		var found bool
		var walk func(ui.Element)
		walk = func(e ui.Element) {
			if e.Tag == "h2" {
				found = true
			}
			for _, c := range e.Children {
				walk(c)
			}
		}
		walk(el)
		return found
	}

	if hasVariant(idle) {
		t.Fatalf("unassigned visitor saw the variant headline")
	}
	if !hasVariant(assigned) {
		t.Fatalf("assigned visitor did not see the variant headline")
	}
}

func TestRenderPage_EncodesToHTML(t *testing.T) {
	module := newModule(t)

	el, err := module.RenderPage(context.Background(), []byte(demoPage), State{})
	if err != nil {
		t.Fatalf("RenderPage() error = %v", err)
	}

	html, err := ui.EncodeHTML(el)
	if err != nil {
		t.Fatalf("EncodeHTML() error = %v", err)
	}
	if !strings.Contains(html, "<main") || !strings.Contains(html, "Ship faster") {
		t.Fatalf("encoded page missing expected content:\n%s", html)
	}
}

func TestRenderPage_ValidationCategoryOnFailure(t *testing.T) {
	module := newModule(t)

	_, err := module.RenderPage(context.Background(), []byte("<image alt=\"no src\" />\n"), State{})
	if err == nil {
		t.Fatalf("RenderPage() expected error for missing required attribute")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("error category = %v, want validation", err)
	}
}

func TestNew_CustomDefinitions(t *testing.T) {
	module := newModule(t)

	if _, ok := module.Tags().Get("plan"); !ok {
		t.Fatalf("builtin plan tag missing from facade registry")
	}
	if got := len(module.Tags().List()); got == 0 {
		t.Fatalf("registry empty")
	}
}
