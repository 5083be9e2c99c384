// Package landing renders a markdown dialect into an interactive page
// layout. A parsed document folds through a registry of custom tag handlers
// into a deferred view — a pure function from application state to a UI
// element tree — which hosts apply on every state change.
package landing

import (
	"context"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-landing/internal/di"
	"github.com/goliatone/go-landing/pkg/interfaces"
	"github.com/goliatone/go-landing/pkg/page"
	"github.com/goliatone/go-landing/pkg/ui"
)

// State exports the application state snapshot consumed by views.
type State = page.State

// View exports the deferred render function type.
type View = page.View

// Assignment exports the per-test experiment assignment record.
type Assignment = page.Assignment

// EmailStatus exports the email submission lifecycle enum.
type EmailStatus = page.EmailStatus

// Email submission lifecycle values.
const (
	EmailIdle     = page.EmailIdle
	EmailSending  = page.EmailSending
	EmailAccepted = page.EmailAccepted
	EmailRejected = page.EmailRejected
)

// Element exports the rendered UI element type.
type Element = ui.Element

// TagDefinition exports the custom tag definition contract.
type TagDefinition = interfaces.TagDefinition

// TagRegistry exports the registry contract.
type TagRegistry = interfaces.TagRegistry

// Document exports the parsed document type.
type Document = interfaces.Document

// PageMeta exports the frontmatter metadata envelope.
type PageMeta = interfaces.PageMeta

// Module represents the top level rendering runtime facade.
type Module struct {
	container *di.Container
}

// New constructs a module using the provided configuration and optional DI
// overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Tags returns the configured tag registry.
func (m *Module) Tags() interfaces.TagRegistry {
	return m.container.Registry()
}

// Parser returns the configured document parser.
func (m *Module) Parser() interfaces.DocumentParser {
	return m.container.Parser()
}

// Renderer returns the configured page renderer.
func (m *Module) Renderer() interfaces.PageRenderer {
	return m.container.Renderer()
}

// RenderPage parses the source, folds it into a view, and applies the state
// snapshot in one call. Structural failures (missing required attributes,
// malformed tables, handler errors) come back wrapped with the validation
// category; no partial element tree is produced.
func (m *Module) RenderPage(ctx context.Context, source []byte, st State) (Element, error) {
	doc, err := m.container.Parser().Parse(source)
	if err != nil {
		return ui.Nothing(), goerrors.Wrap(err, goerrors.CategoryValidation, "page parse failed")
	}

	view, err := m.container.Renderer().Render(ctx, doc)
	if err != nil {
		return ui.Nothing(), goerrors.Wrap(err, goerrors.CategoryValidation, "page render failed")
	}

	return view(st), nil
}
