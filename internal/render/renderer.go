// Package render folds a parsed document into one deferred view: a
// structure-preserving bottom-up transform of the goldmark AST through the
// standard markdown handlers and the custom tag registry. The fold is pure;
// all state-dependent behaviour lives inside the views it produces.
package render

import (
	"context"
	"errors"
	"fmt"

	"github.com/yuin/goldmark/ast"

	"github.com/goliatone/go-landing/internal/logging"
	"github.com/goliatone/go-landing/internal/markdown"
	"github.com/goliatone/go-landing/internal/tags"
	"github.com/goliatone/go-landing/pkg/interfaces"
	"github.com/goliatone/go-landing/pkg/page"
	"github.com/goliatone/go-landing/pkg/ui"
)

// ErrNilDocument indicates Render was called without a parsed document.
var ErrNilDocument = errors.New("render: document required")

// Option configures the renderer instance.
type Option func(*Renderer)

// WithLogger overrides the default no-op logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(r *Renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// Renderer drives the fold. A single instance is safe for concurrent use:
// it holds no per-render state.
type Renderer struct {
	registry interfaces.TagRegistry
	logger   interfaces.Logger
}

// New constructs a renderer dispatching custom tags through the registry.
func New(registry interfaces.TagRegistry, opts ...Option) *Renderer {
	r := &Renderer{
		registry: registry,
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render folds the document into one top-level view: a vertically spaced
// container holding one rendered element per top-level block. The first
// structural error aborts the fold; no partial view is returned.
func (r *Renderer) Render(ctx context.Context, doc *interfaces.Document) (page.View, error) {
	if doc == nil || doc.Root == nil {
		return nil, ErrNilDocument
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	views, err := r.foldChildren(doc.Root, doc.Body)
	if err != nil {
		return nil, err
	}

	return func(st page.State) ui.Element {
		return ui.El("main", page.Apply(views, st)...).
			WithAttr("class", "landing-page").
			WithAttr("style", "display:flex;flex-direction:column;row-gap:24px")
	}, nil
}

// item is one unit of the sibling scan: either a regular AST node or a
// custom tag token lifted out of a raw HTML fragment.
type item struct {
	node ast.Node
	tok  *markdown.TagToken
}

func (r *Renderer) foldChildren(parent ast.Node, source []byte) ([]page.View, error) {
	var nodes []ast.Node
	for child := parent.FirstChild(); child != nil; child = child.NextSibling() {
		nodes = append(nodes, child)
	}
	return r.foldItems(r.flatten(nodes, source), source)
}

// flatten turns the sibling list into a scan list, lifting registry-known
// tags out of HTMLBlock/RawHTML nodes. Unknown tags and fragments that are
// not pure tag markup stay as inert nodes.
func (r *Renderer) flatten(nodes []ast.Node, source []byte) []item {
	var items []item
	for _, node := range nodes {
		fragment, isRaw := rawFragment(node, source)
		if !isRaw {
			items = append(items, item{node: node})
			continue
		}

		tokens, ok := markdown.ParseTagMarkup(fragment)
		if !ok {
			items = append(items, item{node: node})
			continue
		}

		for i := range tokens {
			if _, known := r.registry.Get(tokens[i].Name); !known {
				r.logger.Debug("render: ignoring unknown tag", "tag", tokens[i].Name)
				continue
			}
			items = append(items, item{tok: &tokens[i]})
		}
	}
	return items
}

// foldItems renders a scan list bottom-up, pairing open/close tag tokens so
// a custom tag can wrap standard markdown siblings. An unbalanced close tag
// renders nothing; an unclosed open tag swallows the remaining siblings.
func (r *Renderer) foldItems(items []item, source []byte) ([]page.View, error) {
	var views []page.View
	for i := 0; i < len(items); {
		current := items[i]

		if current.tok == nil {
			view, err := r.renderNode(current.node, source)
			if err != nil {
				return nil, err
			}
			if view != nil {
				views = append(views, view)
			}
			i++
			continue
		}

		switch current.tok.Kind {
		case markdown.TagSelfClose:
			view, err := r.dispatch(*current.tok, nil)
			if err != nil {
				return nil, err
			}
			views = append(views, view)
			i++
		case markdown.TagClose:
			i++
		default:
			var inner []item
			if end := matchClose(items, i); end == -1 {
				inner = items[i+1:]
				i = len(items)
			} else {
				inner = items[i+1 : end]
				i = end + 1
			}

			children, err := r.foldItems(inner, source)
			if err != nil {
				return nil, err
			}
			view, err := r.dispatch(*current.tok, children)
			if err != nil {
				return nil, err
			}
			views = append(views, view)
		}
	}
	return views, nil
}

// matchClose returns the index of the close token matching the open token at
// start, tracking nesting of same-named tags. -1 means unclosed.
func matchClose(items []item, start int) int {
	name := items[start].tok.Name
	depth := 0
	for i := start + 1; i < len(items); i++ {
		tok := items[i].tok
		if tok == nil || tok.Name != name {
			continue
		}
		switch tok.Kind {
		case markdown.TagOpen:
			depth++
		case markdown.TagClose:
			if depth == 0 {
				return i
			}
			depth--
		}
	}
	return -1
}

// dispatch resolves attributes against the registered schema and invokes
// the tag handler. Attribute resolution keeps the asymmetric error policy:
// missing required attributes fail the render, soft value errors fall back
// to declared defaults inside ResolveAttrs.
func (r *Renderer) dispatch(tok markdown.TagToken, children []page.View) (page.View, error) {
	def, ok := r.registry.Get(tok.Name)
	if !ok {
		return page.Empty(), nil
	}

	attrs, err := tags.ResolveAttrs(def, tok.Attrs)
	if err != nil {
		return nil, err
	}

	view, err := def.Handler(interfaces.TagContext{Logger: r.logger}, attrs, children)
	if err != nil {
		return nil, fmt.Errorf("render: tag <%s>: %w", tok.Name, err)
	}
	return view, nil
}

// rawFragment extracts the source text of raw HTML nodes; other node kinds
// report false.
func rawFragment(node ast.Node, source []byte) (string, bool) {
	switch n := node.(type) {
	case *ast.HTMLBlock:
		var out []byte
		for i := 0; i < n.Lines().Len(); i++ {
			segment := n.Lines().At(i)
			out = append(out, segment.Value(source)...)
		}
		if n.HasClosure() {
			out = append(out, n.ClosureLine.Value(source)...)
		}
		return string(out), true
	case *ast.RawHTML:
		var out []byte
		for i := 0; i < n.Segments.Len(); i++ {
			segment := n.Segments.At(i)
			out = append(out, segment.Value(source)...)
		}
		return string(out), true
	default:
		return "", false
	}
}
