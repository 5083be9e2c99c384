package interfaces

import (
	"context"

	"github.com/yuin/goldmark/ast"

	"github.com/goliatone/go-landing/pkg/page"
)

// DocumentParser converts raw page source (frontmatter + markdown dialect)
// into a parsed document. Implementations should be stateless so a single
// instance can be shared across renders without locking.
type DocumentParser interface {
	Parse(source []byte) (*Document, error)
}

// PageRenderer folds a parsed document into one deferred view. The fold is
// pure: applying the resulting view to a state snapshot yields the element
// tree for that state, and the same document and state always produce a
// structurally identical tree.
type PageRenderer interface {
	Render(ctx context.Context, doc *Document) (page.View, error)
}

// Document is a parsed page: extracted metadata, the markdown body with the
// frontmatter delimiters stripped, and the goldmark AST over that body. Body
// is retained because goldmark nodes reference source offsets.
type Document struct {
	Meta PageMeta
	Body []byte
	Root ast.Node
}

// PageMeta models the frontmatter envelope ahead of the markdown body.
// Custom collects any fields outside the well-known set.
type PageMeta struct {
	Title       string
	Description string
	Author      string
	Draft       bool
	Custom      map[string]any
}
