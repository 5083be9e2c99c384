// Package markdown parses landing page sources: a frontmatter envelope
// followed by a markdown dialect whose custom tags arrive as raw HTML nodes.
// The package produces the goldmark AST consumed by the render fold; it never
// renders HTML itself.
package markdown
