package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/goliatone/go-landing/pkg/interfaces"
)

// Config controls which goldmark extensions the parser enables.
type Config struct {
	Extensions []string
}

// Parser implements interfaces.DocumentParser using the goldmark engine. The
// parser is intentionally stateless so callers can reuse a single instance
// across requests without additional locking.
type Parser struct {
	engine goldmark.Markdown
}

// NewParser constructs a parser with the configured extension set (GFM plus
// task lists when none is named).
func NewParser(cfg Config) *Parser {
	return &Parser{
		engine: goldmark.New(
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
			goldmark.WithExtensions(collectExtensions(cfg.Extensions)...),
		),
	}
}

// Parse satisfies interfaces.DocumentParser: it strips the frontmatter
// envelope and parses the remaining body into a goldmark AST. Custom tags in
// the body survive as HTMLBlock/RawHTML nodes for the fold to classify.
func (p *Parser) Parse(source []byte) (*interfaces.Document, error) {
	meta, body, err := ParseFrontMatter(source)
	if err != nil {
		return nil, err
	}

	root := p.engine.Parser().Parse(text.NewReader(body))
	return &interfaces.Document{
		Meta: meta,
		Body: body,
		Root: root,
	}, nil
}

var extensionRegistry = map[string]goldmark.Extender{
	"gfm":           extension.GFM,
	"table":         extension.Table,
	"tables":        extension.Table,
	"strikethrough": extension.Strikethrough,
	"linkify":       extension.Linkify,
	"autolink":      extension.Linkify,
	"tasklist":      extension.TaskList,
	"definition":    extension.DefinitionList,
	"footnote":      extension.Footnote,
}

// collectExtensions maps configured extension names onto goldmark extenders.
// Unsupported names are ignored.
func collectExtensions(names []string) []goldmark.Extender {
	if len(names) == 0 {
		return []goldmark.Extender{
			extension.GFM,
			extension.TaskList,
		}
	}

	var extenders []goldmark.Extender
	seen := map[string]struct{}{}

	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}

		if _, ok := seen[key]; ok {
			continue
		}

		ext, ok := extensionRegistry[key]
		if !ok {
			continue
		}

		extenders = append(extenders, ext)
		seen[key] = struct{}{}
	}

	return extenders
}

// Ensure Parser implements interfaces.DocumentParser.
var _ interfaces.DocumentParser = (*Parser)(nil)
