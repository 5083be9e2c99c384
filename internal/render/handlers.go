package render

import (
	"fmt"
	"strconv"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"

	"github.com/goliatone/go-landing/pkg/page"
	"github.com/goliatone/go-landing/pkg/ui"
)

// renderNode maps one standard markdown node onto a view, folding its
// children first. Code spans and strikethrough intentionally render as
// nothing; that matches the shipped page's behaviour and stays that way
// until product says otherwise.
func (r *Renderer) renderNode(node ast.Node, source []byte) (page.View, error) {
	switch n := node.(type) {
	case *ast.Heading:
		children, err := r.foldChildren(n, source)
		if err != nil {
			return nil, err
		}
		return containerView(fmt.Sprintf("h%d", n.Level), children), nil

	case *ast.Paragraph:
		children, err := r.foldChildren(n, source)
		if err != nil {
			return nil, err
		}
		return containerView("p", children), nil

	case *ast.TextBlock:
		children, err := r.foldChildren(n, source)
		if err != nil {
			return nil, err
		}
		return containerView("span", children), nil

	case *ast.Text:
		value := string(n.Segment.Value(source))
		if n.HardLineBreak() {
			return page.Static(ui.El("span", ui.Text(value), ui.El("br"))), nil
		}
		if n.SoftLineBreak() {
			value += " "
		}
		return page.Static(ui.Text(value)), nil

	case *ast.String:
		return page.Static(ui.Text(string(n.Value))), nil

	case *ast.Emphasis:
		children, err := r.foldChildren(n, source)
		if err != nil {
			return nil, err
		}
		tag := "em"
		if n.Level >= 2 {
			tag = "strong"
		}
		return containerView(tag, children), nil

	case *ast.Link:
		children, err := r.foldChildren(n, source)
		if err != nil {
			return nil, err
		}
		attrs := []ui.Attr{{Key: "href", Value: string(n.Destination)}}
		if len(n.Title) > 0 {
			attrs = append(attrs, ui.Attr{Key: "title", Value: string(n.Title)})
		}
		return containerView("a", children, attrs...), nil

	case *ast.AutoLink:
		url := string(n.URL(source))
		el := ui.El("a", ui.Text(string(n.Label(source)))).WithAttr("href", url)
		return page.Static(el), nil

	case *ast.Image:
		el := ui.El("img").
			WithAttr("src", string(n.Destination)).
			WithAttr("alt", string(n.Text(source)))
		return page.Static(el), nil

	case *ast.Blockquote:
		children, err := r.foldChildren(n, source)
		if err != nil {
			return nil, err
		}
		return containerView("blockquote", children), nil

	case *ast.List:
		children, err := r.foldChildren(n, source)
		if err != nil {
			return nil, err
		}
		if !n.IsOrdered() {
			return containerView("ul", children), nil
		}
		var attrs []ui.Attr
		if n.Start != 1 {
			attrs = append(attrs, ui.Attr{Key: "start", Value: strconv.Itoa(n.Start)})
		}
		return containerView("ol", children, attrs...), nil

	case *ast.ListItem:
		children, err := r.foldChildren(n, source)
		if err != nil {
			return nil, err
		}
		return containerView("li", children), nil

	case *east.TaskCheckBox:
		el := ui.El("input").
			WithAttr("type", "checkbox").
			WithAttr("disabled", "")
		if n.IsChecked {
			el = el.WithAttr("checked", "")
		}
		return page.Static(el), nil

	case *ast.FencedCodeBlock:
		code := ui.El("code", ui.Text(blockLines(n, source)))
		if language := n.Language(source); len(language) > 0 {
			code = code.WithAttr("class", "language-"+string(language))
		}
		return page.Static(ui.El("pre", code)), nil

	case *ast.CodeBlock:
		return page.Static(ui.El("pre", ui.El("code", ui.Text(blockLines(n, source))))), nil

	case *ast.ThematicBreak:
		return page.Static(ui.El("hr")), nil

	case *ast.CodeSpan:
		return page.Empty(), nil

	case *east.Strikethrough:
		return page.Empty(), nil

	case *east.Table:
		return r.renderTable(n, source)

	case *ast.HTMLBlock, *ast.RawHTML:
		// Raw HTML that is not custom tag markup stays inert.
		return page.Empty(), nil

	default:
		r.logger.Debug("render: skipping unsupported node", "kind", node.Kind().String())
		return page.Empty(), nil
	}
}

// renderTable folds the GFM table subtree with strict structure checks: a
// child outside the header/row/cell shape fails the render.
func (r *Renderer) renderTable(table *east.Table, source []byte) (page.View, error) {
	var rows []page.View
	for child := table.FirstChild(); child != nil; child = child.NextSibling() {
		switch row := child.(type) {
		case *east.TableHeader:
			view, err := r.renderTableRow(row, source, "th")
			if err != nil {
				return nil, err
			}
			rows = append(rows, view)
		case *east.TableRow:
			view, err := r.renderTableRow(row, source, "td")
			if err != nil {
				return nil, err
			}
			rows = append(rows, view)
		default:
			return nil, fmt.Errorf("render: malformed table: unexpected %s", child.Kind().String())
		}
	}
	return containerView("table", rows), nil
}

func (r *Renderer) renderTableRow(row ast.Node, source []byte, cellTag string) (page.View, error) {
	var cells []page.View
	for child := row.FirstChild(); child != nil; child = child.NextSibling() {
		cell, ok := child.(*east.TableCell)
		if !ok {
			return nil, fmt.Errorf("render: malformed table: unexpected %s", child.Kind().String())
		}
		children, err := r.foldChildren(cell, source)
		if err != nil {
			return nil, err
		}
		cells = append(cells, containerView(cellTag, children))
	}
	return containerView("tr", cells), nil
}

// containerView wraps already-folded children in a single element, deferring
// state application to the children themselves.
func containerView(tag string, children []page.View, attrs ...ui.Attr) page.View {
	return func(st page.State) ui.Element {
		el := ui.El(tag, page.Apply(children, st)...)
		for _, attr := range attrs {
			el = el.WithAttr(attr.Key, attr.Value)
		}
		return el
	}
}

// blockLines concatenates the source segments of a code block.
func blockLines(node ast.Node, source []byte) string {
	var out []byte
	for i := 0; i < node.Lines().Len(); i++ {
		segment := node.Lines().At(i)
		out = append(out, segment.Value(source)...)
	}
	return string(out)
}
