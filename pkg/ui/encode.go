package ui

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
)

// EncodeHTML renders an element tree to HTML by lowering it onto gomponents
// nodes. Actions become data-action attributes so static previews keep the
// interaction points visible; hosts that mount the tree directly never need
// this encoding.
func EncodeHTML(el Element) (string, error) {
	node := lower(el)
	if node == nil {
		return "", nil
	}

	var out strings.Builder
	if err := node.Render(&out); err != nil {
		return "", fmt.Errorf("ui: encode element: %w", err)
	}
	return out.String(), nil
}

func lower(el Element) g.Node {
	if el.IsNothing() {
		return nil
	}
	if el.Tag == "" {
		return g.Text(el.Text)
	}

	children := make([]g.Node, 0, len(el.Attrs)+len(el.Children)+2)
	for _, attr := range el.Attrs {
		children = append(children, g.Attr(attr.Key, attr.Value))
	}
	for _, action := range el.Actions {
		children = append(children, lowerAction(action))
	}
	if el.Text != "" {
		children = append(children, g.Text(el.Text))
	}
	for _, child := range el.Children {
		if node := lower(child); node != nil {
			children = append(children, node)
		}
	}
	return g.El(el.Tag, children...)
}

func lowerAction(a Action) g.Node {
	switch action := a.(type) {
	case SubmitEmail:
		return g.Group([]g.Node{
			g.Attr("data-action", "submit-email"),
			g.Attr("data-group", action.Group),
		})
	case EditEmail:
		return g.Attr("data-action", "edit-email")
	case OpenCheckout:
		return g.Group([]g.Node{
			g.Attr("data-action", "open-checkout"),
			g.Attr("data-plan", action.Plan),
		})
	case Visit:
		return g.Group([]g.Node{
			g.Attr("data-action", "visit"),
			g.Attr("data-url", action.URL),
		})
	default:
		return g.Attr("data-action", "unknown")
	}
}
