// Package ui defines the element tree produced by page rendering. Elements
// are plain values: hosts walk the tree and mount it however they like, and
// interactive elements carry opaque Action values the host event loop maps
// back onto state updates. The package never interprets actions itself.
package ui

// Action is an opaque event value attached to an interactive element. The
// rendering core only constructs actions; dispatching them is the host's job.
type Action interface {
	action()
}

// SubmitEmail asks the host to submit the current email draft, tagged with
// the signup group the capture form was configured with.
type SubmitEmail struct {
	Group string
}

// EditEmail binds an input element to the email draft field. The host should
// route input events on the element into state updates.
type EditEmail struct{}

// OpenCheckout asks the host to open the payment flow for the named plan.
type OpenCheckout struct {
	Plan string
}

// Visit asks the host to navigate to an external URL.
type Visit struct {
	URL string
}

func (SubmitEmail) action()  {}
func (EditEmail) action()    {}
func (OpenCheckout) action() {}
func (Visit) action()        {}

// Attr is a single rendered attribute. Attributes keep declaration order so
// encoding stays deterministic.
type Attr struct {
	Key   string
	Value string
}

// Element is one node of the rendered tree. A text node has an empty Tag and
// a non-empty Text; the zero Element is "nothing" and is skipped by parents.
type Element struct {
	Tag      string
	Attrs    []Attr
	Text     string
	Actions  []Action
	Children []Element
}

// El returns an element with the given tag and children. Zero-value children
// are dropped so conditional branches can return Nothing().
func El(tag string, children ...Element) Element {
	el := Element{Tag: tag}
	for _, child := range children {
		if child.IsNothing() {
			continue
		}
		el.Children = append(el.Children, child)
	}
	return el
}

// Text returns a text node.
func Text(value string) Element {
	return Element{Text: value}
}

// Nothing returns the empty element. Parents skip it, and encoding emits no
// output for it.
func Nothing() Element {
	return Element{}
}

// IsNothing reports whether the element renders no output at all.
func (e Element) IsNothing() bool {
	return e.Tag == "" && e.Text == "" && len(e.Children) == 0
}

// WithAttr returns a copy of the element with the attribute appended.
func (e Element) WithAttr(key, value string) Element {
	attrs := make([]Attr, len(e.Attrs), len(e.Attrs)+1)
	copy(attrs, e.Attrs)
	e.Attrs = append(attrs, Attr{Key: key, Value: value})
	return e
}

// WithAction returns a copy of the element with the action appended.
func (e Element) WithAction(a Action) Element {
	actions := make([]Action, len(e.Actions), len(e.Actions)+1)
	copy(actions, e.Actions)
	e.Actions = append(actions, a)
	return e
}

// Append returns a copy of the element with the children appended, skipping
// zero-value elements.
func (e Element) Append(children ...Element) Element {
	next := make([]Element, len(e.Children), len(e.Children)+len(children))
	copy(next, e.Children)
	for _, child := range children {
		if child.IsNothing() {
			continue
		}
		next = append(next, child)
	}
	e.Children = next
	return e
}

// Attribute returns the value of the named attribute and whether it is set.
// Later values win, matching encode order.
func (e Element) Attribute(key string) (string, bool) {
	value := ""
	found := false
	for _, attr := range e.Attrs {
		if attr.Key == key {
			value = attr.Value
			found = true
		}
	}
	return value, found
}
