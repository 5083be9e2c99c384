package tags

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-landing/pkg/interfaces"
	"github.com/goliatone/go-landing/pkg/page"
	"github.com/goliatone/go-landing/pkg/ui"
)

func planContainerDefinition() interfaces.TagDefinition {
	return interfaces.TagDefinition{
		Name:        "plan-container",
		Description: "Horizontal row of pricing cards",
		Attrs: []interfaces.TagAttr{
			{Name: "spacing", Type: interfaces.TagAttrInt, Default: "24"},
		},
		Handler: func(ctx interfaces.TagContext, attrs interfaces.TagAttrs, children []page.View) (page.View, error) {
			style := fmt.Sprintf("display:flex;flex-wrap:wrap;justify-content:center;column-gap:%dpx", attrs.Int("spacing"))
			return func(st page.State) ui.Element {
				return ui.El("div", page.Apply(children, st)...).
					WithAttr("class", "landing-plans").
					WithAttr("style", style)
			}, nil
		},
	}
}

func planDefinition() interfaces.TagDefinition {
	return interfaces.TagDefinition{
		Name:        "plan",
		Description: "Pricing card with title, price, and checkout call to action",
		Attrs: []interfaces.TagAttr{
			{Name: "title", Type: interfaces.TagAttrString, Required: true},
			{Name: "price", Type: interfaces.TagAttrString, Required: true},
			{Name: "url", Type: interfaces.TagAttrURL, Required: true},
			{Name: "cta", Type: interfaces.TagAttrString, Default: "Buy now"},
		},
		Handler: func(ctx interfaces.TagContext, attrs interfaces.TagAttrs, children []page.View) (page.View, error) {
			title := attrs.String("title")
			cta := ui.El("a", ui.Text(attrs.String("cta"))).
				WithAttr("href", attrs.String("url")).
				WithAttr("class", "plan-cta").
				WithAction(ui.OpenCheckout{Plan: title})
			return func(st page.State) ui.Element {
				card := ui.El("article",
					ui.El("h3", ui.Text(title)),
					ui.El("p", ui.Text(attrs.String("price"))).WithAttr("class", "plan-price"),
				).WithAttr("class", "plan-card")
				return card.Append(page.Apply(children, st)...).Append(cta)
			}, nil
		},
	}
}

func buttonDefinition() interfaces.TagDefinition {
	return interfaces.TagDefinition{
		Name:        "button",
		Description: "Call-to-action button linking out of the page",
		Attrs: []interfaces.TagAttr{
			{Name: "url", Type: interfaces.TagAttrURL, Required: true},
		},
		Handler: func(ctx interfaces.TagContext, attrs interfaces.TagAttrs, children []page.View) (page.View, error) {
			href := attrs.String("url")
			return func(st page.State) ui.Element {
				return ui.El("a", page.Apply(children, st)...).
					WithAttr("href", href).
					WithAttr("class", "landing-button").
					WithAction(ui.Visit{URL: href})
			}, nil
		},
	}
}

// emailInputDefinition is the page's only stateful widget: four mutually
// exclusive views keyed on the email submission status. The renderer owns no
// transitions; the host's request collaborator moves the status along.
func emailInputDefinition() interfaces.TagDefinition {
	return interfaces.TagDefinition{
		Name:        "email-input",
		Description: "Email capture form with submission lifecycle views",
		Attrs: []interfaces.TagAttr{
			{Name: "group", Type: interfaces.TagAttrString, Default: ""},
			{Name: "placeholder", Type: interfaces.TagAttrString, Default: "Your email"},
			{Name: "fallback", Type: interfaces.TagAttrString, Default: "mailto:support@example.com"},
		},
		Handler: func(ctx interfaces.TagContext, attrs interfaces.TagAttrs, children []page.View) (page.View, error) {
			group := attrs.String("group")
			placeholder := attrs.String("placeholder")
			fallback := attrs.String("fallback")

			return func(st page.State) ui.Element {
				switch st.EmailStatus {
				case page.EmailSending:
					return ui.El("div",
						ui.El("span", ui.Text("…")).WithAttr("class", "spinner"),
					).WithAttr("class", "email-capture email-capture--sending")
				case page.EmailAccepted:
					return ui.El("div",
						ui.El("p", ui.Text("Thanks! Check your inbox.")),
					).WithAttr("class", "email-capture email-capture--accepted")
				case page.EmailRejected:
					return ui.El("div",
						ui.El("p", ui.Text("Something went wrong.")),
						ui.El("a", ui.Text("Email us instead")).WithAttr("href", fallback),
					).WithAttr("class", "email-capture email-capture--rejected")
				default:
					input := ui.El("input").
						WithAttr("type", "email").
						WithAttr("placeholder", placeholder).
						WithAttr("value", st.EmailDraft).
						WithAction(ui.EditEmail{})
					submit := ui.El("button", ui.Text("Sign up")).
						WithAction(ui.SubmitEmail{Group: group})
					return ui.El("form", input, submit).
						WithAttr("class", "email-capture")
				}
			}, nil
		},
	}
}

// testDefinition gates content on the visitor's A/B bucket. An unassigned
// test id renders nothing, as does a variant mismatch.
func testDefinition() interfaces.TagDefinition {
	return interfaces.TagDefinition{
		Name:        "test",
		Description: "Renders children only for the matching experiment variant",
		Attrs: []interfaces.TagAttr{
			{Name: "id", Type: interfaces.TagAttrString, Required: true},
			{Name: "version", Type: interfaces.TagAttrString, Required: true},
		},
		Handler: func(ctx interfaces.TagContext, attrs interfaces.TagAttrs, children []page.View) (page.View, error) {
			test := attrs.String("id")
			version := attrs.String("version")
			return func(st page.State) ui.Element {
				variant, ok := st.Variant(test)
				if !ok || !strings.EqualFold(variant, version) {
					return ui.Nothing()
				}
				return ui.El("div", page.Apply(children, st)...).
					WithAttr("data-test", test).
					WithAttr("data-variant", variant)
			}, nil
		},
	}
}
