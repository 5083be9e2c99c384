package tags

import (
	"fmt"

	"github.com/goliatone/go-landing/pkg/interfaces"
	"github.com/goliatone/go-landing/pkg/page"
	"github.com/goliatone/go-landing/pkg/ui"
)

// Builtin returns the tag catalogue shipped with go-landing: the layout,
// media, and commerce tags a single marketing page is composed of.
func Builtin() []interfaces.TagDefinition {
	return []interfaces.TagDefinition{
		sectionDefinition(),
		centerDefinition(),
		gridDefinition(),
		stripeDefinition(),
		calloutDefinition(),
		imageDefinition(),
		imageTextDefinition("image_text", false),
		imageTextDefinition("image_text2", true),
		quoteDefinition(),
		starsDefinition(),
		giftDefinition(),
		linkDefinition(),
		planContainerDefinition(),
		planDefinition(),
		buttonDefinition(),
		emailInputDefinition(),
		testDefinition(),
	}
}

func sectionDefinition() interfaces.TagDefinition {
	return interfaces.TagDefinition{
		Name:        "section",
		Description: "Vertical content band with width, padding, and palette controls",
		Attrs: []interfaces.TagAttr{
			{Name: "maxwidth", Type: interfaces.TagAttrInt, Default: "640"},
			{Name: "padding", Type: interfaces.TagAttrInt, Default: "16"},
			{Name: "spacing", Type: interfaces.TagAttrInt, Default: "12"},
			{Name: "background", Type: interfaces.TagAttrString, Default: "default"},
			{Name: "font", Type: interfaces.TagAttrString, Default: "ink"},
		},
		Handler: func(ctx interfaces.TagContext, attrs interfaces.TagAttrs, children []page.View) (page.View, error) {
			style := fmt.Sprintf(
				"max-width:%dpx;margin:0 auto;padding:%dpx;display:flex;flex-direction:column;row-gap:%dpx;background-color:%s;color:%s",
				attrs.Int("maxwidth"), attrs.Int("padding"), attrs.Int("spacing"),
				paletteColor(attrs.String("background")), paletteColor(attrs.String("font")),
			)
			return func(st page.State) ui.Element {
				return ui.El("section", page.Apply(children, st)...).
					WithAttr("class", "landing-section").
					WithAttr("style", style)
			}, nil
		},
	}
}

func centerDefinition() interfaces.TagDefinition {
	return interfaces.TagDefinition{
		Name:        "center",
		Description: "Centers its children horizontally",
		Handler: func(ctx interfaces.TagContext, attrs interfaces.TagAttrs, children []page.View) (page.View, error) {
			return func(st page.State) ui.Element {
				return ui.El("div", page.Apply(children, st)...).
					WithAttr("style", "margin:0 auto;text-align:center")
			}, nil
		},
	}
}

func gridDefinition() interfaces.TagDefinition {
	return interfaces.TagDefinition{
		Name:        "grid",
		Description: "Equal-width column grid",
		Attrs: []interfaces.TagAttr{
			{Name: "columns", Type: interfaces.TagAttrInt, Default: "2"},
		},
		Handler: func(ctx interfaces.TagContext, attrs interfaces.TagAttrs, children []page.View) (page.View, error) {
			columns := attrs.Int("columns")
			if columns < 1 {
				columns = 1
			}
			style := fmt.Sprintf("display:grid;grid-template-columns:repeat(%d,1fr);gap:16px", columns)
			return func(st page.State) ui.Element {
				return ui.El("div", page.Apply(children, st)...).
					WithAttr("class", "landing-grid").
					WithAttr("style", style)
			}, nil
		},
	}
}

func stripeDefinition() interfaces.TagDefinition {
	return interfaces.TagDefinition{
		Name:        "stripe",
		Description: "Full-bleed colored band",
		Attrs: []interfaces.TagAttr{
			{Name: "background", Type: interfaces.TagAttrString, Default: "accent"},
		},
		Handler: func(ctx interfaces.TagContext, attrs interfaces.TagAttrs, children []page.View) (page.View, error) {
			style := fmt.Sprintf("width:100%%;padding:24px 0;background-color:%s", paletteColor(attrs.String("background")))
			return func(st page.State) ui.Element {
				return ui.El("div", page.Apply(children, st)...).
					WithAttr("class", "landing-stripe").
					WithAttr("style", style)
			}, nil
		},
	}
}

func calloutDefinition() interfaces.TagDefinition {
	return interfaces.TagDefinition{
		Name:        "callout",
		Description: "Accent panel that pulls a message out of the copy flow",
		Attrs: []interfaces.TagAttr{
			{Name: "background", Type: interfaces.TagAttrString, Default: "light"},
		},
		Handler: func(ctx interfaces.TagContext, attrs interfaces.TagAttrs, children []page.View) (page.View, error) {
			style := fmt.Sprintf("padding:16px;border-radius:8px;background-color:%s", paletteColor(attrs.String("background")))
			return func(st page.State) ui.Element {
				return ui.El("aside", page.Apply(children, st)...).
					WithAttr("class", "landing-callout").
					WithAttr("style", style)
			}, nil
		},
	}
}

func imageDefinition() interfaces.TagDefinition {
	return interfaces.TagDefinition{
		Name:        "image",
		Description: "Standalone image sized by column fraction",
		Attrs: []interfaces.TagAttr{
			{Name: "src", Type: interfaces.TagAttrURL, Required: true},
			{Name: "alt", Type: interfaces.TagAttrString, Default: ""},
			{Name: "width", Type: interfaces.TagAttrInt, Default: "1"},
		},
		Handler: func(ctx interfaces.TagContext, attrs interfaces.TagAttrs, children []page.View) (page.View, error) {
			img := ui.El("img").
				WithAttr("src", attrs.String("src")).
				WithAttr("alt", attrs.String("alt")).
				WithAttr("style", fmt.Sprintf("flex:%d 1 0%%;max-width:100%%", portion(attrs.Int("width"))))
			return page.Static(img), nil
		},
	}
}

// imageTextDefinition covers both split layouts: image_text puts the image on
// the left, image_text2 mirrors it.
func imageTextDefinition(name string, mirrored bool) interfaces.TagDefinition {
	direction := "row"
	if mirrored {
		direction = "row-reverse"
	}
	return interfaces.TagDefinition{
		Name:        name,
		Description: "Image and copy side by side, sized by column fraction",
		Attrs: []interfaces.TagAttr{
			{Name: "src", Type: interfaces.TagAttrURL, Required: true},
			{Name: "alt", Type: interfaces.TagAttrString, Default: ""},
			{Name: "width", Type: interfaces.TagAttrInt, Default: "1"},
		},
		Handler: func(ctx interfaces.TagContext, attrs interfaces.TagAttrs, children []page.View) (page.View, error) {
			img := ui.El("img").
				WithAttr("src", attrs.String("src")).
				WithAttr("alt", attrs.String("alt")).
				WithAttr("style", fmt.Sprintf("flex:%d 1 0%%;max-width:100%%", portion(attrs.Int("width"))))
			style := fmt.Sprintf("display:flex;flex-direction:%s;align-items:center;column-gap:24px", direction)
			return func(st page.State) ui.Element {
				copyCol := ui.El("div", page.Apply(children, st)...).
					WithAttr("style", "flex:1 1 0%")
				return ui.El("div", img, copyCol).
					WithAttr("class", "landing-media-split").
					WithAttr("style", style)
			}, nil
		},
	}
}

func quoteDefinition() interfaces.TagDefinition {
	return interfaces.TagDefinition{
		Name:        "quote",
		Description: "Testimonial quote with optional attribution",
		Attrs: []interfaces.TagAttr{
			{Name: "author", Type: interfaces.TagAttrString, Default: ""},
		},
		Handler: func(ctx interfaces.TagContext, attrs interfaces.TagAttrs, children []page.View) (page.View, error) {
			author := attrs.String("author")
			return func(st page.State) ui.Element {
				quote := ui.El("blockquote", page.Apply(children, st)...).
					WithAttr("class", "landing-quote")
				if author != "" {
					quote = quote.Append(ui.El("footer", ui.Text("— "+author)))
				}
				return quote
			}, nil
		},
	}
}

func starsDefinition() interfaces.TagDefinition {
	return interfaces.TagDefinition{
		Name:        "stars",
		Description: "Star rating strip",
		Attrs: []interfaces.TagAttr{
			{Name: "count", Type: interfaces.TagAttrInt, Default: "5"},
		},
		Handler: func(ctx interfaces.TagContext, attrs interfaces.TagAttrs, children []page.View) (page.View, error) {
			count := attrs.Int("count")
			if count < 0 {
				count = 0
			}
			if count > 5 {
				count = 5
			}
			strip := ""
			for i := 0; i < 5; i++ {
				if i < count {
					strip += "★"
				} else {
					strip += "☆"
				}
			}
			el := ui.El("span", ui.Text(strip)).
				WithAttr("class", "landing-stars").
				WithAttr("aria-label", fmt.Sprintf("%d out of 5 stars", count))
			return page.Static(el), nil
		},
	}
}

func giftDefinition() interfaces.TagDefinition {
	return interfaces.TagDefinition{
		Name:        "gift",
		Description: "Gift-note ribbon",
		Handler: func(ctx interfaces.TagContext, attrs interfaces.TagAttrs, children []page.View) (page.View, error) {
			return func(st page.State) ui.Element {
				return ui.El("div", page.Apply(children, st)...).
					WithAttr("class", "landing-gift").
					WithAttr("style", "padding:12px;border:1px dashed "+paletteColor("gold"))
			}, nil
		},
	}
}

func linkDefinition() interfaces.TagDefinition {
	return interfaces.TagDefinition{
		Name:        "link",
		Description: "Inline anchor",
		Attrs: []interfaces.TagAttr{
			{Name: "url", Type: interfaces.TagAttrURL, Required: true},
		},
		Handler: func(ctx interfaces.TagContext, attrs interfaces.TagAttrs, children []page.View) (page.View, error) {
			href := attrs.String("url")
			return func(st page.State) ui.Element {
				return ui.El("a", page.Apply(children, st)...).
					WithAttr("href", href)
			}, nil
		},
	}
}

// portion normalises a column fraction: zero and negative values mean "one
// share", matching the documented default of 1.
func portion(fraction int) int {
	if fraction < 1 {
		return 1
	}
	return fraction
}
