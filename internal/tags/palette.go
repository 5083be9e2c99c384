package tags

// Palette names accepted by background/font attributes. The set is closed on
// purpose: page authors pick a name, the stylesheet stays consistent, and an
// unrecognised name falls back to the default entry instead of failing.
var palette = map[string]string{
	"default": "#ffffff",
	"light":   "#f5f6f8",
	"dark":    "#1f2430",
	"ink":     "#232323",
	"accent":  "#5a67d8",
	"gold":    "#d69e2e",
	"success": "#38a169",
	"danger":  "#e53e3e",
}

// paletteColor resolves a palette name to its hex value, falling back to the
// default entry for unknown names.
func paletteColor(name string) string {
	if hex, ok := palette[name]; ok {
		return hex
	}
	return palette["default"]
}
