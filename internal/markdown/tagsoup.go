package markdown

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// TagTokenKind classifies one token of custom tag markup.
type TagTokenKind int

const (
	// TagOpen is an opening tag that expects a matching close.
	TagOpen TagTokenKind = iota
	// TagClose is a closing tag.
	TagClose
	// TagSelfClose is a self-contained tag with no children.
	TagSelfClose
)

// TagToken is one custom tag occurrence lifted out of a raw HTML fragment.
// Attribute values stay raw strings; the tag registry owns coercion.
type TagToken struct {
	Name  string
	Kind  TagTokenKind
	Attrs map[string]string
}

// ParseTagMarkup tokenizes a raw HTML fragment into tag tokens. It reports
// false unless the fragment consists solely of tags and whitespace: anything
// else (text runs, comments, malformed markup) is not custom tag markup and
// stays inert in the document. Tag names come back lowercased by the
// tokenizer, which matches the registry's case-insensitive lookup.
func ParseTagMarkup(fragment string) ([]TagToken, bool) {
	tokenizer := html.NewTokenizer(strings.NewReader(fragment))

	var tokens []TagToken
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			if tokenizer.Err() == io.EOF {
				return tokens, len(tokens) > 0
			}
			return nil, false
		case html.TextToken:
			if strings.TrimSpace(string(tokenizer.Text())) != "" {
				return nil, false
			}
		case html.StartTagToken:
			tokens = append(tokens, tagToken(tokenizer, TagOpen))
		case html.SelfClosingTagToken:
			tokens = append(tokens, tagToken(tokenizer, TagSelfClose))
		case html.EndTagToken:
			tokens = append(tokens, tagToken(tokenizer, TagClose))
		default:
			// Comments and doctypes disqualify the fragment.
			return nil, false
		}
	}
}

func tagToken(tokenizer *html.Tokenizer, kind TagTokenKind) TagToken {
	token := tokenizer.Token()
	attrs := make(map[string]string, len(token.Attr))
	for _, attr := range token.Attr {
		attrs[attr.Key] = attr.Val
	}
	return TagToken{
		Name:  token.Data,
		Kind:  kind,
		Attrs: attrs,
	}
}
