package markdown

import (
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"

	"github.com/goliatone/go-landing/pkg/interfaces"
)

// ParseFrontMatter extracts page metadata and the markdown body from the
// provided source bytes. Sources without a frontmatter block pass through
// with empty metadata.
func ParseFrontMatter(source []byte) (interfaces.PageMeta, []byte, error) {
	var meta metaEnvelope

	reader := bytes.NewReader(source)
	body, err := frontmatter.Parse(reader, &meta)
	if err != nil {
		return interfaces.PageMeta{}, nil, fmt.Errorf("markdown: parse frontmatter: %w", err)
	}

	return envelopeToMeta(meta), body, nil
}

type metaEnvelope struct {
	Title       string         `yaml:"title"`
	Description string         `yaml:"description"`
	Author      string         `yaml:"author"`
	Draft       bool           `yaml:"draft"`
	Custom      map[string]any `yaml:",inline"`
}

func envelopeToMeta(env metaEnvelope) interfaces.PageMeta {
	if env.Custom == nil {
		env.Custom = map[string]any{}
	}
	return interfaces.PageMeta{
		Title:       env.Title,
		Description: env.Description,
		Author:      env.Author,
		Draft:       env.Draft,
		Custom:      env.Custom,
	}
}
