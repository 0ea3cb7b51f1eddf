package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// HTMLRenderer converts parsed blocks into display HTML. Blocks are first
// serialized back into canonical markdown so bullet glyph variants and FAQ
// markup come out uniform, then the markdown is rendered with goldmark.
//
// The renderer is stateless so callers can reuse a single instance across
// requests without locking.
type HTMLRenderer struct {
	engine goldmark.Markdown
}

// NewHTMLRenderer builds the block renderer.
func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{
		engine: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
	}
}

// Render converts raw page content into HTML.
func (r *HTMLRenderer) Render(content string) (string, error) {
	return r.RenderBlocks(Parse(content))
}

// RenderBlocks converts already-parsed blocks into HTML.
func (r *HTMLRenderer) RenderBlocks(blocks []Block) (string, error) {
	markdown := Canonical(blocks)

	var buf bytes.Buffer
	if err := r.engine.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("render blocks: %w", err)
	}
	return buf.String(), nil
}

// Canonical serializes blocks back into normalized markdown.
func Canonical(blocks []Block) string {
	var b strings.Builder
	for i, block := range blocks {
		if i > 0 {
			b.WriteString("\n")
		}
		switch block.Kind {
		case KindFAQ:
			for j, item := range block.FAQ {
				if j > 0 {
					b.WriteString("\n")
				}
				fmt.Fprintf(&b, "**Q: %s**\n\nA: %s\n", item.Question, item.Answer)
			}
		default:
			if block.Heading != "" {
				level := block.Level
				if level < 1 || level > 6 {
					level = 2
				}
				fmt.Fprintf(&b, "%s %s\n", strings.Repeat("#", level), block.Heading)
			}
			for _, line := range block.Lines {
				b.WriteString("\n")
				b.WriteString(line)
				b.WriteString("\n")
			}
			if len(block.Items) > 0 {
				b.WriteString("\n")
				for _, item := range block.Items {
					fmt.Fprintf(&b, "- %s\n", item)
				}
			}
		}
	}
	return b.String()
}
