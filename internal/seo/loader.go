package seo

import (
	"bytes"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/goliatone/go-localpages/internal/validation"
)

// templateMetaSchema validates the frontmatter of each template pack file.
var templateMetaSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"name":  map[string]any{"type": "string", "minLength": 1},
		"order": map[string]any{"type": "integer", "minimum": 0},
	},
	"required":             []any{"name"},
	"additionalProperties": false,
}

type templateMeta struct {
	Name  string `yaml:"name"`
	Order int    `yaml:"order"`
}

// LoadTemplates reads an on-disk template pack: markdown files with a
// frontmatter header carrying the section name and ordering. Files sort by
// order, then name, so packs stay stable regardless of directory listing.
func LoadTemplates(fsys fs.FS, dir string) ([]SectionTemplate, error) {
	pattern := "*.md"
	if dir != "" && dir != "." {
		pattern = path.Join(dir, "*.md")
	}

	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("seo: glob template pack: %w", err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("seo: template pack %q has no sections", dir)
	}

	type loaded struct {
		meta templateMeta
		body string
	}
	sections := make([]loaded, 0, len(matches))

	for _, file := range matches {
		source, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("seo: read template %s: %w", file, err)
		}

		var raw map[string]any
		body, err := frontmatter.Parse(bytes.NewReader(source), &raw)
		if err != nil {
			return nil, fmt.Errorf("seo: parse template %s: %w", file, err)
		}
		if err := validation.ValidatePayload(templateMetaSchema, raw); err != nil {
			return nil, fmt.Errorf("seo: template %s metadata: %w", file, err)
		}

		var meta templateMeta
		if _, err := frontmatter.Parse(bytes.NewReader(source), &meta); err != nil {
			return nil, fmt.Errorf("seo: parse template %s: %w", file, err)
		}

		sections = append(sections, loaded{
			meta: meta,
			body: strings.TrimSpace(string(body)),
		})
	}

	sort.Slice(sections, func(i, j int) bool {
		if sections[i].meta.Order != sections[j].meta.Order {
			return sections[i].meta.Order < sections[j].meta.Order
		}
		return sections[i].meta.Name < sections[j].meta.Name
	})

	out := make([]SectionTemplate, 0, len(sections))
	for _, section := range sections {
		out = append(out, SectionTemplate{
			Name: section.meta.Name,
			Body: section.body,
		})
	}
	return out, nil
}
