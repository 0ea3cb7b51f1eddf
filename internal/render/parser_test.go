package render_test

import (
	"strings"
	"testing"

	"github.com/goliatone/go-localpages/internal/render"
)

func TestParseHeadingsAndBullets(t *testing.T) {
	content := strings.Join([]string{
		"# Website Development in Pune",
		"",
		"Professional sites for local businesses.",
		"## Why Choose Us",
		"✓ Fast delivery",
		"✅ Local support",
		"- Transparent pricing",
	}, "\n")

	blocks := render.Parse(content)
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d: %+v", len(blocks), blocks)
	}

	first := blocks[0]
	if first.Kind != render.KindHeading || first.Level != 1 {
		t.Fatalf("unexpected first block: %+v", first)
	}
	if first.Heading != "Website Development in Pune" {
		t.Fatalf("unexpected heading: %q", first.Heading)
	}
	if len(first.Lines) != 1 || first.Lines[0] != "Professional sites for local businesses." {
		t.Fatalf("unexpected lines: %v", first.Lines)
	}

	second := blocks[1]
	if second.Level != 2 || len(second.Items) != 3 {
		t.Fatalf("unexpected second block: %+v", second)
	}
	if second.Items[1] != "Local support" {
		t.Fatalf("bullet glyph not stripped: %q", second.Items[1])
	}
}

func TestParseFAQAccumulation(t *testing.T) {
	content := strings.Join([]string{
		"## FAQ",
		"**Q: How long does it take?**",
		"A: Usually two weeks.",
		"**Q: Do you offer support?**",
		"A: Yes, for six months.",
		"Get in touch today.",
	}, "\n")

	blocks := render.Parse(content)
	if len(blocks) != 3 {
		t.Fatalf("expected heading, faq, text blocks, got %d: %+v", len(blocks), blocks)
	}

	faq := blocks[1]
	if faq.Kind != render.KindFAQ {
		t.Fatalf("expected FAQ block, got %+v", faq)
	}
	if len(faq.FAQ) != 2 {
		t.Fatalf("expected 2 FAQ items, got %d", len(faq.FAQ))
	}
	if faq.FAQ[0].Question != "How long does it take?" {
		t.Fatalf("unexpected question: %q", faq.FAQ[0].Question)
	}
	if faq.FAQ[1].Answer != "Yes, for six months." {
		t.Fatalf("unexpected answer: %q", faq.FAQ[1].Answer)
	}

	tail := blocks[2]
	if tail.Kind != render.KindText || len(tail.Lines) != 1 {
		t.Fatalf("trailing line lost: %+v", tail)
	}
}

func TestParseNeverDropsText(t *testing.T) {
	content := strings.Join([]string{
		"stray opening line",
		"A: orphan answer outside a FAQ",
		"**Q: question without an answer**",
		"## Next",
	}, "\n")

	blocks := render.Parse(content)

	var kept []string
	for _, block := range blocks {
		kept = append(kept, block.Lines...)
		for _, item := range block.FAQ {
			kept = append(kept, item.Question, item.Answer)
		}
		kept = append(kept, block.Heading)
	}
	joined := strings.Join(kept, "\n")

	for _, fragment := range []string{"stray opening line", "orphan answer outside a FAQ", "question without an answer", "Next"} {
		if !strings.Contains(joined, fragment) {
			t.Fatalf("fragment %q was dropped; blocks: %+v", fragment, blocks)
		}
	}
}

func TestParseBlankLinesIgnored(t *testing.T) {
	content := "# Title\n\n\nBody line one.\n\nBody line two.\n"

	blocks := render.Parse(content)
	if len(blocks) != 1 {
		t.Fatalf("blank lines must not split the block, got %d blocks", len(blocks))
	}
	if len(blocks[0].Lines) != 2 {
		t.Fatalf("expected 2 body lines, got %v", blocks[0].Lines)
	}
}

func TestParseEmptyContent(t *testing.T) {
	if blocks := render.Parse(""); len(blocks) != 0 {
		t.Fatalf("expected no blocks for empty content, got %+v", blocks)
	}
}

func TestFAQItemsCollectsAcrossBlocks(t *testing.T) {
	content := strings.Join([]string{
		"**Q: One?**",
		"A: First.",
		"intermission",
		"**Q: Two?**",
		"A: Second.",
	}, "\n")

	items := render.FAQItems(render.Parse(content))
	if len(items) != 2 {
		t.Fatalf("expected 2 items across blocks, got %d", len(items))
	}
}

func TestRenderBlocksHTML(t *testing.T) {
	content := strings.Join([]string{
		"## Why Choose Us",
		"✓ Fast delivery",
		"**Q: Is it responsive?**",
		"A: Yes, mobile first.",
	}, "\n")

	out, err := render.NewHTMLRenderer().Render(content)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	for _, fragment := range []string{"<h2", "Why Choose Us", "<li>Fast delivery</li>", "<strong>Q: Is it responsive?</strong>", "Yes, mobile first."} {
		if !strings.Contains(out, fragment) {
			t.Fatalf("expected HTML to contain %q, got:\n%s", fragment, out)
		}
	}
}
