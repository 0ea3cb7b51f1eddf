package render

// BlockKind discriminates parsed content blocks.
type BlockKind string

const (
	// KindHeading is a heading with the text and bullets that follow it.
	KindHeading BlockKind = "heading"
	// KindFAQ is a run of question/answer pairs.
	KindFAQ BlockKind = "faq"
	// KindText is free text not introduced by a heading.
	KindText BlockKind = "text"
)

// FAQItem is one question/answer pair inside a FAQ block.
type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Block is one typed chunk of parsed page content.
type Block struct {
	Kind    BlockKind `json:"kind"`
	Level   int       `json:"level,omitempty"`
	Heading string    `json:"heading,omitempty"`
	Lines   []string  `json:"lines,omitempty"`
	Items   []string  `json:"items,omitempty"`
	FAQ     []FAQItem `json:"faq,omitempty"`
}

// FAQItems collects every question/answer pair across all FAQ blocks in
// document order.
func FAQItems(blocks []Block) []FAQItem {
	var items []FAQItem
	for _, block := range blocks {
		if block.Kind == KindFAQ {
			items = append(items, block.FAQ...)
		}
	}
	return items
}
