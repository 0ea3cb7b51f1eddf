package render

import "strings"

// parser state. The parser is deliberately permissive: malformed lines are
// kept as free text, never dropped.
type parserState int

const (
	stateNone parserState = iota
	stateBlock
	stateFAQ
)

// Parse splits templated page content into typed blocks. It is line oriented
// and single pass. Blank lines are ignored and do not close blocks.
func Parse(content string) []Block {
	var (
		blocks  []Block
		current Block
		state   = stateNone
	)

	flush := func() {
		if state == stateNone {
			return
		}
		blocks = append(blocks, current)
		current = Block{}
		state = stateNone
	}

	for _, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if level, text, ok := headingLine(line); ok {
			flush()
			current = Block{Kind: KindHeading, Level: level, Heading: text}
			state = stateBlock
			continue
		}

		if question, ok := questionLine(line); ok {
			if state != stateFAQ {
				flush()
				current = Block{Kind: KindFAQ}
				state = stateFAQ
			}
			current.FAQ = append(current.FAQ, FAQItem{Question: question})
			continue
		}

		if state == stateFAQ {
			if answer, ok := answerLine(line); ok {
				last := len(current.FAQ) - 1
				if last >= 0 && current.FAQ[last].Answer == "" {
					current.FAQ[last].Answer = answer
				} else {
					current.FAQ = append(current.FAQ, FAQItem{Answer: answer})
				}
				continue
			}
			// A non-FAQ line closes the FAQ run.
			flush()
		}

		if item, ok := bulletLine(line); ok {
			if state == stateNone {
				current = Block{Kind: KindText}
				state = stateBlock
			}
			current.Items = append(current.Items, item)
			continue
		}

		if state == stateNone {
			current = Block{Kind: KindText}
			state = stateBlock
		}
		current.Lines = append(current.Lines, line)
	}

	flush()
	return blocks
}

func headingLine(line string) (int, string, bool) {
	switch {
	case strings.HasPrefix(line, "### "):
		return 3, strings.TrimSpace(line[4:]), true
	case strings.HasPrefix(line, "## "):
		return 2, strings.TrimSpace(line[3:]), true
	case strings.HasPrefix(line, "# "):
		return 1, strings.TrimSpace(line[2:]), true
	}
	return 0, "", false
}

func questionLine(line string) (string, bool) {
	if !strings.HasPrefix(line, "**Q:") {
		return "", false
	}
	question := strings.TrimPrefix(line, "**Q:")
	question = strings.TrimSuffix(question, "**")
	return strings.TrimSpace(question), true
}

func answerLine(line string) (string, bool) {
	for _, prefix := range []string{"A:", "**A:"} {
		if strings.HasPrefix(line, prefix) {
			answer := strings.TrimSuffix(strings.TrimPrefix(line, prefix), "**")
			return strings.TrimSpace(answer), true
		}
	}
	return "", false
}

func bulletLine(line string) (string, bool) {
	for _, prefix := range []string{"- ", "✓ ", "✅ "} {
		if strings.HasPrefix(line, prefix) {
			return strings.TrimSpace(strings.TrimPrefix(line, prefix)), true
		}
	}
	return "", false
}
