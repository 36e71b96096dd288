// Package markdown classifies the lightweight markup returned by the text
// generator and converts it back into CommonMark for terminal rendering.
package markdown

import "strings"

type Kind int

const (
	Paragraph Kind = iota
	Heading
	ListItem
)

func (k Kind) String() string {
	switch k {
	case Heading:
		return "heading"
	case ListItem:
		return "list-item"
	default:
		return "paragraph"
	}
}

const (
	headingMarker = "**"
	bulletMarker  = "- "
)

// Block is one classified line.
type Block struct {
	Kind Kind
	Text string
}

// Classify splits text on newlines and classifies every line. A line that
// starts with "**" is a heading with all "**" markers removed, a line that
// starts with "- " is a list item without its marker, and anything else,
// blank lines included, is a paragraph kept verbatim.
func Classify(text string) []Block {
	lines := strings.Split(text, "\n")
	blocks := make([]Block, 0, len(lines))
	for _, line := range lines {
		blocks = append(blocks, ClassifyLine(line))
	}
	return blocks
}

func ClassifyLine(line string) Block {
	switch {
	case strings.HasPrefix(line, headingMarker):
		return Block{Kind: Heading, Text: strings.ReplaceAll(line, headingMarker, "")}
	case strings.HasPrefix(line, bulletMarker):
		return Block{Kind: ListItem, Text: line[len(bulletMarker):]}
	default:
		return Block{Kind: Paragraph, Text: line}
	}
}

// Compose renders blocks as CommonMark: headings become level-3 headings,
// consecutive list items form one list and paragraphs are separated by blank
// lines. Blank paragraphs are dropped.
func Compose(blocks []Block) string {
	var sb strings.Builder
	prev := Paragraph
	for _, b := range blocks {
		if b.Kind == Paragraph && strings.TrimSpace(b.Text) == "" {
			continue
		}
		if sb.Len() > 0 && !(b.Kind == ListItem && prev == ListItem) {
			sb.WriteString("\n")
		}
		switch b.Kind {
		case Heading:
			sb.WriteString("### " + strings.TrimSpace(b.Text) + "\n")
		case ListItem:
			sb.WriteString("- " + b.Text + "\n")
		default:
			sb.WriteString(b.Text + "\n")
		}
		prev = b.Kind
	}
	return sb.String()
}
