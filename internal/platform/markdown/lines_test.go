package markdown

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyHeadingParagraphAndItems(t *testing.T) {
	t.Parallel()
	blocks := Classify("**Career Description**\nGreat field.\n- Skill A\n- Skill B")
	require.Equal(t, []Block{
		{Kind: Heading, Text: "Career Description"},
		{Kind: Paragraph, Text: "Great field."},
		{Kind: ListItem, Text: "Skill A"},
		{Kind: ListItem, Text: "Skill B"},
	}, blocks)
}

func TestClassifyLineEdgeCases(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		line string
		want Block
	}{
		{"markers stripped everywhere", "**Key** **Skills:**", Block{Kind: Heading, Text: "Key Skills:"}},
		{"heading wins over bullet", "**- x", Block{Kind: Heading, Text: "- x"}},
		{"dash without space", "-Skill", Block{Kind: Paragraph, Text: "-Skill"}},
		{"indented bullet is paragraph", "  - Skill", Block{Kind: Paragraph, Text: "  - Skill"}},
		{"blank line", "", Block{Kind: Paragraph, Text: ""}},
		{"bare bullet", "- ", Block{Kind: ListItem, Text: ""}},
		{"inline bold is paragraph", "Be **bold**", Block{Kind: Paragraph, Text: "Be **bold**"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, ClassifyLine(tc.line))
		})
	}
}

func TestClassifyKeepsBlankLinesAsParagraphs(t *testing.T) {
	t.Parallel()
	blocks := Classify("**A**\n\n- one")
	require.Len(t, blocks, 3)
	require.Equal(t, Paragraph, blocks[1].Kind)
}

func TestCompose(t *testing.T) {
	t.Parallel()
	got := Compose(Classify("**Career Description**\nGreat field.\n\n**Key Skills**\n- Skill A\n- Skill B"))
	want := "### Career Description\n\nGreat field.\n\n### Key Skills\n\n- Skill A\n- Skill B\n"
	require.Equal(t, want, got)
}
