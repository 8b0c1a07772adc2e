package cards

import (
	"regexp"
	"strings"
)

// paragraphBreak matches a whitespace run holding at least two line breaks.
var paragraphBreak = regexp.MustCompile(`\n[\s\v\x{85}\p{Z}]*\n`)

// NormalizeParagraphs splits text on blank lines and collapses the
// whitespace inside each paragraph to single spaces. Empty paragraphs are
// dropped.
func NormalizeParagraphs(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	blocks := paragraphBreak.Split(text, -1)
	paragraphs := make([]string, 0, len(blocks))
	for _, block := range blocks {
		// Fields splits on any whitespace run, line breaks included.
		p := strings.Join(strings.Fields(block), " ")
		if p == "" {
			continue
		}
		paragraphs = append(paragraphs, p)
	}
	return paragraphs
}
