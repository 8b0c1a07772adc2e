package cards

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// SplitSentences splits a normalized paragraph into sentences. A sentence
// ends after a run of '.', '!' or '?'; whatever follows the last terminator
// becomes the final sentence. Terminators seen before any other content of a
// sentence stay attached to it, so no text is lost.
func SplitSentences(paragraph string) []string {
	var sentences []string
	emit := func(s string) {
		if s = strings.TrimSpace(s); s != "" {
			sentences = append(sentences, s)
		}
	}

	start := 0
	hasContent := false
	for i := 0; i < len(paragraph); {
		r, size := utf8.DecodeRuneInString(paragraph[i:])
		switch {
		case isTerminator(r) && hasContent:
			end := i
			for end < len(paragraph) && isTerminator(rune(paragraph[end])) {
				end++
			}
			emit(paragraph[start:end])
			start, i, hasContent = end, end, false
			continue
		case !isTerminator(r) && !unicode.IsSpace(r):
			hasContent = true
		}
		i += size
	}
	emit(paragraph[start:])
	return sentences
}
