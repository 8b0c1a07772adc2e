package cards

// ceilDiv divides two positive integers rounding up.
func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// packer places fragment candidates into cards. The estimate and target are
// fixed for the whole document before the first candidate arrives.
type packer struct {
	maxChars  int
	target    int
	estimated int

	cards         []Card
	current       []Fragment
	currentLength int
}

func newPacker(total, maxChars int) *packer {
	estimated := max(1, ceilDiv(total, maxChars))
	return &packer{
		maxChars:  maxChars,
		estimated: estimated,
		target:    ceilDiv(total, estimated),
	}
}

// flush closes the current card. An empty card is never emitted.
func (p *packer) flush() {
	if len(p.current) == 0 {
		return
	}
	p.cards = append(p.cards, Card{Fragments: p.current})
	p.current = nil
	p.currentLength = 0
}

func (p *packer) add(text string, isParagraphStart bool) {
	if text == "" {
		return
	}

	projected := p.currentLength + Length(text)
	overCap := projected > p.maxChars
	// The soft target only applies while the estimate still has room for
	// another card after this one.
	overTarget := projected > p.target && len(p.cards)+1 < p.estimated
	if len(p.current) > 0 && (overCap || overTarget) {
		p.flush()
	}

	p.current = append(p.current, Fragment{Text: text, IsParagraphStart: isParagraphStart})
	p.currentLength += Length(text)
}

// Build packs normalized paragraphs into cards. Consecutive sentences of a
// paragraph are joined into fragments no longer than maxCharsPerCard; a
// single sentence longer than that is kept whole and overflows its card.
func Build(paragraphs []string, maxCharsPerCard int) []Card {
	total := 0
	for _, p := range paragraphs {
		total += Length(p)
	}
	pk := newPacker(total, maxCharsPerCard)

	for _, paragraph := range paragraphs {
		first := true
		emit := func(text string) {
			pk.add(text, first)
			first = false
		}

		working := ""
		for _, sentence := range SplitSentences(paragraph) {
			proposed := sentence
			if working != "" {
				proposed = working + " " + sentence
			}

			if Length(proposed) <= maxCharsPerCard {
				working = proposed
				continue
			}

			if working != "" {
				emit(working)
				working = sentence
				continue
			}

			// Oversize sentence on its own.
			emit(sentence)
		}

		if working != "" {
			emit(working)
		}
	}

	pk.flush()
	return pk.cards
}
