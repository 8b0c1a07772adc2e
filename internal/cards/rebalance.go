package cards

// Rebalance narrows length gaps between adjacent cards by moving boundary
// fragments one at a time. A fragment moves from the longer card of a pair
// to the shorter one when the gap exceeds threshold, the donor keeps at least
// one fragment, the recipient stays within maxCharsPerCard and the move
// narrows the gap. Every move restarts the scan; the loop ends after a scan
// without moves. Cards are modified in place and returned.
func Rebalance(cards []Card, maxCharsPerCard, threshold int) []Card {
	if len(cards) < 2 {
		return cards
	}

	for moveBoundaryFragment(cards, maxCharsPerCard, threshold) {
	}
	return cards
}

// moveBoundaryFragment performs the first eligible move of a left-to-right
// scan and reports whether it moved anything.
//
// A move of a fragment of length f across a gap d changes the sum of squared
// card lengths by 2f(f-d), so requiring f < d makes that sum strictly
// decrease and the loop in Rebalance finite.
func moveBoundaryFragment(cards []Card, maxChars, threshold int) bool {
	lengths := make([]int, len(cards))
	for i, c := range cards {
		lengths[i] = c.Len()
	}

	for i := 0; i < len(cards)-1; i++ {
		left, right := &cards[i], &cards[i+1]
		diff := lengths[i] - lengths[i+1]

		switch {
		case diff > threshold && len(left.Fragments) > 1:
			moved := left.Fragments[len(left.Fragments)-1]
			n := Length(moved.Text)
			if lengths[i+1]+n > maxChars || n >= diff {
				continue
			}
			left.Fragments = left.Fragments[:len(left.Fragments)-1]
			right.Fragments = append([]Fragment{moved}, right.Fragments...)
			return true

		case -diff > threshold && len(right.Fragments) > 1:
			moved := right.Fragments[0]
			n := Length(moved.Text)
			if lengths[i]+n > maxChars || n >= -diff {
				continue
			}
			right.Fragments = right.Fragments[1:]
			left.Fragments = append(left.Fragments, moved)
			return true
		}
	}
	return false
}
