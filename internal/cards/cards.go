// Package cards paginates plain text into bounded-size cards for print layout.
package cards

import (
	"errors"
	"unicode/utf8"
)

const (
	// DefaultMaxCharsPerCard is the hard per-card character cap used when the
	// caller has no better figure for its print layout.
	DefaultMaxCharsPerCard = 320

	// DefaultRebalanceThreshold is the largest length difference tolerated
	// between adjacent cards after rebalancing.
	DefaultRebalanceThreshold = 60
)

// ErrInvalidConfiguration is returned when pagination is asked for with
// sizes the sizing math cannot work with.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Fragment is a run of one or more consecutive sentences from a single
// paragraph, placed into exactly one card.
type Fragment struct {
	Text             string `json:"text" yaml:"text"`
	IsParagraphStart bool   `json:"isParagraphStart" yaml:"isParagraphStart"`
}

// Card is one printable unit.
type Card struct {
	Fragments []Fragment `json:"fragments" yaml:"fragments"`
}

// Len returns the summed length of the card's fragments. Separators are not
// counted.
func (c Card) Len() int {
	n := 0
	for _, f := range c.Fragments {
		n += Length(f.Text)
	}
	return n
}

// Document is the ordered result of a pagination run.
type Document struct {
	Cards []Card `json:"cards" yaml:"cards"`
}

// Len returns the total length across all cards.
func (d Document) Len() int {
	n := 0
	for _, c := range d.Cards {
		n += c.Len()
	}
	return n
}

// Empty reports whether the document holds no cards.
func (d Document) Empty() bool {
	return len(d.Cards) == 0
}

// Length counts characters the way print budgets are measured: in UTF-16
// code units, so characters outside the Basic Multilingual Plane count twice.
func Length(s string) int {
	n := 0
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		s = s[size:]
		if r >= 0x10000 {
			n += 2
			continue
		}
		n++
	}
	return n
}
