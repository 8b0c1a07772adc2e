package cards

import "fmt"

type options struct {
	rebalanceThreshold int
}

// Option adjusts a pagination run.
type Option func(*options)

// WithRebalanceThreshold sets the largest length gap tolerated between
// adjacent cards. Lower values equalize more aggressively.
func WithRebalanceThreshold(n int) Option {
	return func(o *options) {
		o.rebalanceThreshold = n
	}
}

// Paginate converts plain text into a Document of cards no longer than
// maxCharsPerCard, apart from cards holding a single oversize sentence.
// Empty or all-whitespace text yields an empty Document.
func Paginate(text string, maxCharsPerCard int, opts ...Option) (Document, error) {
	o := options{rebalanceThreshold: DefaultRebalanceThreshold}
	for _, opt := range opts {
		opt(&o)
	}

	if maxCharsPerCard <= 0 {
		return Document{}, fmt.Errorf("%w: max chars per card must be positive, got %d", ErrInvalidConfiguration, maxCharsPerCard)
	}
	if o.rebalanceThreshold < 0 {
		return Document{}, fmt.Errorf("%w: rebalance threshold must not be negative, got %d", ErrInvalidConfiguration, o.rebalanceThreshold)
	}

	paragraphs := NormalizeParagraphs(text)
	if len(paragraphs) == 0 {
		return Document{Cards: []Card{}}, nil
	}

	built := Build(paragraphs, maxCharsPerCard)
	return Document{Cards: Rebalance(built, maxCharsPerCard, o.rebalanceThreshold)}, nil
}
