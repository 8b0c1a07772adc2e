package cards

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sentence returns a terminated sentence of exactly n characters.
func sentence(n int) string {
	return strings.Repeat("a", n-1) + "."
}

func cardLengths(cards []Card) []int {
	lengths := make([]int, len(cards))
	for i, c := range cards {
		lengths[i] = c.Len()
	}
	return lengths
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name       string
		paragraphs []string
		maxChars   int
		expected   []int // card lengths
	}{
		{
			name:       "no paragraphs",
			paragraphs: nil,
			maxChars:   320,
			expected:   []int{},
		},
		{
			name:       "single short paragraph",
			paragraphs: []string{"Hello world."},
			maxChars:   320,
			expected:   []int{12},
		},
		{
			name:       "two full paragraphs",
			paragraphs: []string{sentence(320), sentence(320)},
			maxChars:   320,
			expected:   []int{320, 320},
		},
		{
			name:       "short paragraphs share a card",
			paragraphs: []string{sentence(100), sentence(100), sentence(100)},
			maxChars:   320,
			expected:   []int{300},
		},
		{
			name:       "oversize sentence overflows alone",
			paragraphs: []string{strings.Repeat("a", 400)},
			maxChars:   320,
			expected:   []int{400},
		},
		{
			name: "soft target splits early",
			// total 300, estimate 2, target 150
			paragraphs: []string{sentence(100), sentence(100), sentence(100)},
			maxChars:   200,
			expected:   []int{100, 200},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Build(tt.paragraphs, tt.maxChars)
			assert.Equal(t, tt.expected, cardLengths(got))
			for i, c := range got {
				assert.NotEmpty(t, c.Fragments, "card %d is empty", i)
			}
		})
	}
}

func TestBuild_SentencesPackedUpToCap(t *testing.T) {
	// 4x69 joined is 279; adding the 60-char sentence would reach 340.
	paragraph := strings.Join([]string{
		sentence(69), sentence(69), sentence(69), sentence(69), sentence(60), sentence(159),
	}, " ")
	require.Equal(t, 500, Length(paragraph))

	got := Build([]string{paragraph}, 320)

	require.Len(t, got, 2)
	require.Len(t, got[0].Fragments, 1)
	require.Len(t, got[1].Fragments, 1)
	assert.Equal(t, 279, got[0].Len())
	assert.Equal(t, 220, got[1].Len())
	assert.True(t, got[0].Fragments[0].IsParagraphStart)
	assert.False(t, got[1].Fragments[0].IsParagraphStart)
}

func TestBuild_OversizeSentenceBetweenShortOnes(t *testing.T) {
	paragraph := strings.Join([]string{sentence(50), sentence(400), sentence(50)}, " ")

	got := Build([]string{paragraph}, 320)

	var fragments []Fragment
	for _, c := range got {
		fragments = append(fragments, c.Fragments...)
	}
	require.Len(t, fragments, 3)
	assert.Equal(t, sentence(50), fragments[0].Text)
	assert.Equal(t, sentence(400), fragments[1].Text)
	assert.Equal(t, sentence(50), fragments[2].Text)
	assert.True(t, fragments[0].IsParagraphStart)
	assert.False(t, fragments[1].IsParagraphStart)
	assert.False(t, fragments[2].IsParagraphStart)
}

func TestBuild_TargetIgnoredOnceEstimateIsUsedUp(t *testing.T) {
	// total 350, estimate 2, target 175. The last card may pass the target
	// as long as it stays within the cap.
	got := Build([]string{sentence(150), sentence(150), sentence(50)}, 200)
	assert.Equal(t, []int{150, 200}, cardLengths(got))
}

func TestLength(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{name: "empty", text: "", expected: 0},
		{name: "ascii", text: "Hello", expected: 5},
		{name: "latin accents", text: "Köln", expected: 4},
		{name: "cjk", text: "日本語", expected: 3},
		{name: "astral plane counts twice", text: "a😀b", expected: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Length(tt.text))
		})
	}
}
