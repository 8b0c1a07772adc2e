// Package render turns a paginated document into printable output.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/pricofy/cardprint/internal/cards"
)

// Formats rendered in-process.
const (
	FormatText = "text"
	FormatBox  = "box"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formats rendered by a downstream renderer function.
const (
	FormatPDF  = "pdf"
	FormatHTML = "html"
)

// Indent prefixes fragments that open a paragraph.
const Indent = "    "

// Renderer writes a document in one output format.
type Renderer interface {
	Render(w io.Writer, doc cards.Document) error
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(w io.Writer, doc cards.Document) error

// Render calls f(w, doc).
func (f RendererFunc) Render(w io.Writer, doc cards.Document) error {
	return f(w, doc)
}

var local = map[string]Renderer{
	FormatText: RendererFunc(renderText),
	FormatBox:  RendererFunc(renderBox),
	FormatJSON: RendererFunc(renderJSON),
	FormatYAML: RendererFunc(renderYAML),
}

var remote = map[string]bool{
	FormatPDF:  true,
	FormatHTML: true,
}

// ForFormat returns the in-process renderer for a format.
func ForFormat(format string) (Renderer, error) {
	r, ok := local[format]
	if !ok {
		return nil, fmt.Errorf("no local renderer for format %q", format)
	}
	return r, nil
}

// IsRemote reports whether a format is rendered by a downstream function.
func IsRemote(format string) bool {
	return remote[format]
}

// IsKnown reports whether a format can be rendered at all.
func IsKnown(format string) bool {
	_, ok := local[format]
	return ok || remote[format]
}

// Formats lists every known format, sorted.
func Formats() []string {
	names := make([]string, 0, len(local)+len(remote))
	for name := range local {
		names = append(names, name)
	}
	for name := range remote {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ToString renders doc with r into a string.
func ToString(r Renderer, doc cards.Document) (string, error) {
	var b strings.Builder
	if err := r.Render(&b, doc); err != nil {
		return "", err
	}
	return b.String(), nil
}

// cardLines returns one line per fragment, paragraph starts indented.
func cardLines(c cards.Card) []string {
	lines := make([]string, len(c.Fragments))
	for i, f := range c.Fragments {
		if f.IsParagraphStart {
			lines[i] = Indent + f.Text
			continue
		}
		lines[i] = f.Text
	}
	return lines
}

func renderText(w io.Writer, doc cards.Document) error {
	for i, c := range doc.Cards {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "[%d]\n%s\n", i+1, strings.Join(cardLines(c), "\n")); err != nil {
			return err
		}
	}
	return nil
}

var (
	cardStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	numberStyle = lipgloss.NewStyle().Bold(true)
)

func renderBox(w io.Writer, doc cards.Document) error {
	for i, c := range doc.Cards {
		body := lipgloss.JoinVertical(lipgloss.Left,
			numberStyle.Render(fmt.Sprintf("%d", i+1)),
			strings.Join(cardLines(c), "\n"),
		)
		if _, err := fmt.Fprintln(w, cardStyle.Render(body)); err != nil {
			return err
		}
	}
	return nil
}

func renderJSON(w io.Writer, doc cards.Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	return nil
}

func renderYAML(w io.Writer, doc cards.Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}
