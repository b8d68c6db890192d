package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// asciiPunct is every character CommonMark allows to be backslash-escaped.
const asciiPunct = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// NewRenderer returns a function that styles screen text with glamour.
// The text is escaped first, so API content such as "# title" or "*word*" prints as written.
// When the renderer cannot be built the text is passed through untouched.
func NewRenderer(width int) func(string) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return func(s string) (string, error) { return s, nil }
	}

	return func(text string) (string, error) {
		out, err := r.Render(EscapeMarkdown(text))
		if err != nil {
			return text, err
		}
		return strings.Trim(out, "\n"), nil
	}
}

// EscapeMarkdown makes s render as literal text: punctuation is backslash-escaped
// and newlines become hard line breaks.
func EscapeMarkdown(s string) string {
	s = strings.TrimRight(s, "\r\n")

	var b strings.Builder
	b.Grow(len(s) + len(s)/4)
	for _, r := range s {
		switch {
		case r == '\r':
		case r == '\n':
			b.WriteString("\\\n")
		case strings.ContainsRune(asciiPunct, r):
			b.WriteByte('\\')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
