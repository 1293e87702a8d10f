package cell

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Span is a run of text rendered with a single style.
type Span struct {
	Text  string
	Style tcell.Style
}

// Styled builds a span from a string and a style.
func Styled(s string, style tcell.Style) Span {
	return Span{Text: s, Style: style}
}

// Text is a sequence of styled spans forming one logical line.
type Text []Span

// Plain wraps a string into a single default-styled span.
func Plain(s string) Text {
	return Text{{Text: s}}
}

// Width returns the number of terminal columns the text occupies, accounting
// for wide runes.
func (t Text) Width() int {
	w := 0
	for _, sp := range t {
		w += runewidth.StringWidth(sp.Text)
	}
	return w
}

// String concatenates the span contents without styling.
func (t Text) String() string {
	var b strings.Builder
	for _, sp := range t {
		b.WriteString(sp.Text)
	}
	return b.String()
}

// Truncate cuts the text to at most maxWidth columns, dropping whole runes.
func (t Text) Truncate(maxWidth int) Text {
	if maxWidth <= 0 {
		return nil
	}
	var out Text
	remain := maxWidth
	for _, sp := range t {
		w := runewidth.StringWidth(sp.Text)
		if w <= remain {
			out = append(out, sp)
			remain -= w
			continue
		}
		var b strings.Builder
		for _, r := range sp.Text {
			rw := runewidth.RuneWidth(r)
			if rw > remain {
				break
			}
			b.WriteRune(r)
			remain -= rw
		}
		if b.Len() > 0 {
			out = append(out, Span{Text: b.String(), Style: sp.Style})
		}
		break
	}
	return out
}
