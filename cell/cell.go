// Package cell provides the character-grid primitives the compositor paints
// into: cells, rectangles, styled text and the Surface buffer itself.
package cell

import "github.com/gdamore/tcell/v2"

// Cell is a single character position on a Surface. The zero value renders
// as a blank with the default style.
type Cell struct {
	Ch    rune
	Style tcell.Style
}

// Blank returns a space cell carrying the given style.
func Blank(style tcell.Style) Cell {
	return Cell{Ch: ' ', Style: style}
}
