// Copyright © 2026 Glint contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package cell

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Surface is a mutable character grid shared by every effect in a frame.
// It performs no terminal I/O; flushing to a screen is the caller's job.
// A Surface is not safe for concurrent mutation.
type Surface struct {
	w, h  int
	cells [][]Cell
}

// NewSurface allocates a w×h surface filled with blank cells.
func NewSurface(w, h int) *Surface {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	cells := make([][]Cell, h)
	for y := range cells {
		row := make([]Cell, w)
		for x := range row {
			row[x] = Cell{Ch: ' '}
		}
		cells[y] = row
	}
	return &Surface{w: w, h: h, cells: cells}
}

// Size returns the surface dimensions.
func (s *Surface) Size() (w, h int) { return s.w, s.h }

// Bounds returns the surface's full rectangle, anchored at the origin.
func (s *Surface) Bounds() Rect { return Rect{W: s.w, H: s.h} }

// Get returns the cell at (x, y). Out-of-bounds reads return a blank cell.
func (s *Surface) Get(x, y int) Cell {
	if x < 0 || y < 0 || x >= s.w || y >= s.h {
		return Cell{Ch: ' '}
	}
	return s.cells[y][x]
}

// Set places a cell at (x, y). Out-of-bounds writes are dropped.
func (s *Surface) Set(x, y int, c Cell) {
	if x < 0 || y < 0 || x >= s.w || y >= s.h {
		return
	}
	s.cells[y][x] = c
}

// Fill paints every cell of r, clipped to the surface.
func (s *Surface) Fill(r Rect, c Cell) {
	r = r.Intersect(s.Bounds())
	for y := r.Y; y < r.Bottom(); y++ {
		row := s.cells[y]
		for x := r.X; x < r.Right(); x++ {
			row[x] = c
		}
	}
}

// Clear resets r to blank cells carrying the given style.
func (s *Surface) Clear(r Rect, style tcell.Style) {
	s.Fill(r, Cell{Ch: ' ', Style: style})
}

// DrawText paints the spans of t starting at (x, y) and returns the column
// after the last painted rune. Wide runes occupy two columns; the shadowed
// column is marked with a zero rune so blitting can skip it.
func (s *Surface) DrawText(x, y int, t Text) int {
	for _, sp := range t {
		for _, r := range sp.Text {
			w := runewidth.RuneWidth(r)
			if w == 0 {
				continue
			}
			s.Set(x, y, Cell{Ch: r, Style: sp.Style})
			if w == 2 {
				s.Set(x+1, y, Cell{Style: sp.Style})
			}
			x += w
		}
	}
	return x
}

// Snapshot dumps the surface runes row by row, one line per row. Wide-rune
// continuation cells are skipped so each line reads naturally.
func (s *Surface) Snapshot() string {
	var b strings.Builder
	for y := 0; y < s.h; y++ {
		for x := 0; x < s.w; x++ {
			if s.cells[y][x].Ch == 0 {
				continue
			}
			b.WriteRune(s.cells[y][x].Ch)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
