// Copyright © 2026 Glint contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package window

import (
	"github.com/gdamore/tcell/v2"

	"github.com/glintfx/glint/cell"
)

// BorderKind selects the rune set used for the window frame.
type BorderKind int

const (
	BorderPlain BorderKind = iota
	BorderRounded
	BorderDouble
	BorderThick
)

type borderSet struct {
	h, v           rune
	tl, tr, bl, br rune
}

var borderSets = map[BorderKind]borderSet{
	BorderPlain: {
		h: tcell.RuneHLine, v: tcell.RuneVLine,
		tl: tcell.RuneULCorner, tr: tcell.RuneURCorner,
		bl: tcell.RuneLLCorner, br: tcell.RuneLRCorner,
	},
	BorderRounded: {
		h: tcell.RuneHLine, v: tcell.RuneVLine,
		tl: '╭', tr: '╮', bl: '╰', br: '╯',
	},
	BorderDouble: {
		h: '═', v: '║',
		tl: '╔', tr: '╗', bl: '╚', br: '╝',
	},
	BorderThick: {
		h: '━', v: '┃',
		tl: '┏', tr: '┓', bl: '┗', br: '┛',
	},
}

// TitleBar decorates plain title text with the frame's bracket runes, ready
// to paint over the top border.
func TitleBar(title string, borderStyle, titleStyle tcell.Style) cell.Text {
	return cell.Text{
		cell.Styled("┫", borderStyle),
		cell.Styled(title, titleStyle),
		cell.Styled("┣", borderStyle),
	}
}

// paintChrome clears the region with the window background, then draws the
// frame and title. Regions thinner than 2×2 get the background only.
func (w *Window) paintChrome(s *cell.Surface, area cell.Rect) {
	if area.Empty() {
		return
	}
	s.Clear(area, w.background)

	if area.W < 2 || area.H < 2 {
		return
	}

	bs := borderSets[w.border]
	top, bottom := area.Y, area.Bottom()-1
	left, right := area.X, area.Right()-1

	for x := left + 1; x < right; x++ {
		s.Set(x, top, cell.Cell{Ch: bs.h, Style: w.borderStyle})
		s.Set(x, bottom, cell.Cell{Ch: bs.h, Style: w.borderStyle})
	}
	for y := top + 1; y < bottom; y++ {
		s.Set(left, y, cell.Cell{Ch: bs.v, Style: w.borderStyle})
		s.Set(right, y, cell.Cell{Ch: bs.v, Style: w.borderStyle})
	}
	s.Set(left, top, cell.Cell{Ch: bs.tl, Style: w.borderStyle})
	s.Set(right, top, cell.Cell{Ch: bs.tr, Style: w.borderStyle})
	s.Set(left, bottom, cell.Cell{Ch: bs.bl, Style: w.borderStyle})
	s.Set(right, bottom, cell.Cell{Ch: bs.br, Style: w.borderStyle})

	if len(w.title) == 0 {
		return
	}
	// Title fragments sit on the top border, trimmed to fit between the
	// corners.
	s.DrawText(left+1, top, w.title.Truncate(area.W-2))
}
