// Copyright © 2026 Glint contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package fx

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/glintfx/glint/cell"
)

// FadeDir selects whether a fade reveals content (in) or sinks it toward the
// fade color (out).
type FadeDir int

const (
	FadeIn FadeDir = iota
	FadeOut
)

// Fade blends the foreground and background of every cell in its region
// toward a single color by eased progress. A FadeIn starts fully sunk into
// the color and clears up; a FadeOut does the reverse.
type Fade struct {
	anim
	dir        FadeDir
	color      tcell.Color
	perceptual bool
}

// NewFade builds a fade over d. A nil easing defaults to smoothstep.
func NewFade(dir FadeDir, color tcell.Color, d time.Duration, ease EasingFunc) *Fade {
	return &Fade{anim: newAnim(d, ease), dir: dir, color: color}
}

// Perceptual switches blending to the Hcl color space.
func (f *Fade) Perceptual(on bool) *Fade {
	f.perceptual = on
	return f
}

func (f *Fade) Process(elapsed time.Duration, s *cell.Surface, region cell.Rect) (time.Duration, bool) {
	leftover, ok := f.timer.Tick(elapsed)

	intensity := f.progress()
	if f.dir == FadeIn {
		intensity = 1 - intensity
	}

	blend := blendColor
	if f.perceptual {
		blend = blendColorHcl
	}

	r := f.effectiveRegion(region).Intersect(s.Bounds())
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			c := s.Get(x, y)
			fg, bg, attrs := c.Style.Decompose()
			if !fg.Valid() {
				fg = tcell.ColorWhite
			}
			if !bg.Valid() {
				bg = tcell.ColorBlack
			}
			c.Style = tcell.StyleDefault.
				Foreground(blend(fg, f.color, intensity)).
				Background(blend(bg, f.color, intensity)).
				Attributes(attrs)
			s.Set(x, y, c)
		}
	}
	return leftover, ok
}

func (f *Fade) Clone() Effect {
	c := *f
	return &c
}
