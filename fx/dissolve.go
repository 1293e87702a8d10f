// Copyright © 2026 Glint contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package fx

import (
	"time"

	"github.com/glintfx/glint/cell"
)

// Dissolve blanks the cells of its region in a pseudo-random order as
// progress advances, or un-blanks them when reversed. The order is a pure
// function of cell position and seed, so a given seed always dissolves the
// same way.
type Dissolve struct {
	anim
	seed    int
	reverse bool
}

// NewDissolve hides the region's cells over d. With reverse set, cells are
// revealed instead: everything not yet reached stays blanked.
func NewDissolve(d time.Duration, seed int, reverse bool, ease EasingFunc) *Dissolve {
	if ease == nil {
		ease = EaseLinear
	}
	return &Dissolve{anim: newAnim(d, ease), seed: seed, reverse: reverse}
}

func (d *Dissolve) Process(elapsed time.Duration, s *cell.Surface, region cell.Rect) (time.Duration, bool) {
	leftover, ok := d.timer.Tick(elapsed)

	threshold := int(d.progress() * 100)
	r := d.effectiveRegion(region).Intersect(s.Bounds())
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			hash := (d.seed + x*31 + y*17) % 100
			hidden := hash < threshold
			if d.reverse {
				hidden = !hidden
			}
			if hidden {
				c := s.Get(x, y)
				c.Ch = ' '
				s.Set(x, y, c)
			}
		}
	}
	return leftover, ok
}

func (d *Dissolve) Clone() Effect {
	c := *d
	return &c
}
