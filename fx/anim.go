package fx

import (
	"time"

	"github.com/glintfx/glint/cell"
)

// anim carries the state shared by the finite built-in effects: a countdown
// timer, an easing curve and an optional region override.
type anim struct {
	timer     Timer
	ease      EasingFunc
	region    cell.Rect
	hasRegion bool
}

func newAnim(d time.Duration, ease EasingFunc) anim {
	if ease == nil {
		ease = EaseSmoothstep
	}
	return anim{timer: NewTimer(d), ease: ease}
}

func (a *anim) Running() bool { return !a.timer.Done() }
func (a *anim) Done() bool    { return a.timer.Done() }

func (a *anim) Region() (cell.Rect, bool) { return a.region, a.hasRegion }

func (a *anim) SetRegion(r cell.Rect) {
	a.region = r
	a.hasRegion = true
}

// effectiveRegion picks the override when one was assigned, otherwise the
// caller's rectangle.
func (a *anim) effectiveRegion(r cell.Rect) cell.Rect {
	if a.hasRegion {
		return a.region
	}
	return r
}

// progress returns eased completion after ticking is accounted for.
func (a *anim) progress() float64 {
	return a.ease(a.timer.Progress())
}
