package fx

import (
	"time"

	"github.com/glintfx/glint/cell"
)

// Expand is a geometry transition: its reported region grows from a thin
// slit to a target rectangle as time advances. It paints nothing itself;
// compositors query Region each tick and draw into whatever it has reached.
type Expand struct {
	timer  Timer
	ease   EasingFunc
	target cell.Rect
	seed   cell.Rect
	cur    cell.Rect
}

// NewExpand grows toward target over d. The transition starts from a
// one-row slit across the target's vertical center. A nil easing defaults
// to smoothstep.
func NewExpand(target cell.Rect, d time.Duration, ease EasingFunc) *Expand {
	if ease == nil {
		ease = EaseSmoothstep
	}
	e := &Expand{timer: NewTimer(d), ease: ease}
	e.retarget(target)
	return e
}

func seedSlit(target cell.Rect) cell.Rect {
	return cell.Rect{X: target.X, Y: target.Y + target.H/2, W: target.W, H: 1}
}

func (e *Expand) retarget(target cell.Rect) {
	e.target = target
	e.seed = seedSlit(target)
	e.cur = cell.LerpRect(e.seed, e.target, e.ease(e.timer.Progress()))
}

func (e *Expand) Process(elapsed time.Duration, s *cell.Surface, region cell.Rect) (time.Duration, bool) {
	leftover, ok := e.timer.Tick(elapsed)
	e.cur = cell.LerpRect(e.seed, e.target, e.ease(e.timer.Progress()))
	return leftover, ok
}

func (e *Expand) Running() bool { return !e.timer.Done() }
func (e *Expand) Done() bool    { return e.timer.Done() }

// Region reports the rectangle the transition has reached so far.
func (e *Expand) Region() (cell.Rect, bool) { return e.cur, true }

// SetRegion reassigns the transition's target rectangle; the current
// position is re-derived from progress already made.
func (e *Expand) SetRegion(r cell.Rect) { e.retarget(r) }

func (e *Expand) Clone() Effect {
	c := *e
	return &c
}
