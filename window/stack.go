package window

import (
	"time"

	"github.com/glintfx/glint/cell"
)

type placement struct {
	win    *Window
	region cell.Rect
}

// Stack drives an ordered set of windows with a single time quantum per
// frame. Each window consumes what its open transition needs and the
// remainder flows into the next, so a window finishing mid-frame hands its
// unused time to the one behind it instead of stalling the sequence a frame.
type Stack struct {
	placements []placement
}

// NewStack returns an empty stack.
func NewStack() *Stack { return &Stack{} }

// Push appends a window bound to its target region.
func (st *Stack) Push(w *Window, region cell.Rect) {
	st.placements = append(st.placements, placement{win: w, region: region})
}

// Len returns the number of stacked windows.
func (st *Stack) Len() int { return len(st.placements) }

// Done reports whether every stacked window has finished opening.
func (st *Stack) Done() bool {
	for _, p := range st.placements {
		if !p.win.Done() {
			return false
		}
	}
	return true
}

// Tick advances the stack front to back. Windows already done tick with
// whatever remains (they pass it through untouched) so their chrome stays
// painted. The return value reports the time left after the whole stack,
// with ok=false while any window is still consuming.
func (st *Stack) Tick(elapsed time.Duration, s *cell.Surface) (time.Duration, bool) {
	remain, ok := elapsed, true
	for _, p := range st.placements {
		var o bool
		remain, o = p.win.Tick(remain, s, p.region)
		ok = ok && o
	}
	return remain, ok
}

// TickContent advances every window's content effect with the same quantum.
// Callers typically invoke it after Tick, once per frame.
func (st *Stack) TickContent(elapsed time.Duration, s *cell.Surface) {
	for _, p := range st.placements {
		region := p.region
		if r, has := p.win.Region(); has {
			region = r.Clamp(s.Bounds())
		}
		p.win.TickContent(elapsed, s, region)
	}
}

// SetRegion reassigns a window's target region by index, forwarding the new
// geometry the way the window itself does on reassignment.
func (st *Stack) SetRegion(i int, r cell.Rect) {
	if i < 0 || i >= len(st.placements) {
		return
	}
	st.placements[i].region = r
	st.placements[i].win.SetRegion(r)
}

// Windows returns the stacked windows in order.
func (st *Stack) Windows() []*Window {
	out := make([]*Window, len(st.placements))
	for i, p := range st.placements {
		out[i] = p.win
	}
	return out
}

// Regions returns the target regions in window order.
func (st *Stack) Regions() []cell.Rect {
	out := make([]cell.Rect, len(st.placements))
	for i, p := range st.placements {
		out[i] = p.region
	}
	return out
}
