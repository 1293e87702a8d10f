// Package fx defines the effect contract consumed by the window compositor
// and ships a small catalog of built-in effects: timed fades, dissolves,
// geometry transitions and a couple of free-running overlays.
package fx

import (
	"time"

	"github.com/glintfx/glint/cell"
)

// Effect is a time-driven unit of animated mutation over a Surface region.
//
// Process advances the effect by up to elapsed and applies its visual result
// to region within s. It returns ok=true with the unconsumed remainder when
// the effect completed before using the whole quantum; ok=false means the
// quantum was fully consumed, whether the effect is still going or finished
// exactly on the boundary.
//
// Running and Done are independent: an effect that has not started may be
// neither. Callers advance an effect only while Running reports true.
//
// Region returns the rectangle the effect wants to own when it holds a
// geometry opinion of its own; ok=false defers to the caller's region.
// SetRegion reassigns the rectangle the effect operates within.
//
// Clone returns a deep, independent copy sharing no mutable state with the
// original.
type Effect interface {
	Process(elapsed time.Duration, s *cell.Surface, region cell.Rect) (leftover time.Duration, ok bool)
	Running() bool
	Done() bool
	Region() (cell.Rect, bool)
	SetRegion(cell.Rect)
	Clone() Effect
}

// CellSelector filters individual cells for effects that can apply
// themselves partially. None of the built-in effects consume selectors;
// compositors that cannot honor one must reject it outright.
type CellSelector func(x, y int, c cell.Cell) bool
