package fx

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/glintfx/glint/cell"
)

// Tint is a free-running overlay that sinks its region toward a color at a
// fixed intensity. It never finishes; a compositor dims its backdrop with
// one and drops it when no longer wanted.
type Tint struct {
	color     tcell.Color
	intensity float64
	region    cell.Rect
	hasRegion bool
}

// NewTint builds a constant overlay. Intensity outside [0,1] is clamped.
func NewTint(color tcell.Color, intensity float64) *Tint {
	if intensity < 0 {
		intensity = 0
	}
	if intensity > 1 {
		intensity = 1
	}
	return &Tint{color: color, intensity: intensity}
}

func (t *Tint) Process(elapsed time.Duration, s *cell.Surface, region cell.Rect) (time.Duration, bool) {
	r := region
	if t.hasRegion {
		r = t.region
	}
	r = r.Intersect(s.Bounds())
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			c := s.Get(x, y)
			fg, bg, attrs := c.Style.Decompose()
			c.Style = tcell.StyleDefault.
				Foreground(blendColor(fg, t.color, t.intensity)).
				Background(blendColor(bg, t.color, t.intensity)).
				Attributes(attrs)
			s.Set(x, y, c)
		}
	}
	return 0, false
}

func (t *Tint) Running() bool { return true }
func (t *Tint) Done() bool    { return false }

func (t *Tint) Region() (cell.Rect, bool) { return t.region, t.hasRegion }

func (t *Tint) SetRegion(r cell.Rect) {
	t.region = r
	t.hasRegion = true
}

func (t *Tint) Clone() Effect {
	c := *t
	return &c
}
