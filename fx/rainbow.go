package fx

import (
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/glintfx/glint/cell"
)

// Rainbow cycles a hue tint across the non-blank cells of its region,
// shifting with both position and time. It never finishes.
type Rainbow struct {
	intensity float64
	speed     float64 // radians per second
	phase     float64
	region    cell.Rect
	hasRegion bool
}

// NewRainbow builds a hue-cycling overlay. speed is in radians per second;
// zero picks a gentle default.
func NewRainbow(intensity, speed float64) *Rainbow {
	if intensity < 0 {
		intensity = 0
	}
	if intensity > 1 {
		intensity = 1
	}
	if speed == 0 {
		speed = math.Pi
	}
	return &Rainbow{intensity: intensity, speed: speed}
}

func (r *Rainbow) Process(elapsed time.Duration, s *cell.Surface, region cell.Rect) (time.Duration, bool) {
	r.phase += elapsed.Seconds() * r.speed
	if r.phase > 2*math.Pi {
		r.phase = math.Mod(r.phase, 2*math.Pi)
	}

	area := region
	if r.hasRegion {
		area = r.region
	}
	area = area.Intersect(s.Bounds())
	for y := area.Y; y < area.Bottom(); y++ {
		for x := area.X; x < area.Right(); x++ {
			c := s.Get(x, y)
			if c.Ch == ' ' || c.Ch == 0 {
				continue
			}
			hue := r.phase + float64(x+y)*0.1
			tint := hsvToRGB(hue, 1.0, 1.0)
			fg, bg, attrs := c.Style.Decompose()
			if !fg.Valid() {
				fg = tcell.ColorWhite
			}
			c.Style = tcell.StyleDefault.
				Foreground(blendColor(fg, tint, r.intensity)).
				Background(bg).
				Attributes(attrs)
			s.Set(x, y, c)
		}
	}
	return 0, false
}

func (r *Rainbow) Running() bool { return true }
func (r *Rainbow) Done() bool    { return false }

func (r *Rainbow) Region() (cell.Rect, bool) { return r.region, r.hasRegion }

func (r *Rainbow) SetRegion(area cell.Rect) {
	r.region = area
	r.hasRegion = true
}

func (r *Rainbow) Clone() Effect {
	c := *r
	return &c
}
