package fx

import (
	"testing"
	"time"

	"github.com/glintfx/glint/cell"
)

func TestExpandStartsAsCenterSlit(t *testing.T) {
	target := cell.NewRect(5, 2, 20, 10)
	e := NewExpand(target, 100*time.Millisecond, EaseLinear)
	r, ok := e.Region()
	if !ok {
		t.Fatalf("expand should always hold a geometry opinion")
	}
	want := cell.NewRect(5, 7, 20, 1)
	if r != want {
		t.Fatalf("expected seed slit %+v, got %+v", want, r)
	}
}

func TestExpandReachesTargetAtFullProgress(t *testing.T) {
	s := cell.NewSurface(40, 20)
	target := cell.NewRect(5, 2, 20, 10)
	e := NewExpand(target, 100*time.Millisecond, EaseLinear)

	leftover, ok := e.Process(120*time.Millisecond, s, s.Bounds())
	if !ok || leftover != 20*time.Millisecond {
		t.Fatalf("expected (20ms, true), got (%v, %v)", leftover, ok)
	}
	if r, _ := e.Region(); r != target {
		t.Fatalf("expected %+v at full progress, got %+v", target, r)
	}
	if !e.Done() || e.Running() {
		t.Fatalf("expand should be done and not running")
	}
}

func TestExpandGrowsMonotonically(t *testing.T) {
	s := cell.NewSurface(40, 20)
	target := cell.NewRect(0, 0, 40, 20)
	e := NewExpand(target, 100*time.Millisecond, EaseLinear)

	prevH := 0
	for i := 0; i < 10; i++ {
		e.Process(10*time.Millisecond, s, s.Bounds())
		r, _ := e.Region()
		if r.H < prevH {
			t.Fatalf("region shrank from height %d to %d at step %d", prevH, r.H, i)
		}
		prevH = r.H
	}
}

func TestExpandRetargetKeepsProgress(t *testing.T) {
	s := cell.NewSurface(80, 24)
	e := NewExpand(cell.NewRect(0, 0, 10, 10), 100*time.Millisecond, EaseLinear)
	e.Process(100*time.Millisecond, s, s.Bounds())

	next := cell.NewRect(2, 2, 30, 12)
	e.SetRegion(next)
	if r, _ := e.Region(); r != next {
		t.Fatalf("a finished expand should sit at its new target, got %+v", r)
	}
}
