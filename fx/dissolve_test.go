package fx

import (
	"testing"
	"time"

	"github.com/glintfx/glint/cell"
)

func fillLetters(s *cell.Surface) {
	s.Fill(s.Bounds(), cell.Cell{Ch: 'x'})
}

func TestDissolveHidesEverythingAtFullProgress(t *testing.T) {
	s := cell.NewSurface(10, 4)
	fillLetters(s)

	d := NewDissolve(50*time.Millisecond, 7, false, EaseLinear)
	d.Process(50*time.Millisecond, s, s.Bounds())

	for y := 0; y < 4; y++ {
		for x := 0; x < 10; x++ {
			if c := s.Get(x, y); c.Ch != ' ' {
				t.Fatalf("cell (%d,%d) survived a complete dissolve: %q", x, y, c.Ch)
			}
		}
	}
}

func TestDissolveIsDeterministicPerSeed(t *testing.T) {
	run := func(seed int) string {
		s := cell.NewSurface(12, 5)
		fillLetters(s)
		d := NewDissolve(100*time.Millisecond, seed, false, EaseLinear)
		d.Process(40*time.Millisecond, s, s.Bounds())
		return s.Snapshot()
	}
	if run(3) != run(3) {
		t.Fatalf("same seed produced different dissolve patterns")
	}
	if run(3) == run(4) {
		t.Fatalf("different seeds should scatter differently")
	}
}

func TestReversedDissolveRevealsOverTime(t *testing.T) {
	s := cell.NewSurface(10, 4)
	fillLetters(s)

	d := NewDissolve(50*time.Millisecond, 0, true, EaseLinear)
	d.Process(0, s, s.Bounds())
	if c := s.Get(3, 2); c.Ch != ' ' {
		t.Fatalf("reversed dissolve at progress 0 should hide everything")
	}

	s2 := cell.NewSurface(10, 4)
	fillLetters(s2)
	d2 := NewDissolve(50*time.Millisecond, 0, true, EaseLinear)
	d2.Process(50*time.Millisecond, s2, s2.Bounds())
	if c := s2.Get(3, 2); c.Ch != 'x' {
		t.Fatalf("reversed dissolve at progress 1 should reveal everything, got %q", c.Ch)
	}
}
