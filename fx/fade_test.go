package fx

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/glintfx/glint/cell"
)

func TestFadeOutReachesTargetColor(t *testing.T) {
	s := cell.NewSurface(4, 2)
	s.Fill(s.Bounds(), cell.Cell{Ch: 'x', Style: tcell.StyleDefault.Foreground(tcell.NewRGBColor(200, 100, 50))})

	black := tcell.NewRGBColor(0, 0, 0)
	fade := NewFade(FadeOut, black, 100*time.Millisecond, EaseLinear)
	leftover, ok := fade.Process(150*time.Millisecond, s, s.Bounds())
	if !ok || leftover != 50*time.Millisecond {
		t.Fatalf("expected (50ms, true), got (%v, %v)", leftover, ok)
	}
	if !fade.Done() {
		t.Fatalf("fade should be done")
	}

	fg, _, _ := s.Get(0, 0).Style.Decompose()
	if fg != black {
		t.Fatalf("expected fully faded foreground, got %v", fg)
	}
}

func TestFadeInStartsSunkIntoColor(t *testing.T) {
	s := cell.NewSurface(2, 1)
	s.Fill(s.Bounds(), cell.Cell{Ch: 'x', Style: tcell.StyleDefault.Foreground(tcell.NewRGBColor(200, 100, 50))})

	black := tcell.NewRGBColor(0, 0, 0)
	fade := NewFade(FadeIn, black, 100*time.Millisecond, EaseLinear)
	fade.Process(0, s, s.Bounds())

	fg, _, _ := s.Get(0, 0).Style.Decompose()
	if fg != black {
		t.Fatalf("a fade-in at progress 0 should be fully sunk, got %v", fg)
	}
}

func TestFadeHonorsRegionOverride(t *testing.T) {
	s := cell.NewSurface(6, 1)
	style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(200, 100, 50))
	s.Fill(s.Bounds(), cell.Cell{Ch: 'x', Style: style})

	fade := NewFade(FadeOut, tcell.NewRGBColor(0, 0, 0), 10*time.Millisecond, EaseLinear)
	fade.SetRegion(cell.NewRect(0, 0, 3, 1))
	fade.Process(10*time.Millisecond, s, s.Bounds())

	if fg, _, _ := s.Get(4, 0).Style.Decompose(); fg != tcell.NewRGBColor(200, 100, 50) {
		t.Fatalf("cell outside the override region changed: %v", fg)
	}
	if fg, _, _ := s.Get(1, 0).Style.Decompose(); fg != tcell.NewRGBColor(0, 0, 0) {
		t.Fatalf("cell inside the override region unchanged: %v", fg)
	}
}

func TestFadeCloneIsIndependent(t *testing.T) {
	s := cell.NewSurface(2, 1)
	fade := NewFade(FadeOut, tcell.NewRGBColor(0, 0, 0), 100*time.Millisecond, EaseLinear)
	clone := fade.Clone()

	fade.Process(100*time.Millisecond, s, s.Bounds())
	if !fade.Done() {
		t.Fatalf("original should be done")
	}
	if clone.Done() {
		t.Fatalf("clone advanced alongside the original")
	}
}
