package hl

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/glintfx/glint/cell"
)

const goSample = `package main

import "fmt"

func main() {
	fmt.Println("hello")
}
`

func TestHighlightGoSource(t *testing.T) {
	lines, err := Highlight([]byte(goSample), "main.go", "")
	if err != nil {
		t.Fatalf("Highlight failed: %v", err)
	}
	want := strings.Count(goSample, "\n")
	if len(lines) != want {
		t.Fatalf("expected %d lines, got %d", want, len(lines))
	}
	if got := lines[0].String(); got != "package main" {
		t.Errorf("first line = %q, want %q", got, "package main")
	}

	styled := false
	for _, line := range lines {
		for _, sp := range line {
			if sp.Style != tcell.StyleDefault {
				styled = true
			}
		}
	}
	if !styled {
		t.Error("expected at least one styled span in highlighted Go source")
	}
}

func TestHighlightExpandsTabs(t *testing.T) {
	lines, err := Highlight([]byte("\tx := 1\n"), "snippet.go", "")
	if err != nil {
		t.Fatalf("Highlight failed: %v", err)
	}
	if got := lines[0].String(); strings.ContainsRune(got, '\t') {
		t.Errorf("tabs should be expanded, got %q", got)
	}
}

func TestHighlightDetectsWithoutFilename(t *testing.T) {
	lines, err := Highlight([]byte(goSample), "", "")
	if err != nil {
		t.Fatalf("Highlight failed: %v", err)
	}
	if len(lines) == 0 {
		t.Fatal("expected lines from content-detected source")
	}
}

func TestPaintBlockClipsToRegion(t *testing.T) {
	s := cell.NewSurface(10, 4)
	lines := []cell.Text{
		cell.Plain("0123456789abcdef"),
		cell.Plain("second"),
		cell.Plain("third"),
	}
	PaintBlock(s, cell.Rect{X: 2, Y: 1, W: 5, H: 2}, lines, 0)

	if got := s.Get(2, 1).Ch; got != '0' {
		t.Errorf("cell (2,1) = %q, want '0'", got)
	}
	if got := s.Get(7, 1).Ch; got != ' ' {
		t.Errorf("line should be clipped at region width, cell (7,1) = %q", got)
	}
	if got := s.Get(2, 3).Ch; got != ' ' {
		t.Errorf("third line is outside the region, cell (2,3) = %q", got)
	}
}

func TestPaintBlockScroll(t *testing.T) {
	s := cell.NewSurface(10, 2)
	lines := []cell.Text{cell.Plain("aaa"), cell.Plain("bbb"), cell.Plain("ccc")}
	PaintBlock(s, cell.Rect{W: 10, H: 2}, lines, 1)

	if got := s.Get(0, 0).Ch; got != 'b' {
		t.Errorf("scrolled first row = %q, want 'b'", got)
	}
	if got := s.Get(0, 1).Ch; got != 'c' {
		t.Errorf("scrolled second row = %q, want 'c'", got)
	}
}
