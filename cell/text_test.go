package cell

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestTextWidthCountsWideRunes(t *testing.T) {
	txt := Plain("a界")
	if w := txt.Width(); w != 3 {
		t.Fatalf("expected width 3, got %d", w)
	}
}

func TestTruncateCutsAtSpanBoundary(t *testing.T) {
	txt := Text{Styled("abc", tcell.StyleDefault), Styled("def", tcell.StyleDefault)}
	got := txt.Truncate(3)
	if got.String() != "abc" {
		t.Fatalf("expected %q, got %q", "abc", got.String())
	}
}

func TestTruncateCutsMidSpan(t *testing.T) {
	txt := Plain("abcdef")
	got := txt.Truncate(4)
	if got.String() != "abcd" {
		t.Fatalf("expected %q, got %q", "abcd", got.String())
	}
}

func TestTruncateNeverSplitsWideRune(t *testing.T) {
	txt := Plain("a界b")
	got := txt.Truncate(2)
	if got.String() != "a" {
		t.Fatalf("a wide rune must not be halved: got %q", got.String())
	}
}

func TestTruncateZeroWidthIsNil(t *testing.T) {
	if got := Plain("abc").Truncate(0); got != nil {
		t.Fatalf("expected nil, got %q", got.String())
	}
}
