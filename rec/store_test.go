package rec

import (
	"path/filepath"
	"testing"

	"github.com/glintfx/glint/cell"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "frames.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func TestRecordAndReadBack(t *testing.T) {
	st := openTestStore(t)

	s := cell.NewSurface(4, 2)
	s.Set(0, 0, cell.Cell{Ch: 'A'})
	s.Set(3, 1, cell.Cell{Ch: 'Z'})

	if err := st.RecordFrame("run1", 0, s); err != nil {
		t.Fatalf("RecordFrame failed: %v", err)
	}
	s.Set(0, 0, cell.Cell{Ch: 'B'})
	if err := st.RecordFrame("run1", 1, s); err != nil {
		t.Fatalf("RecordFrame failed: %v", err)
	}

	frames, err := st.Frames("run1")
	if err != nil {
		t.Fatalf("Frames failed: %v", err)
	}
	if len(frames) != 2 {
		t.Fatalf("expected 2 frames, got %d", len(frames))
	}
	if frames[0].Seq != 0 || frames[1].Seq != 1 {
		t.Errorf("frames out of order: %d, %d", frames[0].Seq, frames[1].Seq)
	}
	if frames[0].Width != 4 || frames[0].Height != 2 {
		t.Errorf("frame size = %dx%d, want 4x2", frames[0].Width, frames[0].Height)
	}
	if frames[0].Snapshot != "A   \n   Z\n" {
		t.Errorf("unexpected snapshot %q", frames[0].Snapshot)
	}
	if frames[1].Snapshot[0] != 'B' {
		t.Errorf("second frame should start with 'B', got %q", frames[1].Snapshot)
	}
}

func TestRecordFrameOverwritesSeq(t *testing.T) {
	st := openTestStore(t)

	s := cell.NewSurface(2, 1)
	if err := st.RecordFrame("run", 5, s); err != nil {
		t.Fatalf("RecordFrame failed: %v", err)
	}
	s.Set(0, 0, cell.Cell{Ch: 'X'})
	if err := st.RecordFrame("run", 5, s); err != nil {
		t.Fatalf("re-record failed: %v", err)
	}

	frames, err := st.Frames("run")
	if err != nil {
		t.Fatalf("Frames failed: %v", err)
	}
	if len(frames) != 1 {
		t.Fatalf("expected 1 frame after overwrite, got %d", len(frames))
	}
	if frames[0].Snapshot != "X \n" {
		t.Errorf("overwrite kept the old snapshot: %q", frames[0].Snapshot)
	}
}

func TestSessions(t *testing.T) {
	st := openTestStore(t)

	s := cell.NewSurface(1, 1)
	for _, name := range []string{"first", "second"} {
		if err := st.RecordFrame(name, 0, s); err != nil {
			t.Fatalf("RecordFrame(%s) failed: %v", name, err)
		}
	}

	sessions, err := st.Sessions()
	if err != nil {
		t.Fatalf("Sessions failed: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(sessions))
	}
}

func TestFramesEmptySession(t *testing.T) {
	st := openTestStore(t)

	frames, err := st.Frames("nope")
	if err != nil {
		t.Fatalf("Frames failed: %v", err)
	}
	if len(frames) != 0 {
		t.Errorf("expected no frames, got %d", len(frames))
	}
}
