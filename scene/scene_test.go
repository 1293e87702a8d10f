package scene

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/glintfx/glint/cell"
)

const sampleScene = `
windows:
  - title: "Log view"
    border: rounded
    region: [2, 1, 30, 10]
    title_style: {fg: "#ffcc00", bold: true}
    border_style: {fg: "gray"}
    background: {bg: "#101018"}
    open:
      id: expand
      with: {duration_ms: 250}
    content:
      id: fade-in
      with: {duration_ms: 400, color: "#000000"}
  - title: "Status"
    region: [5, 12, 20, 5]
`

func TestParseAndBuild(t *testing.T) {
	sc, err := Parse([]byte(sampleScene))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(sc.Windows) != 2 {
		t.Fatalf("expected 2 window defs, got %d", len(sc.Windows))
	}
	if sc.Windows[0].Open == nil || sc.Windows[0].Open.ID != "expand" {
		t.Fatalf("open slot not decoded: %+v", sc.Windows[0].Open)
	}

	placements, err := sc.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(placements) != 2 {
		t.Fatalf("expected 2 placements, got %d", len(placements))
	}
	if got, want := placements[0].Region, (cell.Rect{X: 2, Y: 1, W: 30, H: 10}); got != want {
		t.Errorf("region = %+v, want %+v", got, want)
	}
	if placements[0].Win.Done() {
		t.Error("window with an open effect should not start done")
	}
	if !placements[1].Win.Done() {
		t.Error("window without open effect should be done from birth")
	}
}

func TestBuildUnknownEffect(t *testing.T) {
	sc, err := Parse([]byte(`
windows:
  - title: "x"
    region: [0, 0, 5, 5]
    open: {id: no-such-effect}
`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if _, err := sc.Build(); err == nil {
		t.Fatal("expected error for unknown effect id")
	} else if !strings.Contains(err.Error(), "no-such-effect") {
		t.Errorf("error should name the effect: %v", err)
	}
}

func TestBuildUnknownBorder(t *testing.T) {
	sc, err := Parse([]byte(`
windows:
  - title: "x"
    border: wavy
    region: [0, 0, 5, 5]
`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if _, err := sc.Build(); err == nil {
		t.Fatal("expected error for unknown border kind")
	}
}

func TestParseMalformed(t *testing.T) {
	if _, err := Parse([]byte("windows: [not a mapping")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestWatchReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	if err := os.WriteFile(path, []byte("windows: []\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan string, 1)
	err := Watch(ctx, []string{path}, func(p string) {
		select {
		case changed <- p:
		default:
		}
	})
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	if err := os.WriteFile(path, []byte("windows: []\n# touched\n"), 0644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}

	select {
	case p := <-changed:
		if p != path {
			t.Errorf("changed path = %q, want %q", p, path)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change notification")
	}
}

func TestWatchMissingPath(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	err := Watch(ctx, []string{filepath.Join(t.TempDir(), "absent")}, func(string) {})
	if err == nil {
		t.Fatal("expected error watching a missing path")
	}
}
