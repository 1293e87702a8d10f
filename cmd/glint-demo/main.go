// Copyright © 2026 Glint contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/glint-demo/main.go
// Summary: Showcase binary: a tcell frame loop driving a window stack.
// Usage: Run `glint-demo` in a terminal; -scene loads a YAML scene.

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/glintfx/glint/cell"
	"github.com/glintfx/glint/fx"
	"github.com/glintfx/glint/hl"
	"github.com/glintfx/glint/rec"
	"github.com/glintfx/glint/scene"
	"github.com/glintfx/glint/theme"
	"github.com/glintfx/glint/window"
)

const fallbackSource = `package main

import "fmt"

// glint composits layered window effects onto a character grid.
func main() {
	for i := 0; i < 3; i++ {
		fmt.Println("frame", i)
	}
}
`

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	scenePath := flag.String("scene", "", "YAML scene file (default: built-in showcase)")
	themePath := flag.String("theme", "", "JSON theme file")
	filePath := flag.String("file", "", "Source file shown inside windows")
	styleName := flag.String("style", "", "Chroma style for highlighted content")
	recordPath := flag.String("record", "", "SQLite database to record frames into")
	fps := flag.Int("fps", 60, "Frames per second")
	verbose := flag.Bool("verbose", false, "Enable debug logging")
	flag.Parse()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("stdout is not a terminal")
	}
	if *fps < 1 {
		return fmt.Errorf("fps must be positive")
	}
	scene.SetVerbose(*verbose)

	if *themePath != "" {
		if err := theme.Load(*themePath); err != nil {
			return err
		}
	}

	source := []byte(fallbackSource)
	sourceName := "demo.go"
	if *filePath != "" {
		data, err := os.ReadFile(*filePath)
		if err != nil {
			return fmt.Errorf("read content file: %w", err)
		}
		source, sourceName = data, *filePath
	}
	lines, err := hl.Highlight(source, sourceName, *styleName)
	if err != nil {
		return err
	}

	var store *rec.Store
	if *recordPath != "" {
		store, err = rec.Open(*recordPath)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	d := &demo{
		screen:    screen,
		scenePath: *scenePath,
		lines:     lines,
		store:     store,
		session:   time.Now().Format("20060102-150405"),
	}
	if err := d.reload(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloadCh := make(chan string, 1)
	var watchPaths []string
	if *scenePath != "" {
		watchPaths = append(watchPaths, *scenePath)
	}
	if *themePath != "" {
		watchPaths = append(watchPaths, *themePath)
	}
	if len(watchPaths) > 0 {
		err := scene.Watch(ctx, watchPaths, func(p string) {
			select {
			case reloadCh <- p:
			default:
			}
		})
		if err != nil {
			return err
		}
	}

	return d.loop(ctx, *fps, *themePath, reloadCh)
}

type demo struct {
	screen    tcell.Screen
	scenePath string
	lines     []cell.Text
	store     *rec.Store
	session   string

	surface *cell.Surface
	stack   *window.Stack
	seq     int
}

// reload rebuilds the surface and window stack from the current terminal
// size and scene definition.
func (d *demo) reload() error {
	w, h := d.screen.Size()
	d.surface = cell.NewSurface(w, h)

	st := window.NewStack()
	if d.scenePath != "" {
		sc, err := scene.Load(d.scenePath)
		if err != nil {
			return err
		}
		placements, err := sc.Build()
		if err != nil {
			return err
		}
		for _, p := range placements {
			st.Push(p.Win, p.Region.Clamp(d.surface.Bounds()))
		}
	} else {
		if err := showcase(st, d.surface.Bounds()); err != nil {
			return err
		}
	}
	d.stack = st
	return nil
}

// showcase builds the stock three-window demo: a large editor-like window
// that expands open, a dimmed secondary window that dissolves its content
// in, and a small always-open status window with a rainbow overlay.
func showcase(st *window.Stack, bounds cell.Rect) error {
	t := theme.Get()
	borderStyle := t.GetStyle("window", "border")
	titleStyle := t.GetStyle("window", "title")
	background := t.GetStyle("window", "background")

	mainRegion := cell.Rect{
		X: bounds.W / 10, Y: bounds.H / 8,
		W: bounds.W * 6 / 10, H: bounds.H * 5 / 8,
	}
	open := fx.NewExpand(mainRegion, 600*time.Millisecond, fx.EaseSmoothstep)
	fade := fx.NewFade(fx.FadeIn, tcell.ColorBlack, 800*time.Millisecond, fx.EaseSmoothstep)
	main, err := window.New().
		Title("glint-demo").
		Border(window.BorderRounded).
		BorderStyle(borderStyle).
		TitleStyle(titleStyle).
		Background(background).
		OpenFx(open).
		ContentFx(fade).
		Build()
	if err != nil {
		return err
	}
	st.Push(main, mainRegion)

	sideRegion := cell.Rect{
		X: bounds.W * 7 / 10, Y: bounds.H / 4,
		W: bounds.W / 4, H: bounds.H / 2,
	}
	sideOpen := fx.NewExpand(sideRegion, 400*time.Millisecond, fx.EaseOutCubic)
	dissolve := fx.NewDissolve(700*time.Millisecond, 7, false, fx.EaseLinear)
	dim := fx.NewTint(tcell.NewRGBColor(8, 8, 16), 0.3)
	side, err := window.New().
		Title("preview").
		Border(window.BorderDouble).
		BorderStyle(borderStyle).
		TitleStyle(titleStyle).
		Background(background).
		OpenFx(sideOpen).
		ParentFx(dim).
		ContentFx(dissolve).
		Build()
	if err != nil {
		return err
	}
	st.Push(side, sideRegion)

	statusRegion := cell.Rect{
		X: bounds.W / 10, Y: bounds.H*3/4 + 1,
		W: bounds.W * 6 / 10, H: 3,
	}
	status, err := window.New().
		Title("status").
		BorderStyle(borderStyle).
		TitleStyle(titleStyle).
		Background(background).
		ContentFx(fx.NewRainbow(0.5, 0.5)).
		Build()
	if err != nil {
		return err
	}
	st.Push(status, statusRegion)
	return nil
}

func (d *demo) loop(ctx context.Context, fps int, themePath string, reloadCh <-chan string) error {
	events := make(chan tcell.Event, 10)
	go func() {
		for {
			ev := d.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case path := <-reloadCh:
			if path == themePath {
				if err := theme.Load(path); err != nil {
					log.Printf("theme reload failed, keeping previous: %v", err)
					continue
				}
			}
			if err := d.reload(); err != nil {
				log.Printf("scene reload failed, keeping previous: %v", err)
			}
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if quitKey(ev) {
					return nil
				}
			case *tcell.EventResize:
				d.screen.Sync()
				if err := d.reload(); err != nil {
					return err
				}
			}
		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			if err := d.frame(dt); err != nil {
				return err
			}
		}
	}
}

func quitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}

// frame composes one frame: backdrop, window chrome, window content, then
// content effects, and finally the blit to the terminal.
func (d *demo) frame(dt time.Duration) error {
	bounds := d.surface.Bounds()
	d.surface.Clear(bounds, tcell.StyleDefault)
	hl.PaintBlock(d.surface, bounds, d.lines, 0)

	d.stack.Tick(dt, d.surface)

	for i, w := range d.stack.Windows() {
		region := d.contentRegion(i, w)
		if region.Empty() {
			continue
		}
		hl.PaintBlock(d.surface, region, d.lines, 0)
	}
	d.stack.TickContent(dt, d.surface)

	if d.store != nil {
		if err := d.store.RecordFrame(d.session, d.seq, d.surface); err != nil {
			return err
		}
		d.seq++
	}

	d.blit()
	d.screen.Show()
	return nil
}

// contentRegion is the interior of a window's current effective region.
func (d *demo) contentRegion(i int, w *window.Window) cell.Rect {
	region, has := w.Region()
	if !has {
		region = d.stack.Regions()[i]
	}
	return region.Clamp(d.surface.Bounds()).Inner(1)
}

func (d *demo) blit() {
	w, h := d.surface.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := d.surface.Get(x, y)
			if c.Ch == 0 {
				continue // wide-rune continuation
			}
			d.screen.SetContent(x, y, c.Ch, nil, c.Style)
		}
	}
}
