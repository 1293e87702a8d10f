// Copyright © 2026 Glint contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: scene/scene.go
// Summary: YAML scene definitions resolved into built windows.
// Usage: glint-demo -scene loads a scene file instead of the built-in show.

// Package scene loads declarative window descriptions from YAML and builds
// them into compositor windows, resolving styles through the theme store
// and effects through the fx registry.
package scene

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"gopkg.in/yaml.v3"

	"github.com/glintfx/glint/cell"
	"github.com/glintfx/glint/fx"
	"github.com/glintfx/glint/theme"
	"github.com/glintfx/glint/window"
)

var debugLog = log.New(io.Discard, "scene: ", log.LstdFlags)

// SetVerbose routes scene debug chatter to the standard logger.
func SetVerbose(on bool) {
	if on {
		debugLog.SetOutput(log.Writer())
	} else {
		debugLog.SetOutput(io.Discard)
	}
}

// StyleDef describes one style as color names plus attribute flags. Empty
// color fields fall back to the theme's window section.
type StyleDef struct {
	FG        string `yaml:"fg"`
	BG        string `yaml:"bg"`
	Bold      bool   `yaml:"bold"`
	Italic    bool   `yaml:"italic"`
	Underline bool   `yaml:"underline"`
}

// EffectDef names a registered effect and its configuration.
type EffectDef struct {
	ID   string         `yaml:"id"`
	With map[string]any `yaml:"with"`
}

// WindowDef describes one window: chrome, geometry and up to three effect
// slots.
type WindowDef struct {
	Title       string     `yaml:"title"`
	Border      string     `yaml:"border"`
	Region      [4]int     `yaml:"region"` // x, y, w, h
	TitleStyle  StyleDef   `yaml:"title_style"`
	BorderStyle StyleDef   `yaml:"border_style"`
	Background  StyleDef   `yaml:"background"`
	Open        *EffectDef `yaml:"open"`
	Parent      *EffectDef `yaml:"parent"`
	Content     *EffectDef `yaml:"content"`
}

// Scene is a parsed scene file.
type Scene struct {
	Windows []WindowDef `yaml:"windows"`
}

// Placement pairs a built window with its target region.
type Placement struct {
	Win    *window.Window
	Region cell.Rect
}

// Parse decodes a scene document.
func Parse(data []byte) (*Scene, error) {
	var sc Scene
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("scene: parse: %w", err)
	}
	return &sc, nil
}

// Load reads and decodes a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: read %s: %w", path, err)
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scene: %s: %w", path, err)
	}
	return sc, nil
}

// Build resolves every window definition into a placed window. Unknown
// border names and effect IDs are errors; style lookups never fail, they
// fall back to the theme.
func (sc *Scene) Build() ([]Placement, error) {
	placements := make([]Placement, 0, len(sc.Windows))
	for i, def := range sc.Windows {
		p, err := buildWindow(def)
		if err != nil {
			return nil, fmt.Errorf("scene: window %d (%q): %w", i, def.Title, err)
		}
		placements = append(placements, p)
	}
	debugLog.Printf("built %d windows", len(placements))
	return placements, nil
}

func buildWindow(def WindowDef) (Placement, error) {
	region := cell.Rect{X: def.Region[0], Y: def.Region[1], W: def.Region[2], H: def.Region[3]}

	kind, err := borderKind(def.Border)
	if err != nil {
		return Placement{}, err
	}

	b := window.New().
		Title(def.Title).
		Border(kind).
		TitleStyle(resolveStyle(def.TitleStyle, "title")).
		BorderStyle(resolveStyle(def.BorderStyle, "border")).
		Background(resolveStyle(def.Background, "background"))

	if def.Open != nil {
		e, err := buildEffect(def.Open)
		if err != nil {
			return Placement{}, fmt.Errorf("open slot: %w", err)
		}
		// Geometry transitions animate toward the window's region.
		e.SetRegion(region)
		b.OpenFx(e)
	}
	if def.Parent != nil {
		e, err := buildEffect(def.Parent)
		if err != nil {
			return Placement{}, fmt.Errorf("parent slot: %w", err)
		}
		b.ParentFx(e)
	}
	if def.Content != nil {
		e, err := buildEffect(def.Content)
		if err != nil {
			return Placement{}, fmt.Errorf("content slot: %w", err)
		}
		b.ContentFx(e)
	}

	w, err := b.Build()
	if err != nil {
		return Placement{}, err
	}
	return Placement{Win: w, Region: region}, nil
}

func buildEffect(def *EffectDef) (fx.Effect, error) {
	factory, ok := fx.Lookup(def.ID)
	if !ok {
		return nil, fmt.Errorf("unknown effect %q", def.ID)
	}
	e, err := factory(fx.Config(def.With))
	if err != nil {
		return nil, fmt.Errorf("effect %q: %w", def.ID, err)
	}
	return e, nil
}

func borderKind(name string) (window.BorderKind, error) {
	switch name {
	case "", "plain":
		return window.BorderPlain, nil
	case "rounded":
		return window.BorderRounded, nil
	case "double":
		return window.BorderDouble, nil
	case "thick":
		return window.BorderThick, nil
	}
	return 0, fmt.Errorf("unknown border kind %q", name)
}

// resolveStyle builds a style from a definition, falling back to the
// theme's window section for colors left blank.
func resolveStyle(def StyleDef, themePrefix string) tcell.Style {
	t := theme.Get()
	base := t.GetStyle("window", themePrefix)
	fg, bg, _ := base.Decompose()

	if def.FG != "" {
		fg = parseColor(def.FG, fg)
	}
	if def.BG != "" {
		bg = parseColor(def.BG, bg)
	}
	st := tcell.StyleDefault.Foreground(fg).Background(bg)
	if def.Bold {
		st = st.Bold(true)
	}
	if def.Italic {
		st = st.Italic(true)
	}
	if def.Underline {
		st = st.Underline(true)
	}
	return st
}

func parseColor(value string, fallback tcell.Color) tcell.Color {
	if len(value) == 7 && value[0] == '#' {
		return tcell.GetColor(value)
	}
	if c := tcell.GetColor(value); c != tcell.ColorDefault {
		return c
	}
	return fallback
}
