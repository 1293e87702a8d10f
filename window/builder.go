// Copyright © 2026 Glint contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package window

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/glintfx/glint/cell"
	"github.com/glintfx/glint/fx"
)

// Builder assembles a Window. Title, title style, border style and
// background are required; border kind and the three effect slots are
// optional. Build validates the required fields and fails naming the first
// one missing.
type Builder struct {
	title     string
	titleText cell.Text
	border    BorderKind

	titleStyle  tcell.Style
	borderStyle tcell.Style
	background  tcell.Style

	openFx    fx.Effect
	parentFx  fx.Effect
	contentFx fx.Effect

	hasTitle       bool
	hasTitleStyle  bool
	hasBorderStyle bool
	hasBackground  bool
}

// New starts an empty window configuration.
func New() *Builder { return &Builder{} }

// Title sets plain title text, decorated with bracket runes at build time.
func (b *Builder) Title(s string) *Builder {
	b.title = s
	b.titleText = nil
	b.hasTitle = true
	return b
}

// TitleText sets pre-styled title fragments, painted verbatim.
func (b *Builder) TitleText(t cell.Text) *Builder {
	b.titleText = t
	b.hasTitle = true
	return b
}

// TitleStyle sets the style of plain title text.
func (b *Builder) TitleStyle(st tcell.Style) *Builder {
	b.titleStyle = st
	b.hasTitleStyle = true
	return b
}

// BorderStyle sets the style of the frame and title brackets.
func (b *Builder) BorderStyle(st tcell.Style) *Builder {
	b.borderStyle = st
	b.hasBorderStyle = true
	return b
}

// Border picks the frame rune set. Absent, the plain single-line set is
// used.
func (b *Builder) Border(k BorderKind) *Builder {
	b.border = k
	return b
}

// Background sets the style the window interior is cleared with.
func (b *Builder) Background(st tcell.Style) *Builder {
	b.background = st
	b.hasBackground = true
	return b
}

// OpenFx binds the open transition slot. Its lifecycle drives the window's
// done state.
func (b *Builder) OpenFx(e fx.Effect) *Builder {
	b.openFx = e
	return b
}

// ParentFx binds the backdrop slot, advanced over the full assigned region
// each tick and evicted once done.
func (b *Builder) ParentFx(e fx.Effect) *Builder {
	b.parentFx = e
	return b
}

// ContentFx binds the interior slot, advanced only through TickContent.
func (b *Builder) ContentFx(e fx.Effect) *Builder {
	b.contentFx = e
	return b
}

// Build validates the configuration and produces the window. Effects are
// cloned in, so the builder can be reused as a template.
func (b *Builder) Build() (*Window, error) {
	switch {
	case !b.hasTitle:
		return nil, fmt.Errorf("window: build: title not set")
	case !b.hasBorderStyle:
		return nil, fmt.Errorf("window: build: border style not set")
	case !b.hasTitleStyle:
		return nil, fmt.Errorf("window: build: title style not set")
	case !b.hasBackground:
		return nil, fmt.Errorf("window: build: background not set")
	}

	w := &Window{
		titleStyle:  b.titleStyle,
		borderStyle: b.borderStyle,
		background:  b.background,
		border:      b.border,
	}
	if b.titleText != nil {
		w.title = append(cell.Text(nil), b.titleText...)
	} else {
		w.title = TitleBar(b.title, b.borderStyle, b.titleStyle)
	}
	if b.openFx != nil {
		w.openFx = b.openFx.Clone()
	}
	if b.parentFx != nil {
		w.parentFx = b.parentFx.Clone()
	}
	if b.contentFx != nil {
		w.contentFx = b.contentFx.Clone()
	}
	return w, nil
}

// MustBuild is Build for configurations the caller has already validated;
// it panics on error.
func (b *Builder) MustBuild() *Window {
	w, err := b.Build()
	if err != nil {
		panic(err)
	}
	return w
}

// Effect builds the window and hands it back as a generic effect, the hook
// for nesting a window inside another compositor.
func (b *Builder) Effect() (fx.Effect, error) {
	w, err := b.Build()
	if err != nil {
		return nil, err
	}
	return w, nil
}
