// Copyright © 2026 Glint contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: window/window.go
// Summary: The layered window compositor: three effect slots plus chrome.

// Package window composes up to three independently-timed effects — a
// backdrop effect over the parent region, an open transition that owns the
// window's geometry, and a content effect — into a single drawable entity
// that paints its own border, title and background each tick.
package window

import (
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/glintfx/glint/cell"
	"github.com/glintfx/glint/fx"
)

// ErrSelectorUnsupported is returned by ApplySelector. A window composites
// whole regions; scoping its slot effects to individual cells has no defined
// propagation rule, so attempts are rejected rather than half-applied.
var ErrSelectorUnsupported = errors.New("window: cell selection not supported")

// Window is an immutable-after-build descriptor plus three optional effect
// slots. Styling and title never change after construction; only the slots
// and their geometry evolve across ticks.
type Window struct {
	title       cell.Text
	titleStyle  tcell.Style
	borderStyle tcell.Style
	background  tcell.Style
	border      BorderKind

	openFx    fx.Effect // governs open/close geometry, drives Done
	parentFx  fx.Effect // backdrop pass over the full region, evicted when done
	contentFx fx.Effect // interior pass, advanced only via TickContent
}

// Tick runs one composition step and returns the open transition's unused
// time. Steps run in a fixed order:
//
//  1. the parent effect is advanced over the full region and its slot is
//     emptied the moment it reports done;
//  2. the open effect is advanced only while running, producing the tick's
//     leftover; with no running open effect the full quantum is handed back
//     so an outer driver can spend it elsewhere;
//  3. the effective region is the open effect's reported region clamped to
//     the surface bounds, else the caller's region;
//  4. a content effect present is re-bound to the effective region, but not
//     advanced here;
//  5. chrome (background, border, title) is painted over the effective
//     region.
func (w *Window) Tick(elapsed time.Duration, s *cell.Surface, region cell.Rect) (leftover time.Duration, ok bool) {
	if w.parentFx != nil {
		w.parentFx.Process(elapsed, s, region)
		if w.parentFx.Done() {
			w.parentFx = nil
		}
	}

	leftover, ok = elapsed, true
	if w.openFx != nil && w.openFx.Running() {
		leftover, ok = w.openFx.Process(elapsed, s, region)
	}

	area := region
	if w.openFx != nil {
		if r, has := w.openFx.Region(); has {
			area = r.Clamp(s.Bounds())
		}
	}

	if w.contentFx != nil {
		w.contentFx.SetRegion(area)
	}

	w.paintChrome(s, area)
	return leftover, ok
}

// TickContent advances the content effect when one is set and running. It
// is deliberately separate from Tick so callers can freeze content animation
// independently of the open transition; it never paints chrome and never
// changes the window's done state.
func (w *Window) TickContent(elapsed time.Duration, s *cell.Surface, region cell.Rect) {
	if w.contentFx != nil && w.contentFx.Running() {
		w.contentFx.Process(elapsed, s, region)
	}
}

// Done reports whether the open transition has finished. A window built
// without one is done from birth; parent and content effects never factor
// in.
func (w *Window) Done() bool {
	return w.openFx == nil || w.openFx.Done()
}

// Running reports the inverse of Done, letting a window nest as an effect.
func (w *Window) Running() bool { return !w.Done() }

// SetRegion reassigns the window's overall target region, forwarding it to
// the parent slot only. The open and content slots receive geometry solely
// through Tick.
func (w *Window) SetRegion(r cell.Rect) {
	if w.parentFx != nil {
		w.parentFx.SetRegion(r)
	}
}

// Region reports the open transition's geometry opinion, when it has one.
func (w *Window) Region() (cell.Rect, bool) {
	if w.openFx != nil {
		return w.openFx.Region()
	}
	return cell.Rect{}, false
}

// Process implements fx.Effect by delegating to Tick, so a built window can
// be dropped into another compositor's slot.
func (w *Window) Process(elapsed time.Duration, s *cell.Surface, region cell.Rect) (time.Duration, bool) {
	return w.Tick(elapsed, s, region)
}

// Clone returns a deep copy: every held effect is cloned, so the copy
// animates independently of the original.
func (w *Window) Clone() fx.Effect {
	c := *w
	c.title = append(cell.Text(nil), w.title...)
	if w.openFx != nil {
		c.openFx = w.openFx.Clone()
	}
	if w.parentFx != nil {
		c.parentFx = w.parentFx.Clone()
	}
	if w.contentFx != nil {
		c.contentFx = w.contentFx.Clone()
	}
	return &c
}

// ApplySelector rejects cell-level filtering outright.
func (w *Window) ApplySelector(fx.CellSelector) error {
	return ErrSelectorUnsupported
}

// Title returns the window's title without styling.
func (w *Window) Title() string { return w.title.String() }
