// Copyright © 2026 Glint contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package fx

import (
	"github.com/gdamore/tcell/v2"

	"github.com/glintfx/glint/cell"
)

var defaultFadeColor = tcell.NewRGBColor(0, 0, 0)

func init() {
	Register("fade-in", func(cfg Config) (Effect, error) {
		color := parseColorOrDefault(cfg, "color", defaultFadeColor)
		duration := parseDurationOrDefault(cfg, "duration_ms", 400)
		ease := parseEasingOrDefault(cfg, "easing", EaseSmoothstep)
		fade := NewFade(FadeIn, color, duration, ease)
		fade.Perceptual(parseBoolOrDefault(cfg, "perceptual", false))
		return fade, nil
	})
	Register("fade-out", func(cfg Config) (Effect, error) {
		color := parseColorOrDefault(cfg, "color", defaultFadeColor)
		duration := parseDurationOrDefault(cfg, "duration_ms", 400)
		ease := parseEasingOrDefault(cfg, "easing", EaseSmoothstep)
		fade := NewFade(FadeOut, color, duration, ease)
		fade.Perceptual(parseBoolOrDefault(cfg, "perceptual", false))
		return fade, nil
	})
	Register("dissolve", func(cfg Config) (Effect, error) {
		duration := parseDurationOrDefault(cfg, "duration_ms", 500)
		seed := parseIntOrDefault(cfg, "seed", 0)
		reverse := parseBoolOrDefault(cfg, "reverse", false)
		ease := parseEasingOrDefault(cfg, "easing", EaseLinear)
		return NewDissolve(duration, seed, reverse, ease), nil
	})
	Register("expand", func(cfg Config) (Effect, error) {
		duration := parseDurationOrDefault(cfg, "duration_ms", 350)
		ease := parseEasingOrDefault(cfg, "easing", EaseSmoothstep)
		// Target geometry arrives later via SetRegion once the window's
		// region is known.
		return NewExpand(cell.Rect{}, duration, ease), nil
	})
	Register("rainbow", func(cfg Config) (Effect, error) {
		intensity := parseFloatOrDefault(cfg, "intensity", 0.6)
		speed := parseFloatOrDefault(cfg, "speed", 0)
		return NewRainbow(intensity, speed), nil
	})
	Register("tint", func(cfg Config) (Effect, error) {
		color := parseColorOrDefault(cfg, "color", tcell.NewRGBColor(16, 16, 24))
		intensity := parseFloatOrDefault(cfg, "intensity", 0.35)
		return NewTint(color, intensity), nil
	})
}
