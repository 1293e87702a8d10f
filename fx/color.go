// Copyright © 2026 Glint contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: fx/color.go
// Summary: Color parsing and blending helpers shared by the built-in effects.

package fx

import (
	"math"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// parseHexColor parses a "#rrggbb" string into a tcell color. It returns
// ColorDefault and false when the input is not a 7-character hex form.
func parseHexColor(value string) (tcell.Color, bool) {
	if len(value) == 7 && value[0] == '#' {
		if v, err := strconv.ParseInt(value[1:], 16, 32); err == nil {
			r := int32((v >> 16) & 0xFF)
			g := int32((v >> 8) & 0xFF)
			b := int32(v & 0xFF)
			return tcell.NewRGBColor(r, g, b), true
		}
	}
	return tcell.ColorDefault, false
}

// blendColor mixes overlay into base by intensity using linear RGB
// interpolation. Invalid colors pass through untouched.
func blendColor(base, overlay tcell.Color, intensity float64) tcell.Color {
	if !overlay.Valid() || intensity <= 0 {
		return base
	}
	if !base.Valid() {
		return overlay
	}
	if intensity > 1 {
		intensity = 1
	}
	br, bg, bb := base.RGB()
	or, og, ob := overlay.RGB()
	blend := func(bc, oc int32) int32 {
		return int32(float64(bc)*(1-intensity) + float64(oc)*intensity)
	}
	return tcell.NewRGBColor(blend(br, or), blend(bg, og), blend(bb, ob))
}

// blendColorHcl mixes overlay into base through the Hcl color space, which
// keeps midpoints perceptually between the endpoints instead of washing
// through gray.
func blendColorHcl(base, overlay tcell.Color, intensity float64) tcell.Color {
	if !overlay.Valid() || intensity <= 0 {
		return base
	}
	if !base.Valid() {
		return overlay
	}
	if intensity > 1 {
		intensity = 1
	}
	br, bg, bb := base.RGB()
	or, og, ob := overlay.RGB()
	from := colorful.Color{R: float64(br) / 255, G: float64(bg) / 255, B: float64(bb) / 255}
	to := colorful.Color{R: float64(or) / 255, G: float64(og) / 255, B: float64(ob) / 255}
	mixed := from.BlendHcl(to, intensity).Clamped()
	return tcell.NewRGBColor(
		int32(mixed.R*255+0.5),
		int32(mixed.G*255+0.5),
		int32(mixed.B*255+0.5),
	)
}

// hsvToRGB converts a hue angle in radians (saturation and value in [0,1])
// to a tcell color.
func hsvToRGB(h, s, v float64) tcell.Color {
	h = math.Mod(h, 2*math.Pi) / (2 * math.Pi) * 360

	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return tcell.NewRGBColor(int32((r+m)*255), int32((g+m)*255), int32((b+m)*255))
}
