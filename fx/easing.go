// Copyright © 2026 Glint contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: fx/easing.go
// Summary: Easing curves shared by the built-in effects.
// Notes: All functions map progress [0,1] to an eased value [0,1].

package fx

// EasingFunc maps linear progress [0,1] to eased progress [0,1].
type EasingFunc func(t float64) float64

// Common easing functions
var (
	// EaseLinear - no easing, constant speed
	EaseLinear EasingFunc = func(t float64) float64 { return t }

	// EaseSmoothstep - smooth S-curve, the default for most transitions
	EaseSmoothstep EasingFunc = func(t float64) float64 {
		return t * t * (3.0 - 2.0*t)
	}

	// EaseSmootherstep - S-curve with zero derivatives at both ends
	EaseSmootherstep EasingFunc = func(t float64) float64 {
		return t * t * t * (t*(t*6.0-15.0) + 10.0)
	}

	// EaseInQuad - quadratic ease-in (slow start, accelerating)
	EaseInQuad EasingFunc = func(t float64) float64 {
		return t * t
	}

	// EaseOutQuad - quadratic ease-out (fast start, decelerating)
	EaseOutQuad EasingFunc = func(t float64) float64 {
		return t * (2.0 - t)
	}

	// EaseInOutQuad - quadratic ease-in-out
	EaseInOutQuad EasingFunc = func(t float64) float64 {
		if t < 0.5 {
			return 2.0 * t * t
		}
		return -1.0 + (4.0-2.0*t)*t
	}

	// EaseInCubic - cubic ease-in
	EaseInCubic EasingFunc = func(t float64) float64 {
		return t * t * t
	}

	// EaseOutCubic - cubic ease-out
	EaseOutCubic EasingFunc = func(t float64) float64 {
		t1 := t - 1.0
		return t1*t1*t1 + 1.0
	}

	// EaseInOutCubic - cubic ease-in-out
	EaseInOutCubic EasingFunc = func(t float64) float64 {
		if t < 0.5 {
			return 4.0 * t * t * t
		}
		t1 := 2.0*t - 2.0
		return 1.0 + t1*t1*t1*0.5
	}
)

// easingByName resolves the catalog entries for effect configuration.
func easingByName(name string) (EasingFunc, bool) {
	switch name {
	case "linear":
		return EaseLinear, true
	case "smoothstep":
		return EaseSmoothstep, true
	case "smootherstep":
		return EaseSmootherstep, true
	case "in-quad":
		return EaseInQuad, true
	case "out-quad":
		return EaseOutQuad, true
	case "in-out-quad":
		return EaseInOutQuad, true
	case "in-cubic":
		return EaseInCubic, true
	case "out-cubic":
		return EaseOutCubic, true
	case "in-out-cubic":
		return EaseInOutCubic, true
	}
	return nil, false
}
