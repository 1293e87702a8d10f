// Copyright © 2026 Glint contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: fx/config.go
// Summary: Configuration map and parse helpers for effect factories.

package fx

import (
	"strconv"
	"time"

	"github.com/gdamore/tcell/v2"
)

// Config carries the loosely-typed options an effect factory reads. Values
// typically arrive from decoded YAML or JSON, so numbers may be any of the
// types those decoders produce.
type Config map[string]interface{}

func parseColorOrDefault(cfg Config, key string, fallback tcell.Color) tcell.Color {
	if cfg == nil {
		return fallback
	}
	if raw, ok := cfg[key]; ok {
		if str, ok := raw.(string); ok {
			if color, ok := parseHexColor(str); ok {
				return color
			}
			if named := tcell.GetColor(str); named != tcell.ColorDefault {
				return named
			}
		}
	}
	return fallback
}

func parseFloatOrDefault(cfg Config, key string, fallback float64) float64 {
	if cfg == nil {
		return fallback
	}
	if raw, ok := cfg[key]; ok {
		switch v := raw.(type) {
		case float64:
			return v
		case float32:
			return float64(v)
		case int:
			return float64(v)
		case int64:
			return float64(v)
		case string:
			if parsed, err := strconv.ParseFloat(v, 64); err == nil {
				return parsed
			}
		}
	}
	return fallback
}

func parseIntOrDefault(cfg Config, key string, fallback int) int {
	if cfg == nil {
		return fallback
	}
	if raw, ok := cfg[key]; ok {
		switch v := raw.(type) {
		case int:
			return v
		case int64:
			return int(v)
		case float64:
			return int(v)
		case string:
			if parsed, err := strconv.Atoi(v); err == nil {
				return parsed
			}
		}
	}
	return fallback
}

func parseBoolOrDefault(cfg Config, key string, fallback bool) bool {
	if cfg == nil {
		return fallback
	}
	if raw, ok := cfg[key]; ok {
		switch v := raw.(type) {
		case bool:
			return v
		case string:
			if parsed, err := strconv.ParseBool(v); err == nil {
				return parsed
			}
		}
	}
	return fallback
}

func parseDurationOrDefault(cfg Config, key string, fallbackMS int64) time.Duration {
	if cfg == nil {
		return time.Duration(fallbackMS) * time.Millisecond
	}
	if raw, ok := cfg[key]; ok {
		switch v := raw.(type) {
		case int:
			return time.Duration(v) * time.Millisecond
		case int64:
			return time.Duration(v) * time.Millisecond
		case float64:
			return time.Duration(v) * time.Millisecond
		case string:
			if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
				return time.Duration(parsed) * time.Millisecond
			}
		}
	}
	return time.Duration(fallbackMS) * time.Millisecond
}

func parseEasingOrDefault(cfg Config, key string, fallback EasingFunc) EasingFunc {
	if cfg == nil {
		return fallback
	}
	if raw, ok := cfg[key]; ok {
		if name, ok := raw.(string); ok {
			if ease, ok := easingByName(name); ok {
				return ease
			}
		}
	}
	return fallback
}
