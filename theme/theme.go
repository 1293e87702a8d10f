// Copyright © 2026 Glint contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: theme/theme.go
// Summary: Styling document with typed access helpers.

package theme

import (
	"encoding/json"
	"strconv"

	"github.com/gdamore/tcell/v2"
)

// Theme stores styling sections as JSON-compatible data.
type Theme map[string]interface{}

// Section stores key/value pairs for one styling section.
type Section map[string]interface{}

// Section returns the named section or nil if missing.
func (t Theme) Section(sectionName string) Section {
	if t == nil {
		return nil
	}
	if raw, ok := t[sectionName]; ok {
		switch v := raw.(type) {
		case Section:
			return v
		case map[string]interface{}:
			return Section(v)
		}
	}
	return nil
}

// RegisterDefaults ensures a section has defaults without overwriting
// existing keys.
func (t Theme) RegisterDefaults(sectionName string, defaults Section) {
	if t == nil || defaults == nil {
		return
	}
	section := t.Section(sectionName)
	if section == nil {
		section = make(Section)
		t[sectionName] = section
	}
	for key, value := range defaults {
		if _, ok := section[key]; !ok {
			section[key] = value
		}
	}
}

// GetString retrieves a string value from the theme.
func (t Theme) GetString(sectionName, key, defaultValue string) string {
	section := t.Section(sectionName)
	if section == nil {
		return defaultValue
	}
	if val, ok := section[key]; ok {
		if strVal, ok := val.(string); ok {
			return strVal
		}
	}
	return defaultValue
}

// GetFloat retrieves a float value from the theme.
func (t Theme) GetFloat(sectionName, key string, defaultValue float64) float64 {
	section := t.Section(sectionName)
	if section == nil {
		return defaultValue
	}
	if val, ok := section[key]; ok {
		switch v := val.(type) {
		case float64:
			return v
		case float32:
			return float64(v)
		case int:
			return float64(v)
		case json.Number:
			if parsed, err := v.Float64(); err == nil {
				return parsed
			}
		case string:
			if parsed, err := strconv.ParseFloat(v, 64); err == nil {
				return parsed
			}
		}
	}
	return defaultValue
}

// GetInt retrieves an integer value from the theme.
func (t Theme) GetInt(sectionName, key string, defaultValue int) int {
	section := t.Section(sectionName)
	if section == nil {
		return defaultValue
	}
	if val, ok := section[key]; ok {
		switch v := val.(type) {
		case int:
			return v
		case float64:
			return int(v)
		case float32:
			return int(v)
		case json.Number:
			if parsed, err := v.Int64(); err == nil {
				return int(parsed)
			}
		case string:
			if parsed, err := strconv.Atoi(v); err == nil {
				return parsed
			}
		}
	}
	return defaultValue
}

// GetBool retrieves a boolean value from the theme.
func (t Theme) GetBool(sectionName, key string, defaultValue bool) bool {
	section := t.Section(sectionName)
	if section == nil {
		return defaultValue
	}
	if val, ok := section[key]; ok {
		switch v := val.(type) {
		case bool:
			return v
		case string:
			if parsed, err := strconv.ParseBool(v); err == nil {
				return parsed
			}
		case float64:
			return v != 0
		case int:
			return v != 0
		}
	}
	return defaultValue
}

// GetColor retrieves a color value. Hex "#rrggbb" forms and W3C color names
// are accepted; anything else yields the default.
func (t Theme) GetColor(sectionName, key string, defaultValue tcell.Color) tcell.Color {
	raw := t.GetString(sectionName, key, "")
	if raw == "" {
		return defaultValue
	}
	if color, ok := parseHexColor(raw); ok {
		return color
	}
	if color := tcell.GetColor(raw); color != tcell.ColorDefault {
		return color
	}
	return defaultValue
}

// GetStyle assembles a style from a section's prefixed keys: <prefix>_fg,
// <prefix>_bg, <prefix>_bold, <prefix>_italic and <prefix>_underline.
func (t Theme) GetStyle(sectionName, prefix string) tcell.Style {
	st := tcell.StyleDefault.
		Foreground(t.GetColor(sectionName, prefix+"_fg", tcell.ColorDefault)).
		Background(t.GetColor(sectionName, prefix+"_bg", tcell.ColorDefault))
	if t.GetBool(sectionName, prefix+"_bold", false) {
		st = st.Bold(true)
	}
	if t.GetBool(sectionName, prefix+"_italic", false) {
		st = st.Italic(true)
	}
	if t.GetBool(sectionName, prefix+"_underline", false) {
		st = st.Underline(true)
	}
	return st
}

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
