// Copyright © 2026 Glint contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: hl/hl.go
// Summary: Syntax highlighting of source text into styled cell lines.
// Usage: The demo paints highlighted source as window content and backdrop.

// Package hl turns source text into styled cell lines via Chroma, with
// go-enry filling in when the filename alone cannot pick a lexer.
package hl

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/gdamore/tcell/v2"
	"github.com/go-enry/go-enry/v2"

	"github.com/glintfx/glint/cell"
)

const (
	defaultStyleName = "catppuccin-mocha"
	tabWidth         = 4
)

// Highlight tokenizes src and returns one styled line per source line.
// Lexer choice tries the filename first, then go-enry content detection,
// then Chroma's own analyser, then the fallback lexer. Unknown style names
// resolve to Chroma's fallback style.
func Highlight(src []byte, filename, styleName string) ([]cell.Text, error) {
	text := string(src)
	lexer := pickLexer(filename, src, text)
	lexer = chroma.Coalesce(lexer)

	if styleName == "" {
		styleName = defaultStyleName
	}
	style := styles.Get(styleName)

	tokens, err := chroma.Tokenise(lexer, nil, text)
	if err != nil {
		return nil, fmt.Errorf("hl: tokenise: %w", err)
	}

	baseColour := style.Get(chroma.Text).Colour
	lines := []cell.Text{nil}
	for _, tok := range tokens {
		if tok.Type == chroma.EOFType {
			break
		}
		st := tokenStyle(style.Get(tok.Type), baseColour)
		value := strings.ReplaceAll(tok.Value, "\t", strings.Repeat(" ", tabWidth))
		parts := strings.Split(value, "\n")
		for i, part := range parts {
			if i > 0 {
				lines = append(lines, nil)
			}
			if part == "" {
				continue
			}
			last := len(lines) - 1
			lines[last] = append(lines[last], cell.Styled(part, st))
		}
	}
	// Tokenise always leaves a trailing newline's empty tail behind.
	if n := len(lines); n > 1 && len(lines[n-1]) == 0 {
		lines = lines[:n-1]
	}
	return lines, nil
}

func pickLexer(filename string, src []byte, text string) chroma.Lexer {
	if filename != "" {
		if l := lexers.Match(filename); l != nil {
			return l
		}
	}
	if lang := enry.GetLanguage(filename, src); lang != "" && lang != "Text" {
		if l := lexers.Get(lang); l != nil {
			return l
		}
	}
	if l := lexers.Analyse(text); l != nil {
		return l
	}
	return lexers.Fallback
}

// tokenStyle maps a Chroma style entry onto a tcell style. Colors matching
// the style's base text color keep the default foreground so themed
// surfaces show through.
func tokenStyle(entry chroma.StyleEntry, baseColour chroma.Colour) tcell.Style {
	st := tcell.StyleDefault
	if entry.Colour.IsSet() && entry.Colour != baseColour {
		st = st.Foreground(tcell.NewRGBColor(
			int32(entry.Colour.Red()),
			int32(entry.Colour.Green()),
			int32(entry.Colour.Blue()),
		))
	}
	if entry.Bold == chroma.Yes {
		st = st.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		st = st.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		st = st.Underline(true)
	}
	return st
}

// PaintBlock draws lines into r starting at line offset scroll, clipping
// each line to the region width. Rows past the last line stay untouched.
func PaintBlock(s *cell.Surface, r cell.Rect, lines []cell.Text, scroll int) {
	if scroll < 0 {
		scroll = 0
	}
	r = r.Intersect(s.Bounds())
	for row := 0; row < r.H; row++ {
		idx := scroll + row
		if idx >= len(lines) {
			return
		}
		s.DrawText(r.X, r.Y+row, lines[idx].Truncate(r.W))
	}
}
