// seehuhn.de/go/fontmerge - consolidation of subsetted fonts across documents
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package testfont provides synthetic font definitions for tests.
package testfont

import "seehuhn.de/go/fontmerge"

// Metrics are the metrics shared by all test fonts (1024 design units per
// em).
var Metrics = fontmerge.Metrics{
	Ascent:  800,
	Descent: -224,
	Scale:   1000.0 / 1024,
}

// Square returns a square glyph shape with the given advance width.
func Square(w float64) *fontmerge.GlyphData {
	d := &fontmerge.GlyphData{Width: w}
	d.MoveTo(100, 0)
	d.LineTo(500, 0)
	d.LineTo(500, 600)
	d.LineTo(100, 600)
	return d
}

// Wedge returns a triangular glyph shape with the given advance width.
func Wedge(w float64) *fontmerge.GlyphData {
	d := &fontmerge.GlyphData{Width: w}
	d.MoveTo(100, 0)
	d.LineTo(500, 0)
	d.LineTo(300, 700)
	return d
}

// Blob returns a curved glyph shape with the given advance width.
func Blob(w float64) *fontmerge.GlyphData {
	d := &fontmerge.GlyphData{Width: w}
	d.MoveTo(100, 300)
	d.CurveTo(100, 500, 300, 650, 500, 500)
	d.CurveTo(600, 350, 400, 50, 100, 300)
	return d
}

// Blank returns a glyph with the given advance width and no outline.
func Blank(w float64) *fontmerge.GlyphData {
	return &fontmerge.GlyphData{Width: w}
}

// G builds a raw glyph entry.
func G(c rune, data *fontmerge.GlyphData) fontmerge.RawGlyph {
	return fontmerge.RawGlyph{Char: c, Data: data}
}

// Space builds a raw whitespace glyph entry.
func Space() fontmerge.RawGlyph {
	return fontmerge.RawGlyph{Char: ' ', Whitespace: true, Data: Blank(400)}
}

// New builds a raw font definition with the shared test metrics.
func New(num int, name string, glyphs ...fontmerge.RawGlyph) *fontmerge.RawFont {
	return &fontmerge.RawFont{
		Num:     num,
		Name:    name,
		Metrics: Metrics,
		Glyphs:  glyphs,
	}
}
