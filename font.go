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

package fontmerge

import (
	"strconv"

	"seehuhn.de/go/postscript/funit"
)

// FontID identifies one font definition within a batch of documents.
// The zero value identifies the first font of the first document.
type FontID struct {
	// Doc is the index of the source document within the batch.
	Doc int

	// Num is the font identifier used within the source document.
	Num int
}

func (id FontID) String() string {
	return "doc" + strconv.Itoa(id.Doc) + "/font" + strconv.Itoa(id.Num)
}

// Metrics holds the vertical metrics of a font, in font design units.
// Scale normalizes source-specific unit systems: multiplying a design-unit
// coordinate by Scale yields thousandths of an em.
type Metrics struct {
	Ascent  funit.Int16
	Descent funit.Int16 // negative for glyphs below the baseline
	Scale   float64
}

// Glyph is one entry of a font's character table: a character code together
// with the shape it selects.
type Glyph struct {
	Char rune
	Data *GlyphData
}

// Font is one font as extracted from one source document.
//
// All fields except Name and FontFile are fixed when the font is created.
// Name and FontFile are overwritten once, after consolidation, with the
// shared name and font file reference of the group the font was merged
// into.  The glyph sequence always keeps the font's own code assignments;
// consolidation only unifies the shared resource identity.
type Font struct {
	ID       FontID
	Name     string
	Metrics  Metrics
	Glyphs   []Glyph
	FontFile string
}

// Glyph returns the shape assigned to the given character code, or nil if
// the font has no glyph for the code.
func (f *Font) Glyph(c rune) *GlyphData {
	for _, g := range f.Glyphs {
		if g.Char == c {
			return g.Data
		}
	}
	return nil
}

// RawGlyph is one glyph as delivered by document extraction, before
// character codes have been resolved.
type RawGlyph struct {
	// Char is the character code the source document assigned to the
	// glyph.  It is kept where possible and replaced with a private-use
	// code otherwise.
	Char rune

	// Whitespace marks glyphs which only advance the pen.  They are
	// canonicalized to the space character regardless of Char and Data.
	Whitespace bool

	Data *GlyphData
}

// RawFont is one font definition as delivered by document extraction,
// before character codes have been resolved.
type RawFont struct {
	// Num is the font identifier used within the source document.
	Num int

	Name    string
	Metrics Metrics
	Glyphs  []RawGlyph

	// HasKerning marks fonts which carry kerning data.  Such fonts are
	// not supported and abort the batch.
	HasKerning bool
}
