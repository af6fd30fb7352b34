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

import "unicode"

// firstPrivateUse is the first code of the Unicode private use area.
// Glyphs which cannot keep their original character code are moved there.
const firstPrivateUse rune = 0xE000

// An Assigner resolves character codes for all glyphs of a batch.
//
// Some state spans the whole batch: the next free private-use code, and a
// table mapping glyph shapes to previously allocated codes.  The table lets
// identical shapes from different fonts land on the same code, which is
// what makes the later merging effective.  Glyphs must therefore be
// processed in a fixed order (ascending document index, then font order
// within the document, then glyph order within the font); [Batch] takes
// care of this.
type Assigner struct {
	next    rune
	byShape map[string]rune
}

// NewAssigner returns an assigner for a new batch.
func NewAssigner() *Assigner {
	return &Assigner{
		next:    firstPrivateUse,
		byShape: make(map[string]rune),
	}
}

// AssignCodes resolves the character codes for one font, in glyph order.
// No two glyphs of the result share a character code.
func (a *Assigner) AssignCodes(raw []RawGlyph) []Glyph {
	used := make(map[rune]bool, len(raw))
	glyphs := make([]Glyph, 0, len(raw))
	for _, g := range raw {
		if g.Whitespace {
			if used[' '] {
				// All whitespace glyphs render the same, one
				// entry is enough.
				continue
			}
			used[' '] = true
			glyphs = append(glyphs, Glyph{
				Char: ' ',
				Data: &GlyphData{Width: SpaceWidth},
			})
			continue
		}

		c := g.Char
		if rejectCode(c) || used[c] {
			c = a.allocate(g.Data, used)
		}
		used[c] = true
		glyphs = append(glyphs, Glyph{Char: c, Data: g.Data})
	}
	return glyphs
}

// rejectCode reports whether an originally-coded character must be replaced
// with a private-use code.
func rejectCode(c rune) bool {
	switch {
	case unicode.IsSpace(c):
		// The space code is reserved for canonical whitespace glyphs.
		return true
	case c <= 0x001F:
		// control codes
		return true
	case c >= 0xFFF0 && c <= 0xFFFF:
		// specials
		return true
	case c >= 0x1D00 && c <= 0x1DFF:
		// Font tools are known to mishandle this block.
		return true
	}
	return false
}

// allocate returns a private-use code for the given shape.  A code
// previously allocated for an equal shape is reused unless the current font
// already uses it; otherwise a fresh code is taken from the batch-wide
// counter and recorded for future reuse.
func (a *Assigner) allocate(data *GlyphData, used map[rune]bool) rune {
	k := data.key()
	if c, ok := a.byShape[k]; ok && !used[c] {
		return c
	}

	// Fonts may legitimately use private-use codes of their own, so the
	// counter skips codes taken by the current font.
	for used[a.next] {
		a.next++
	}
	c := a.next
	a.next++
	a.byShape[k] = c
	return c
}
