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
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// A Group is a consolidation unit: one or more fonts which have been judged
// compatible and will share a single output font resource.
//
// A group starts out wrapping a single font and only ever grows, by
// absorbing the members of another group.  Within a group, no character is
// ever mapped to two different shapes.
type Group struct {
	// Name is the name of the group.  Initially this is the original
	// name of the first member; the namer replaces it with the final,
	// unique resource name.
	Name string

	// Metrics are the metrics of the first member.
	Metrics Metrics

	// FontFile is the reference to the built font file, set during
	// consolidation.
	FontFile string

	members []*Font
	chars   map[rune]*GlyphData
}

func newGroup(f *Font) *Group {
	chars := make(map[rune]*GlyphData, len(f.Glyphs))
	for _, g := range f.Glyphs {
		chars[g.Char] = g.Data
	}
	return &Group{
		Name:    f.Name,
		Metrics: f.Metrics,
		members: []*Font{f},
		chars:   chars,
	}
}

// Members returns the fonts merged into the group, in the order they were
// absorbed.  The returned slice is owned by the group.
func (g *Group) Members() []*Font {
	return g.members
}

// Glyphs returns the aggregated character table of the group, sorted by
// character code.
func (g *Group) Glyphs() []Glyph {
	cc := maps.Keys(g.chars)
	slices.Sort(cc)
	glyphs := make([]Glyph, len(cc))
	for i, c := range cc {
		glyphs[i] = Glyph{Char: c, Data: g.chars[c]}
	}
	return glyphs
}

// compatible reports whether h can be merged into g without changing the
// rendering of any character: every character present in both groups must
// map to the same shape.  If requireCommon is set, the groups must also
// share at least one character.
func (g *Group) compatible(h *Group, requireCommon bool) bool {
	a, b := g.chars, h.chars
	if len(b) < len(a) {
		a, b = b, a
	}
	common := false
	for c, data := range a {
		other, ok := b[c]
		if !ok {
			continue
		}
		if !data.Equal(other) {
			return false
		}
		common = true
	}
	return common || !requireCommon
}

// absorb merges h into g: h's members are appended to g's member list and
// h's character table is unioned into g's.  The caller must have checked
// compatibility; a conflicting character here means the merge predicate is
// broken and the run cannot be trusted.
func (g *Group) absorb(h *Group) {
	g.members = append(g.members, h.members...)
	for c, data := range h.chars {
		if prev, ok := g.chars[c]; ok {
			if !prev.Equal(data) {
				panic("fontmerge: merged groups disagree on a character")
			}
			continue
		}
		g.chars[c] = data
	}
	h.members = nil
	h.chars = nil
}
