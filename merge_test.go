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

import "testing"

var testFontSeq int

func testGroup(name string, glyphs ...Glyph) *Group {
	testFontSeq++
	return newGroup(&Font{
		ID:     FontID{Doc: 0, Num: testFontSeq},
		Name:   name,
		Glyphs: glyphs,
	})
}

func TestExactMerge(t *testing.T) {
	x := squareData(500)
	y := wedgeData(500)
	groups := mergeGroups([]*Group{
		testGroup("Arial", Glyph{'a', x}, Glyph{'b', y}),
		testGroup("Arial", Glyph{'a', x}, Glyph{'b', y}),
	})
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	if n := len(groups[0].Members()); n != 2 {
		t.Errorf("expected 2 members, got %d", n)
	}
}

func TestConflictBlocksMerge(t *testing.T) {
	groups := mergeGroups([]*Group{
		testGroup("Arial", Glyph{'a', squareData(500)}),
		testGroup("Arial", Glyph{'a', wedgeData(500)}),
	})
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
}

// A width mismatch alone makes two shapes different.
func TestWidthConflictBlocksMerge(t *testing.T) {
	groups := mergeGroups([]*Group{
		testGroup("Arial", Glyph{'a', squareData(500)}),
		testGroup("Arial", Glyph{'a', squareData(600)}),
	})
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
}

func TestCrossNameConsolidation(t *testing.T) {
	x := squareData(500)
	groups := mergeGroups([]*Group{
		testGroup("Arial", Glyph{'a', x}),
		testGroup("Helvetica", Glyph{'a', x}),
	})
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
}

func TestDisjointSetsMergeGlobally(t *testing.T) {
	in := []*Group{
		testGroup("Arial", Glyph{'a', squareData(500)}),
		testGroup("Arial", Glyph{'b', wedgeData(500)}),
	}

	// sharing no character blocks the per-name phase ...
	if got := coalesce(in, true); len(got) != 2 {
		t.Fatalf("expected 2 groups with requireCommon, got %d", len(got))
	}

	// ... but not the global phase
	if got := coalesce(in, false); len(got) != 1 {
		t.Fatalf("expected 1 group without requireCommon, got %d", len(got))
	}
}

// A merge early in the list can enable a merge later in the list, so
// coalesce must iterate until a pass makes no progress.
func TestCoalesceFixpoint(t *testing.T) {
	x := squareData(500)
	y := wedgeData(500)
	in := []*Group{
		testGroup("Arial", Glyph{'a', x}),
		testGroup("Arial", Glyph{'b', y}),
		testGroup("Arial", Glyph{'a', x}, Glyph{'b', y}),
	}
	got := coalesce(in, true)
	if len(got) != 1 {
		t.Fatalf("expected 1 group, got %d", len(got))
	}
	if n := len(got[0].Members()); n != 3 {
		t.Errorf("expected 3 members, got %d", n)
	}
}

func TestCompatibleIsConservative(t *testing.T) {
	x := squareData(500)
	y := wedgeData(500)
	a := testGroup("A", Glyph{'a', x}, Glyph{'b', x})
	b := testGroup("B", Glyph{'b', x}, Glyph{'c', y})
	c := testGroup("C", Glyph{'b', y})

	if !a.compatible(b, true) {
		t.Error("overlap with equal shapes must be compatible")
	}
	if a.compatible(c, false) {
		t.Error("a single mismatch must make groups incompatible")
	}
}

// After consolidation, all members of a group must agree on the shape of
// every character they have in common.
func TestNoConflictInvariant(t *testing.T) {
	shapes := []*GlyphData{
		squareData(400), squareData(500), wedgeData(400), wedgeData(500),
	}
	names := []string{"Alpha", "Beta"}

	// Every group maps 'x' to one of four shapes (a source of conflicts)
	// and one extra character to a shape all groups agree on.
	var in []*Group
	n := 0
	for _, name := range names {
		for _, s1 := range shapes {
			for j, s2 := range shapes {
				n++
				in = append(in, testGroup(name,
					Glyph{'x', s1},
					Glyph{rune('a' + j), s2},
				))
			}
		}
	}

	groups := mergeGroups(in)
	if len(groups) >= n {
		t.Errorf("no reduction: %d of %d groups left", len(groups), n)
	}

	for _, g := range groups {
		for _, f := range g.Members() {
			for _, fg := range f.Glyphs {
				if !g.chars[fg.Char].Equal(fg.Data) {
					t.Fatalf("group %q: member %s disagrees on %q",
						g.Name, f.ID, fg.Char)
				}
			}
		}
	}
}

func TestMergedGroupKeepsFirstMetrics(t *testing.T) {
	x := squareData(500)
	f1 := &Font{
		ID:      FontID{Doc: 0, Num: 1},
		Name:    "Arial",
		Metrics: Metrics{Ascent: 800, Descent: -200, Scale: 1},
		Glyphs:  []Glyph{{'a', x}},
	}
	f2 := &Font{
		ID:      FontID{Doc: 1, Num: 1},
		Name:    "Arial",
		Metrics: Metrics{Ascent: 750, Descent: -250, Scale: 1},
		Glyphs:  []Glyph{{'a', x}},
	}
	groups := mergeGroups([]*Group{newGroup(f1), newGroup(f2)})
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	if groups[0].Metrics != f1.Metrics {
		t.Errorf("group metrics changed: %+v", groups[0].Metrics)
	}
}
