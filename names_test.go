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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func namedGroups(names ...string) []*Group {
	groups := make([]*Group, len(names))
	for i, name := range names {
		groups[i] = testGroup(name, Glyph{'a', squareData(500)})
	}
	return groups
}

func finalNames(groups []*Group) []string {
	names := make([]string, len(groups))
	for i, g := range groups {
		names[i] = g.Name
	}
	return names
}

func TestKeepNames(t *testing.T) {
	groups := namedGroups("Arial Bold", "Arial Bold", "Arial Bold", "", "4")
	assignNames(groups, true)
	want := []string{"arial-bold", "arial-bold-2", "arial-bold-3", "3", "4"}
	if d := cmp.Diff(finalNames(groups), want); d != "" {
		t.Errorf("names differ (-got +want):\n%s", d)
	}
}

func TestOrdinalNames(t *testing.T) {
	groups := namedGroups("Arial", "Arial", "Times")
	assignNames(groups, false)
	want := []string{"0", "1", "2"}
	if d := cmp.Diff(finalNames(groups), want); d != "" {
		t.Errorf("names differ (-got +want):\n%s", d)
	}
}

func TestNameUniqueness(t *testing.T) {
	input := []string{
		"Arial", "arial", "ARIAL", "Arial", "", "", "0", "1", "Times New Roman",
	}
	for _, keep := range []bool{true, false} {
		groups := namedGroups(input...)
		assignNames(groups, keep)
		seen := make(map[string]bool)
		for _, g := range groups {
			if g.Name == "" {
				t.Errorf("keep=%t: empty name assigned", keep)
			}
			if seen[g.Name] {
				t.Errorf("keep=%t: name %q assigned twice", keep, g.Name)
			}
			seen[g.Name] = true
		}
	}
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		in, out string
	}{
		{"Arial", "arial"},
		{"Times New Roman", "times-new-roman"},
		{"GREEK", "greek"},
		{"Fonts/Arial", "fonts-arial"},
		{`C:\Fonts\Arial`, "c:-fonts-arial"},
		{"../Arial", "..-arial"},
		{"", ""},
	}
	for _, c := range cases {
		if got := slugify(c.in); got != c.out {
			t.Errorf("slugify(%q) = %q, want %q", c.in, got, c.out)
		}
	}
}
