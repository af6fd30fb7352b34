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
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

var lowercase = cases.Lower(language.Und)

// assignNames gives every group a unique final name.
//
// With keepNames set, the name is a slug derived from the group's original
// name, falling back to the group's position in the list if the slug is
// empty, and extended with "-2", "-3", ... on collisions.  Otherwise the
// position alone is used, which is unique by construction.
func assignNames(groups []*Group, keepNames bool) {
	used := make(map[string]bool, len(groups))
	for i, g := range groups {
		var name string
		if keepNames {
			name = slugify(g.Name)
			if name == "" {
				name = strconv.Itoa(i)
			}
			if used[name] {
				n := 2
				for used[name+"-"+strconv.Itoa(n)] {
					n++
				}
				name = name + "-" + strconv.Itoa(n)
			}
		} else {
			name = strconv.Itoa(i)
		}
		used[name] = true
		g.Name = name
	}
}

// slugify derives a file-name friendly version of a font name.  Path
// separators are replaced along with spaces, so that the name can be used
// as a file name in a flat output directory.
func slugify(s string) string {
	s = norm.NFC.String(s)
	s = lowercase.String(s)
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '/', '\\':
			return '-'
		}
		return r
	}, s)
}
