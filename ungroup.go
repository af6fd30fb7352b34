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

// ungroup projects the consolidated groups back onto the individual fonts:
// every member receives its group's final name and font file reference,
// while keeping its own glyph sequence and code assignments.  The result
// maps each original font identity to its (now shared) resource.
func ungroup(groups []*Group) map[FontID]*Font {
	fonts := make(map[FontID]*Font)
	for _, g := range groups {
		for _, f := range g.members {
			f.Name = g.Name
			f.FontFile = g.FontFile
			fonts[f.ID] = f
		}
	}
	return fonts
}
