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

// mergeGroups coarsens the given list of groups into the smallest number of
// mutually compatible groups the greedy scan finds, in two phases.
//
// Phase 1 partitions the groups by original font name and merges within
// each partition, requiring merged groups to share at least one character:
// within one name, a shared character with equal shapes is good evidence
// that two subsets came from the same face.
//
// Phase 2 runs over all surviving groups regardless of name and also merges
// groups with disjoint character sets.  This catches fonts which are
// identical in shape but were named differently by their source, and packs
// disjoint subsets into shared resources.
//
// The result depends on the input order; the input order is deterministic
// (document order, then font order), so the result is too.
func mergeGroups(groups []*Group) []*Group {
	var names []string
	byName := make(map[string][]*Group)
	for _, g := range groups {
		if _, ok := byName[g.Name]; !ok {
			names = append(names, g.Name)
		}
		byName[g.Name] = append(byName[g.Name], g)
	}

	merged := make([]*Group, 0, len(names))
	for _, name := range names {
		merged = append(merged, coalesce(byName[name], true)...)
	}

	return coalesce(merged, false)
}

// coalesce repeatedly scans the group list, merging each group into the
// first compatible group seen before it, until a full pass makes no
// progress.  A merge early in the list can newly enable a merge later in
// the list, so a single pass is not enough.
func coalesce(in []*Group, requireCommon bool) []*Group {
	for {
		out := make([]*Group, 0, len(in))
	groups:
		for _, g := range in {
			for _, h := range out {
				if h.compatible(g, requireCommon) {
					h.absorb(g)
					continue groups
				}
			}
			out = append(out, g)
		}
		if len(out) == len(in) {
			return out
		}
		in = out
	}
}
