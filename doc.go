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

// Package fontmerge consolidates subsetted fonts from a batch of documents
// into a minimal set of shared font resources.
//
// Documents which embed fonts usually embed subsets, and a batch of related
// documents often contains many slightly different subsets of the same face.
// Emitting one output font per input font definition then bloats the final
// artifact.  This package groups compatible fonts across all documents,
// reassigns conflicting character codes deterministically, and gives every
// surviving group a unique name, so that a single binary font file can be
// shared by all members of a group.
//
// The unit of work is a [Batch]: documents are added one at a time (or read
// concurrently via [Batch.ReadDocuments]), character codes are assigned as
// fonts are added, and a final call to [Batch.Consolidate] merges the fonts,
// names the groups, materializes one font file per group through a [Builder],
// and returns the mapping from original font identity to consolidated
// resource.
//
// Grouping never changes rendering: two fonts are merged only if every
// character they have in common maps to the same advance width and the same
// outline in both.
package fontmerge
