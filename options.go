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

import "runtime"

// Options controls how a batch is consolidated.
type Options struct {
	// GroupFonts enables merging of compatible fonts.  When false, every
	// font keeps its own group and consolidation only assigns names.
	GroupFonts bool

	// KeepFontNames derives the final resource names from the original
	// font names.  When false, groups are named by their position.
	KeepFontNames bool

	// Builders limits the number of font files built concurrently.
	// Zero means one builder per CPU.
	Builders int
}

// MergeOptions takes an options struct and a default values struct and
// returns a new options struct with all fields set to the values from the
// options struct, except for fields set to the zero value there.  `opt` can
// be nil, in which case the default values are returned.  `defaultValues`
// must not be nil.
//
// The boolean fields are taken from `opt` verbatim whenever `opt` is
// non-nil, so that grouping can be switched off explicitly.
func MergeOptions(opt, defaultValues *Options) *Options {
	if opt == nil {
		return defaultValues
	}

	res := &Options{}
	res.GroupFonts = opt.GroupFonts
	res.KeepFontNames = opt.KeepFontNames
	if opt.Builders != 0 {
		res.Builders = opt.Builders
	} else {
		res.Builders = defaultValues.Builders
	}
	return res
}

func defaultOptions() *Options {
	return &Options{
		GroupFonts: true,
		Builders:   runtime.GOMAXPROCS(0),
	}
}
