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

// Package cffbuild materializes consolidated font groups as CFF font files.
package cffbuild

import (
	"fmt"
	"os"
	"path/filepath"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/postscript/type1"
	"seehuhn.de/go/postscript/type1/names"
	"seehuhn.de/go/sfnt/cff"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/fontmerge"
)

// Builder writes one CFF font file per consolidated group into Dir.
// It implements [fontmerge.Builder].
type Builder struct {
	Dir string
}

// BuildFont writes the font file for one group and returns the file name,
// relative to the builder's directory.
func (b *Builder) BuildFont(g *fontmerge.Group) (string, error) {
	font, err := Font(g)
	if err != nil {
		return "", err
	}

	name := g.Name + ".cff"
	f, err := os.Create(filepath.Join(b.Dir, name))
	if err != nil {
		return "", fmt.Errorf("create font file: %w", err)
	}
	err = font.Write(f)
	if err != nil {
		f.Close()
		return "", fmt.Errorf("write font file: %w", err)
	}
	err = f.Close()
	if err != nil {
		return "", fmt.Errorf("close font file: %w", err)
	}
	return name, nil
}

// Font converts a consolidated group into an in-memory CFF font.  Glyphs
// are ordered by character code, after the mandatory .notdef glyph.
func Font(g *fontmerge.Group) (*cff.Font, error) {
	gg := g.Glyphs()

	scale := g.Metrics.Scale
	if scale == 0 {
		scale = 1
	}
	// Scale converts design units to thousandths of an em.
	s := scale / 1000

	outlines := &cff.Outlines{
		FDSelect: func(glyph.ID) int { return 0 },
		Encoding: make([]glyph.ID, 256),
	}
	outlines.Glyphs = append(outlines.Glyphs, cff.NewGlyph(".notdef", 0))

	var top, bottom []funit.Int16
	for _, fg := range gg {
		data := fg.Data
		cg := cff.NewGlyph(glyphName(fg.Char), data.Width)
		for _, cmd := range data.Outline {
			a := cmd.Args
			switch cmd.Op {
			case fontmerge.OpMoveTo:
				cg.MoveTo(a[0], a[1])
			case fontmerge.OpLineTo:
				cg.LineTo(a[0], a[1])
			case fontmerge.OpCurveTo:
				cg.CurveTo(a[0], a[1], a[2], a[3], a[4], a[5])
			default:
				return nil, fmt.Errorf("font %q: invalid outline command %s",
					g.Name, cmd.Op)
			}
		}
		gid := glyph.ID(len(outlines.Glyphs))
		outlines.Glyphs = append(outlines.Glyphs, cg)
		if fg.Char < 256 {
			outlines.Encoding[fg.Char] = gid
		}

		if len(data.Outline) > 0 {
			ext := data.Extent()
			top = append(top, funit.Int16(ext.URy))
			bottom = append(bottom, funit.Int16(ext.LLy))
		}
	}
	outlines.Private = []*type1.PrivateDict{makePrivate(top, bottom)}

	info := &type1.FontInfo{
		FontName:   g.Name,
		FullName:   g.Name,
		FamilyName: g.Name,
		Weight:     "Regular",
		Version:    "001.000",
		FontMatrix: matrix.Matrix{s, 0, 0, s, 0, 0},
	}

	return &cff.Font{
		FontInfo: info,
		Outlines: outlines,
	}, nil
}

// makePrivate derives alignment zones from the glyph extents, following the
// usual BlueValues conventions.
func makePrivate(top, bottom []funit.Int16) *type1.PrivateDict {
	private := &type1.PrivateDict{
		BlueScale: 0.039625,
		BlueShift: 7,
		BlueFuzz:  1,
	}
	if len(top) > 0 {
		topMin, topMax := top[0], top[0]
		bottomMin, bottomMax := bottom[0], bottom[0]
		for i := 1; i < len(top); i++ {
			if top[i] < topMin {
				topMin = top[i]
			}
			if top[i] > topMax {
				topMax = top[i]
			}
			if bottom[i] < bottomMin {
				bottomMin = bottom[i]
			}
			if bottom[i] > bottomMax {
				bottomMax = bottom[i]
			}
		}
		private.BlueValues = []funit.Int16{
			bottomMin, bottomMax, topMin, topMax,
		}
	}
	return private
}

// glyphName chooses a PostScript glyph name for a character code.
func glyphName(c rune) string {
	return names.FromUnicode(string(c))
}
