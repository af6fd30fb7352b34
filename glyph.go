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
	"fmt"
	"math"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/rect"
)

// SpaceWidth is the advance width used for all whitespace glyphs, in glyph
// design units (half an em in the 1024-unit coordinate system used for
// glyph outlines).  Whitespace glyphs are visually interchangeable, so all
// of them are canonicalized to this width with an empty outline.
const SpaceWidth = 512.0

// OutlineOp is a single glyph outline drawing command.
type OutlineOp struct {
	Op   OutlineOpType
	Args []float64
}

// OutlineOpType is the type of a glyph outline drawing command.
type OutlineOpType byte

const (
	// OpMoveTo closes the previous subpath and starts a new one at the
	// given point.
	OpMoveTo OutlineOpType = iota + 1

	// OpLineTo appends a straight line segment from the previous point to
	// the given point.
	OpLineTo

	// OpCurveTo appends a cubic Bezier segment from the previous point to
	// the given point.
	OpCurveTo
)

func (op OutlineOpType) String() string {
	switch op {
	case OpMoveTo:
		return "moveto"
	case OpLineTo:
		return "lineto"
	case OpCurveTo:
		return "curveto"
	default:
		return fmt.Sprintf("OutlineOpType(%d)", byte(op))
	}
}

func (c OutlineOp) String() string {
	return fmt.Sprint("cmd", c.Args, c.Op)
}

// GlyphData is the shape of one glyph: an advance width together with an
// ordered sequence of outline commands.  Two GlyphData values are equal if
// and only if both the width and the command sequence are equal; this
// equality is the unit of shape deduplication.
type GlyphData struct {
	Width   float64
	Outline []OutlineOp
}

// MoveTo starts a new sub-path at (x, y).
func (d *GlyphData) MoveTo(x, y float64) {
	d.Outline = append(d.Outline, OutlineOp{
		Op:   OpMoveTo,
		Args: []float64{x, y},
	})
}

// LineTo adds a straight line to the current sub-path.
func (d *GlyphData) LineTo(x, y float64) {
	d.Outline = append(d.Outline, OutlineOp{
		Op:   OpLineTo,
		Args: []float64{x, y},
	})
}

// CurveTo adds a cubic Bezier curve to the current sub-path.
func (d *GlyphData) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	d.Outline = append(d.Outline, OutlineOp{
		Op:   OpCurveTo,
		Args: []float64{x1, y1, x2, y2, x3, y3},
	})
}

// Equal reports whether two glyph shapes are the same, comparing the
// advance width and the outline command sequence.
func (d *GlyphData) Equal(e *GlyphData) bool {
	if d == e {
		return true
	}
	if d == nil || e == nil {
		return false
	}
	if d.Width != e.Width || len(d.Outline) != len(e.Outline) {
		return false
	}
	for i, cmd := range d.Outline {
		other := e.Outline[i]
		if cmd.Op != other.Op || len(cmd.Args) != len(other.Args) {
			return false
		}
		for j, a := range cmd.Args {
			if a != other.Args[j] {
				return false
			}
		}
	}
	return true
}

// key returns a canonical string representation of the glyph shape,
// used to index the batch-wide shape table.  Two GlyphData values have the
// same key if and only if they are Equal.
func (d *GlyphData) key() string {
	b := &strings.Builder{}
	buf := make([]byte, 0, 24)
	buf = strconv.AppendFloat(buf, d.Width, 'g', -1, 64)
	b.Write(buf)
	for _, cmd := range d.Outline {
		b.WriteByte(byte(cmd.Op))
		for _, a := range cmd.Args {
			buf = strconv.AppendFloat(buf[:0], a, 'g', -1, 64)
			b.Write(buf)
			b.WriteByte(';')
		}
	}
	return b.String()
}

// Extent computes the bounding box of the glyph outline in design units.
// The zero rectangle is returned for glyphs with no outline.
func (d *GlyphData) Extent() rect.Rect {
	var res rect.Rect
	first := true
	for _, cmd := range d.Outline {
		// For curves this includes the control points; the curve is
		// contained in their convex hull.
		pts := cmd.Args
		for i := 0; i+1 < len(pts); i += 2 {
			x, y := pts[i], pts[i+1]
			if first {
				res = rect.Rect{LLx: x, LLy: y, URx: x, URy: y}
				first = false
				continue
			}
			res.LLx = math.Min(res.LLx, x)
			res.LLy = math.Min(res.LLy, y)
			res.URx = math.Max(res.URx, x)
			res.URy = math.Max(res.URy, y)
		}
	}
	return res
}
