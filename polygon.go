// seehuhn.de/go/scanline - a polygon scanline rasterizer
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

package scanline

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Segment is a polygon edge from A to B.
type Segment struct {
	A, B vec.Vec2
}

// Polygon is a closed ring of vertices. The last vertex connects back to
// the first one.
//
// No check is made for simplicity, convexity, winding or vertex count;
// [Rasterizer.AddPolygon] rejects polygons with fewer than three vertices.
type Polygon struct {
	points []vec.Vec2
}

// AddVertex appends the point (x, y) to the polygon.
func (p *Polygon) AddVertex(x, y float64) {
	p.points = append(p.points, vec.Vec2{X: x, Y: y})
}

// Vertices returns the vertices in the order they were added.
// The returned slice must not be modified.
func (p *Polygon) Vertices() []vec.Vec2 {
	return p.points
}

// Edges returns one segment per pair of consecutive vertices, including the
// closing segment from the last vertex to the first. The segments are sorted
// by the x-coordinate of their start point; segments with equal start x keep
// their vertex order.
func (p *Polygon) Edges() []Segment {
	n := len(p.points)
	edges := make([]Segment, 0, n)
	for i, a := range p.points {
		edges = append(edges, Segment{A: a, B: p.points[(i+1)%n]})
	}
	slices.SortStableFunc(edges, func(e1, e2 Segment) int {
		return cmp.Compare(e1.A.X, e2.A.X)
	})
	return edges
}

// BBox returns the smallest rectangle containing all vertices.
// The result is the zero rectangle for an empty polygon.
func (p *Polygon) BBox() rect.Rect {
	if len(p.points) == 0 {
		return rect.Rect{}
	}
	r := rect.Rect{
		LLx: math.Inf(+1), LLy: math.Inf(+1),
		URx: math.Inf(-1), URy: math.Inf(-1),
	}
	for _, v := range p.points {
		r.LLx = min(r.LLx, v.X)
		r.LLy = min(r.LLy, v.Y)
		r.URx = max(r.URx, v.X)
		r.URy = max(r.URy, v.Y)
	}
	return r
}

// transform returns a copy of p with every vertex mapped through m.
func (p *Polygon) transform(m matrix.Matrix) *Polygon {
	q := &Polygon{points: make([]vec.Vec2, len(p.points))}
	for i, v := range p.points {
		q.points[i] = vec.Vec2{
			X: m[0]*v.X + m[2]*v.Y + m[4],
			Y: m[1]*v.X + m[3]*v.Y + m[5],
		}
	}
	return q
}

// PolygonsFromPath converts each subpath of p into a polygon. Curves are
// replaced by line segments such that, after mapping through ctm, the
// deviation from the curve is at most flatness device pixels.
//
// Subpaths are closed implicitly. Subpaths with fewer than three distinct
// vertices enclose no area and are omitted. The vertices of the result are
// in user space; ctm is only used to choose the number of segments.
func PolygonsFromPath(p path.Path, ctm matrix.Matrix, flatness float64) []*Polygon {
	f := flattener{ctm: ctm, flatness: flatness}

	var res []*Polygon
	var cur *Polygon
	var current vec.Vec2

	emit := func(_, to vec.Vec2) {
		if n := len(cur.points); n > 0 && cur.points[n-1] == to {
			return
		}
		cur.points = append(cur.points, to)
	}
	finish := func() {
		if cur == nil {
			return
		}
		if n := len(cur.points); n > 1 && cur.points[n-1] == cur.points[0] {
			cur.points = cur.points[:n-1]
		}
		if len(cur.points) >= 3 {
			res = append(res, cur)
		}
		cur = nil
	}

	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			finish()
			current = pts[0]
			cur = &Polygon{points: []vec.Vec2{current}}

		case path.CmdLineTo:
			if cur == nil {
				continue
			}
			emit(current, pts[0])
			current = pts[0]

		case path.CmdQuadTo:
			if cur == nil {
				continue
			}
			f.quadratic(current, pts[0], pts[1], emit)
			current = pts[1]

		case path.CmdCubeTo:
			if cur == nil {
				continue
			}
			f.cubic(current, pts[0], pts[1], pts[2], emit)
			current = pts[2]

		case path.CmdClose:
			if cur != nil {
				current = cur.points[0]
			}
			finish()
		}
	}
	finish()

	return res
}

// flattener replaces Bézier curves by line segments, using a tolerance
// measured in device space.
type flattener struct {
	ctm      matrix.Matrix
	flatness float64
}

// transformLinear applies only the 2×2 linear part of the CTM to a vector.
func (f *flattener) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: f.ctm[0]*v.X + f.ctm[2]*v.Y,
		Y: f.ctm[1]*v.X + f.ctm[3]*v.Y,
	}
}

// quadratic flattens the quadratic Bézier p0, p1, p2 and calls emit for each
// line segment.
func (f *flattener) quadratic(p0, p1, p2 vec.Vec2, emit func(from, to vec.Vec2)) {
	// e = (P0 - 2*P1 + P2) / 4
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)
	errDev := f.transformLinear(e).Length()

	n := 1
	if errDev > f.flatness {
		n = int(math.Ceil(math.Sqrt(errDev / f.flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		pt := p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// cubic flattens the cubic Bézier p0, p1, p2, p3 and calls emit for each
// line segment. The segment count follows Wang's formula.
func (f *flattener) cubic(p0, p1, p2, p3 vec.Vec2, emit func(from, to vec.Vec2)) {
	d1 := f.transformLinear(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := f.transformLinear(p1.Sub(p2.Mul(2)).Add(p3))

	n := 1
	if m := max(d1.Length(), d2.Length()); m > 0 {
		nFloat := math.Sqrt(3 * m / (4 * f.flatness))
		if nFloat > 1 {
			n = int(math.Ceil(nFloat))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		pt := p0.Mul(omt2 * omt).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t2 * t))
		emit(prev, pt)
		prev = pt
	}
}
