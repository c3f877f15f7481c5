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

package testcases

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// kappa is the control point distance for approximating a quarter circle of
// radius 1 by a cubic Bézier curve.
const kappa = 0.5522847498

func moveTo(yield func(path.Command, []vec.Vec2) bool, x, y float64) bool {
	return yield(path.CmdMoveTo, []vec.Vec2{pt(x, y)})
}

func closePath(yield func(path.Command, []vec.Vec2) bool) bool {
	return yield(path.CmdClose, nil)
}

// subpath emits one closed subpath through the given points.
func subpath(yield func(path.Command, []vec.Vec2) bool, pts []vec.Vec2) bool {
	if len(pts) == 0 {
		return true
	}
	if !yield(path.CmdMoveTo, pts[:1]) {
		return false
	}
	for i := 1; i < len(pts); i++ {
		if !yield(path.CmdLineTo, pts[i:i+1]) {
			return false
		}
	}
	return closePath(yield)
}

// polygon builds a closed path from x, y coordinate pairs.
func polygon(coords ...float64) path.Path {
	pts := make([]vec.Vec2, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		pts = append(pts, pt(coords[i], coords[i+1]))
	}
	return func(yield func(path.Command, []vec.Vec2) bool) {
		subpath(yield, pts)
	}
}

// polyline builds an open path from x, y coordinate pairs.
func polyline(coords ...float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for i := 0; i+1 < len(coords); i += 2 {
			cmd := path.CmdLineTo
			if i == 0 {
				cmd = path.CmdMoveTo
			}
			if !yield(cmd, []vec.Vec2{pt(coords[i], coords[i+1])}) {
				return
			}
		}
	}
}

// triangle builds a triangular path.
func triangle(x1, y1, x2, y2, x3, y3 float64) path.Path {
	return polygon(x1, y1, x2, y2, x3, y3)
}

// rectangle builds a rectangular path.
func rectangle(x1, y1, x2, y2 float64) path.Path {
	return polygon(x1, y1, x2, y1, x2, y2, x1, y2)
}

// diamond builds a square rotated by 45 degrees.
func diamond(cx, cy, r float64) path.Path {
	return polygon(cx, cy-r, cx+r, cy, cx, cy+r, cx-r, cy)
}

// fivePointStar builds a five-pointed star (self-intersecting).
// The points are rounded to whole pixels.
func fivePointStar(cx, cy, r float64) path.Path {
	pts := make([]vec.Vec2, 5)
	for i := range 5 {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		pts[i] = pt(math.Round(cx+r*math.Cos(angle)), math.Round(cy+r*math.Sin(angle)))
	}

	// 0 -> 2 -> 4 -> 1 -> 3 -> 0
	order := []int{0, 2, 4, 1, 3}
	star := make([]vec.Vec2, len(order))
	for i, j := range order {
		star[i] = pts[j]
	}
	return func(yield func(path.Command, []vec.Vec2) bool) {
		subpath(yield, star)
	}
}

// ring builds two concentric squares, the inner one forming a hole under
// the even-odd rule.
func ring(cx, cy, outer, inner float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !subpath(yield, []vec.Vec2{
			pt(cx-outer, cy-outer), pt(cx+outer, cy-outer),
			pt(cx+outer, cy+outer), pt(cx-outer, cy+outer),
		}) {
			return
		}
		subpath(yield, []vec.Vec2{
			pt(cx-inner, cy-inner), pt(cx+inner, cy-inner),
			pt(cx+inner, cy+inner), pt(cx-inner, cy+inner),
		})
	}
}

// circle builds an approximate circle using four cubic Bézier curves.
func circle(cx, cy, r float64) path.Path {
	k := r * kappa
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !moveTo(yield, cx+r, cy) {
			return
		}
		quadrants := [][]vec.Vec2{
			{pt(cx+r, cy-k), pt(cx+k, cy-r), pt(cx, cy-r)},
			{pt(cx-k, cy-r), pt(cx-r, cy-k), pt(cx-r, cy)},
			{pt(cx-r, cy+k), pt(cx-k, cy+r), pt(cx, cy+r)},
			{pt(cx+k, cy+r), pt(cx+r, cy+k), pt(cx+r, cy)},
		}
		for _, q := range quadrants {
			if !yield(path.CmdCubeTo, q) {
				return
			}
		}
		closePath(yield)
	}
}

// lens builds a shape bounded by two quadratic Bézier curves.
func lens(x1, y1, x2, y2, bulge float64) path.Path {
	mx, my := (x1+x2)/2, (y1+y2)/2
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !moveTo(yield, x1, y1) {
			return
		}
		if !yield(path.CmdQuadTo, []vec.Vec2{pt(mx, my-bulge), pt(x2, y2)}) {
			return
		}
		if !yield(path.CmdQuadTo, []vec.Vec2{pt(mx, my+bulge), pt(x1, y1)}) {
			return
		}
		closePath(yield)
	}
}
