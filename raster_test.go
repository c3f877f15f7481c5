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
	"errors"
	"math"
	"slices"
	"strings"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func newTestRasterizer(t *testing.T, width, height int) *Rasterizer {
	t.Helper()
	r, err := NewRasterizer(make([]byte, width*height*4), width, height)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func newPolygon(coords ...float64) *Polygon {
	p := &Polygon{}
	for i := 0; i+1 < len(coords); i += 2 {
		p.AddVertex(coords[i], coords[i+1])
	}
	return p
}

// mask shows the pixels of buf which have colour c as '#'.
func mask(buf *Buffer, c Color) []string {
	rows := make([]string, buf.Height())
	for y := range buf.Height() {
		var sb strings.Builder
		for x := range buf.Width() {
			got, _ := buf.Pixel(x, y)
			if got == c {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		rows[y] = sb.String()
	}
	return rows
}

func checkMask(t *testing.T, buf *Buffer, c Color, want []string) {
	t.Helper()
	got := mask(buf, c)
	if !slices.Equal(got, want) {
		t.Errorf("got\n%s\nwant\n%s", strings.Join(got, "\n"), strings.Join(want, "\n"))
	}
}

func TestSquareOutline(t *testing.T) {
	r := newTestRasterizer(t, 4, 4)
	if err := r.AddPolygon(newPolygon(1, 1, 3, 1, 3, 3, 1, 3)); err != nil {
		t.Fatal(err)
	}
	if err := r.Raster(); err != nil {
		t.Fatal(err)
	}

	// Rows 1 and 2 get the vertical edges at x=1 and x=3. The horizontal
	// edges paint [1,3) on rows 1 and 3, and the bottom edge, which runs
	// from (3,3) to (1,3), also covers x=3. The vertical edges end before
	// row 3.
	checkMask(t, r.Buffer(), DefaultColor, []string{
		"....",
		".###",
		".#.#",
		".###",
	})

	pix := r.Buffer().Pix()
	i := (1 + 2*4) * 4
	if got := pix[i : i+4]; !slices.Equal(got, []byte{0xff, 0x00, 0x00, 0xff}) {
		t.Errorf("bytes at (1,2) = % x, want ff 00 00 ff", got)
	}
}

// TestHorizontalEdgeDirection checks that the right end of a horizontal
// edge is painted only when the edge starts there.
func TestHorizontalEdgeDirection(t *testing.T) {
	cases := []struct {
		name string
		poly *Polygon
		want []string
	}{
		{"right_to_left", newPolygon(2, 0, 4, 2, 0, 2), []string{
			"..#..",
			".#.#.",
			"#####",
		}},
		{"left_to_right", newPolygon(2, 0, 0, 2, 4, 2), []string{
			"..#..",
			".#.#.",
			"####.",
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRasterizer(t, 5, 3)
			if err := r.AddPolygon(tc.poly); err != nil {
				t.Fatal(err)
			}
			if err := r.Raster(); err != nil {
				t.Fatal(err)
			}
			checkMask(t, r.Buffer(), DefaultColor, tc.want)
		})
	}
}

func TestSquareEvenOdd(t *testing.T) {
	r := newTestRasterizer(t, 4, 4)
	r.Rule = FillEvenOdd
	if err := r.AddPolygon(newPolygon(1, 1, 3, 1, 3, 3, 1, 3)); err != nil {
		t.Fatal(err)
	}
	if err := r.Raster(); err != nil {
		t.Fatal(err)
	}
	checkMask(t, r.Buffer(), DefaultColor, []string{
		"....",
		".##.",
		".##.",
		"....",
	})
}

func TestTriangle(t *testing.T) {
	cases := []struct {
		rule FillRule
		want []string
	}{
		{FillOutline, []string{
			"#####",
			"#..#.",
			"#.#..",
			"##...",
			".....",
		}},
		{FillEvenOdd, []string{
			"####.",
			"###..",
			"##...",
			"#....",
			".....",
		}},
	}
	for _, tc := range cases {
		t.Run(tc.rule.String(), func(t *testing.T) {
			r := newTestRasterizer(t, 5, 5)
			r.Rule = tc.rule
			if err := r.AddPolygon(newPolygon(0, 0, 4, 0, 0, 4)); err != nil {
				t.Fatal(err)
			}
			if err := r.Raster(); err != nil {
				t.Fatal(err)
			}
			checkMask(t, r.Buffer(), DefaultColor, tc.want)
		})
	}
}

func TestClippedRectangle(t *testing.T) {
	cases := []struct {
		rule FillRule
		want []string
	}{
		// only the bottom edge is visible
		{FillOutline, []string{
			"......",
			"......",
			"######",
			"......",
		}},
		{FillEvenOdd, []string{
			"######",
			"######",
			"......",
			"......",
		}},
	}
	for _, tc := range cases {
		t.Run(tc.rule.String(), func(t *testing.T) {
			r := newTestRasterizer(t, 6, 4)
			r.Rule = tc.rule
			if err := r.AddPolygon(newPolygon(-3, -2, 9, -2, 9, 2, -3, 2)); err != nil {
				t.Fatal(err)
			}
			if err := r.Raster(); err != nil {
				t.Fatal(err)
			}
			checkMask(t, r.Buffer(), DefaultColor, tc.want)
		})
	}
}

func TestAddPolygonInvalid(t *testing.T) {
	r := newTestRasterizer(t, 8, 8)
	for _, p := range []*Polygon{
		{},
		newPolygon(1, 1),
		newPolygon(1, 1, 5, 5),
	} {
		err := r.AddPolygon(p)
		if !errors.Is(err, ErrInvalidGeometry) {
			t.Errorf("%d vertices: got %v, want ErrInvalidGeometry", len(p.Vertices()), err)
		}
	}
	if len(r.Polygons()) != 0 || r.EdgeTable().Len() != 0 {
		t.Error("rejected polygons changed the rasterizer")
	}
}

func TestSharedBucket(t *testing.T) {
	r := newTestRasterizer(t, 8, 4)
	r.Rule = FillEvenOdd
	p1 := newPolygon(0, 0, 2, 0, 2, 3, 0, 3)
	p2 := newPolygon(4, 0, 7, 0, 7, 2, 4, 2)
	for _, p := range []*Polygon{p1, p2} {
		if err := r.AddPolygon(p); err != nil {
			t.Fatal(err)
		}
	}

	bucket := r.EdgeTable().Bucket(0)
	if len(bucket) != 6 {
		t.Fatalf("bucket 0 has %d records, want 6", len(bucket))
	}
	// records of the first polygon come first
	for i, e := range bucket {
		if (i < 3) != (e.XInt < 3 && e.X2 < 3) {
			t.Errorf("record %d out of order: %+v", i, e)
		}
	}

	if err := r.Raster(); err != nil {
		t.Fatal(err)
	}
	checkMask(t, r.Buffer(), DefaultColor, []string{
		"##..###.",
		"##..###.",
		"##......",
		"........",
	})
}

func TestRasterLeavesEdgeTable(t *testing.T) {
	r := newTestRasterizer(t, 16, 16)
	if err := r.AddPolygon(newPolygon(2, 1, 13, 4, 9, 14, 1, 9)); err != nil {
		t.Fatal(err)
	}

	et := r.EdgeTable()
	before := make([][]EdgeRecord, et.Height())
	for row := range et.Height() {
		before[row] = slices.Clone(et.Bucket(row))
	}

	if err := r.Raster(); err != nil {
		t.Fatal(err)
	}
	first := slices.Clone(r.Buffer().Pix())

	for row := range et.Height() {
		if !slices.Equal(et.Bucket(row), before[row]) {
			t.Errorf("bucket %d changed by Raster", row)
		}
	}

	// a second sweep gives the same result
	r.Buffer().Clear(0)
	if err := r.Raster(); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(first, r.Buffer().Pix()) {
		t.Error("second Raster call gave a different result")
	}
}

func TestColorAndReset(t *testing.T) {
	r := newTestRasterizer(t, 4, 4)
	r.Rule = FillEvenOdd
	r.Color = 0x00ff00ff
	if err := r.AddPolygon(newPolygon(0, 0, 4, 0, 4, 4, 0, 4)); err != nil {
		t.Fatal(err)
	}
	if err := r.Raster(); err != nil {
		t.Fatal(err)
	}
	checkMask(t, r.Buffer(), 0x00ff00ff, []string{"####", "####", "####", "####"})

	r.Reset()
	r.Buffer().Clear(0)
	if len(r.Polygons()) != 0 || r.EdgeTable().Len() != 0 {
		t.Fatal("Reset did not remove the polygons")
	}
	if err := r.Raster(); err != nil {
		t.Fatal(err)
	}
	checkMask(t, r.Buffer(), 0x00ff00ff, []string{"....", "....", "....", "...."})
}

func TestCTM(t *testing.T) {
	r := newTestRasterizer(t, 6, 6)
	r.Rule = FillEvenOdd
	r.CTM = matrix.Matrix{2, 0, 0, 2, 1, 0}
	p := newPolygon(0, 0, 2, 0, 2, 2, 0, 2)
	if err := r.AddPolygon(p); err != nil {
		t.Fatal(err)
	}
	if err := r.Raster(); err != nil {
		t.Fatal(err)
	}
	checkMask(t, r.Buffer(), DefaultColor, []string{
		".####.",
		".####.",
		".####.",
		".####.",
		"......",
		"......",
	})

	// the caller's polygon is not modified
	if got := p.Vertices()[1]; got != (vec.Vec2{X: 2, Y: 0}) {
		t.Errorf("vertex 1 = %v", got)
	}
}

func TestAddPath(t *testing.T) {
	// a 10×10 square with a 4×4 hole
	var square path.Path = func(yield func(path.Command, []vec.Vec2) bool) {
		for _, sq := range [][4]float64{{1, 1, 11, 11}, {4, 4, 8, 8}} {
			x0, y0, x1, y1 := sq[0], sq[1], sq[2], sq[3]
			if !yield(path.CmdMoveTo, []vec.Vec2{{X: x0, Y: y0}}) ||
				!yield(path.CmdLineTo, []vec.Vec2{{X: x1, Y: y0}}) ||
				!yield(path.CmdLineTo, []vec.Vec2{{X: x1, Y: y1}}) ||
				!yield(path.CmdLineTo, []vec.Vec2{{X: x0, Y: y1}}) ||
				!yield(path.CmdClose, nil) {
				return
			}
		}
	}

	r := newTestRasterizer(t, 12, 12)
	r.Rule = FillEvenOdd
	if err := r.AddPath(square); err != nil {
		t.Fatal(err)
	}
	if n := len(r.Polygons()); n != 2 {
		t.Fatalf("got %d polygons, want 2", n)
	}
	if err := r.Raster(); err != nil {
		t.Fatal(err)
	}
	checkMask(t, r.Buffer(), DefaultColor, []string{
		"............",
		".##########.",
		".##########.",
		".##########.",
		".###....###.",
		".###....###.",
		".###....###.",
		".###....###.",
		".##########.",
		".##########.",
		".##########.",
		"............",
	})
}

func TestAddPathFlatness(t *testing.T) {
	var arc path.Path = func(yield func(path.Command, []vec.Vec2) bool) {
		_ = yield(path.CmdMoveTo, []vec.Vec2{{X: 1, Y: 1}}) &&
			yield(path.CmdQuadTo, []vec.Vec2{{X: 10, Y: 1}, {X: 10, Y: 10}}) &&
			yield(path.CmdClose, nil)
	}

	for _, flatness := range []float64{0, -1, math.NaN()} {
		r := newTestRasterizer(t, 12, 12)
		r.Flatness = flatness
		if err := r.AddPath(arc); !errors.Is(err, ErrInvalidGeometry) {
			t.Errorf("flatness %g: got %v, want ErrInvalidGeometry", flatness, err)
		}
		if len(r.Polygons()) != 0 || r.EdgeTable().Len() != 0 {
			t.Errorf("flatness %g: polygons were added", flatness)
		}
	}

	r := newTestRasterizer(t, 12, 12)
	if err := r.AddPath(arc); err != nil {
		t.Fatal(err)
	}
	if n := len(r.Polygons()[0].Vertices()); n < 4 {
		t.Errorf("curve flattened to %d vertices", n)
	}
}
