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
	"fmt"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
)

// FillRule selects which pixels of a row are painted.
type FillRule int

const (
	// FillOutline paints, on each row, the pixels where an active edge
	// crosses at an exact integer x, together with the pixels covered by
	// horizontal edges on their row. For most polygons this draws an
	// outline rather than a solid interior.
	FillOutline FillRule = iota

	// FillEvenOdd pairs up the x-intersections of the non-horizontal active
	// edges from left to right and paints every pixel x with xa <= x < xb
	// for each pair (xa, xb).
	FillEvenOdd
)

func (r FillRule) String() string {
	switch r {
	case FillOutline:
		return "outline"
	case FillEvenOdd:
		return "evenodd"
	default:
		return fmt.Sprintf("FillRule(%d)", int(r))
	}
}

// Rasterizer paints polygons into a [Buffer] using an edge table and an
// active edge list. Polygons are collected with [Rasterizer.AddPolygon] and
// painted, all at once, by [Rasterizer.Raster].
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// Color is the fill colour.
	Color Color

	// Rule selects the pixels painted on each row.
	Rule FillRule

	// CTM maps polygon vertices to device coordinates.
	// It is applied when a polygon is added.
	CTM matrix.Matrix

	// Flatness controls curve approximation accuracy in device pixels,
	// for paths added with [Rasterizer.AddPath]. Must be positive.
	Flatness float64

	buf      *Buffer
	polygons []*Polygon
	et       *EdgeTable
	ael      ActiveEdgeList

	crossings []float64 // x-intersections of the current row, for FillEvenOdd
}

// Default values for rasterizer parameters.
const (
	// DefaultColor is opaque red.
	DefaultColor Color = 0xff0000ff

	// defaultFlatness is the default curve flattening tolerance in device
	// pixels.
	defaultFlatness = 0.25
)

// NewRasterizer returns a Rasterizer which paints into pix, interpreted as a
// width×height RGBA buffer. The length of pix must be width·height·4.
func NewRasterizer(pix []byte, width, height int) (*Rasterizer, error) {
	buf, err := NewBuffer(pix, width, height)
	if err != nil {
		return nil, err
	}
	return NewBufferRasterizer(buf), nil
}

// NewBufferRasterizer returns a Rasterizer which paints into buf.
func NewBufferRasterizer(buf *Buffer) *Rasterizer {
	return &Rasterizer{
		Color:    DefaultColor,
		Rule:     FillOutline,
		CTM:      matrix.Identity,
		Flatness: defaultFlatness,

		buf: buf,
		et:  NewEdgeTable(buf.Height()),
	}
}

// Buffer returns the buffer the rasterizer paints into.
func (r *Rasterizer) Buffer() *Buffer {
	return r.buf
}

// Polygons returns the polygons added so far, in the order they were added.
func (r *Rasterizer) Polygons() []*Polygon {
	return r.polygons
}

// EdgeTable returns the edge table built from the polygons added so far.
func (r *Rasterizer) EdgeTable() *EdgeTable {
	return r.et
}

// Reset removes all polygons.
func (r *Rasterizer) Reset() {
	clear(r.polygons)
	r.polygons = r.polygons[:0]
	r.et = NewEdgeTable(r.buf.Height())
	r.ael.Reset()
}

// AddPolygon records p and adds its edges, mapped through the CTM, to the
// edge table. Polygons with fewer than three vertices are rejected with
// [ErrInvalidGeometry] and leave the rasterizer unchanged.
func (r *Rasterizer) AddPolygon(p *Polygon) error {
	if n := len(p.points); n < 3 {
		return fmt.Errorf("polygon with %d vertices: %w", n, ErrInvalidGeometry)
	}

	dev := p
	if r.CTM != matrix.Identity {
		dev = p.transform(r.CTM)
	}

	r.polygons = append(r.polygons, p)

	stored := 0
	edges := dev.Edges()
	for _, s := range edges {
		if r.et.Insert(NewEdgeRecord(s)) {
			stored++
		}
	}

	log := Logger()
	bbox := dev.BBox()
	clip := r.buf.Rect()
	if bbox.URx < clip.LLx || bbox.LLx >= clip.URx || bbox.URy < clip.LLy || bbox.LLy >= clip.URy {
		log.Debug("polygon outside buffer",
			"vertices", len(p.points), "xMin", bbox.LLx, "yMin", bbox.LLy, "xMax", bbox.URx, "yMax", bbox.URy)
	}
	log.Debug("polygon added",
		"index", len(r.polygons)-1, "edges", len(edges), "stored", stored)
	return nil
}

// AddPath flattens p into polygons, one per subpath, and adds them using
// [Rasterizer.AddPolygon]. If Flatness is not positive, no polygons are
// added and [ErrInvalidGeometry] is returned.
func (r *Rasterizer) AddPath(p path.Path) error {
	if !(r.Flatness > 0) {
		return fmt.Errorf("flatness %g: %w", r.Flatness, ErrInvalidGeometry)
	}

	var errs []error
	for _, poly := range PolygonsFromPath(p, r.CTM, r.Flatness) {
		if err := r.AddPolygon(poly); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Raster sweeps all rows of the buffer from top to bottom and paints the
// polygons added so far. The buffer is modified in place; it should only
// be presented once Raster has returned.
//
// The edge table is not changed, so Raster can be called again, for
// example after changing Color or Rule.
func (r *Rasterizer) Raster() error {
	r.ael.Reset()

	var errs []error
	painted := 0
	height := r.buf.Height()
	for row := range height {
		r.ael.Admit(r.et.Bucket(row))
		if r.ael.Len() > 0 {
			r.ael.Sort()

			var n int
			var err error
			switch r.Rule {
			case FillEvenOdd:
				n, err = r.fillEvenOdd(row)
			default:
				n, err = r.fillOutline(row)
			}
			painted += n
			if err != nil {
				errs = append(errs, err)
			}
		}
		r.ael.Step(row)
	}

	Logger().Debug("raster done",
		"rule", r.Rule.String(), "polygons", len(r.polygons), "edges", r.et.Len(), "pixels", painted)
	return errors.Join(errs...)
}

// fillOutline paints row using the point-sample rule: an active edge covers
// pixel x if it is horizontal and x lies in [min(XInt, X2), max(XInt, X2)),
// or if its x-intersection equals x exactly. Both tests apply to every edge.
func (r *Rasterizer) fillOutline(row int) (int, error) {
	width := r.buf.Width()

	var errs []error
	n := 0
	for _, e := range r.ael.Edges() {
		if e.Horizontal() {
			lo := min(e.XInt, e.X2)
			hi := max(e.XInt, e.X2)
			n += r.paintSpan(row, lo, hi, &errs)
		}

		// A horizontal edge drawn right to left also covers its right end
		// through its x-intersection.
		x := e.XInt
		if x != math.Trunc(x) || x < 0 || x >= float64(width) {
			continue
		}
		if err := r.buf.SetPixel(int(x), row, r.Color); err != nil {
			errs = append(errs, err)
			continue
		}
		n++
	}
	return n, errors.Join(errs...)
}

// fillEvenOdd paints row by pairing up the x-intersections of the
// non-horizontal active edges. The active edge list is sorted, so the
// crossings are in increasing order.
func (r *Rasterizer) fillEvenOdd(row int) (int, error) {
	r.crossings = r.crossings[:0]
	for _, e := range r.ael.Edges() {
		if !e.Horizontal() {
			r.crossings = append(r.crossings, e.XInt)
		}
	}

	var errs []error
	n := 0
	for i := 0; i+1 < len(r.crossings); i += 2 {
		n += r.paintSpan(row, r.crossings[i], r.crossings[i+1], &errs)
	}
	return n, errors.Join(errs...)
}

// paintSpan paints the pixels x of row with lo <= x < hi which lie inside
// the buffer, and returns the number of pixels painted.
func (r *Rasterizer) paintSpan(row int, lo, hi float64, errs *[]error) int {
	width := r.buf.Width()
	lo = max(math.Ceil(lo), 0)
	hi = min(hi, float64(width))
	if !(lo < hi) {
		return 0
	}

	n := 0
	for x := int(lo); float64(x) < hi; x++ {
		if err := r.buf.SetPixel(x, row, r.Color); err != nil {
			*errs = append(*errs, err)
			continue
		}
		n++
	}
	return n
}
