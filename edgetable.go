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
	"fmt"
	"math"
)

// EdgeRecord is an entry of the edge table. Records are plain values: the
// active edge list works on copies, so stepping an active edge never
// changes the table.
type EdgeRecord struct {
	YMax int     // first row below the edge (exclusive)
	XInt float64 // x-intersection with the current row
	XInc float64 // change of XInt per row; 0 for horizontal edges
	Y2   int     // row of the bucket holding this record
	X2   float64 // x-coordinate of the endpoint not at XInt
}

// NewEdgeRecord returns the edge table entry for the segment s.
// The y-coordinates of the endpoints are rounded to the nearest row.
func NewEdgeRecord(s Segment) EdgeRecord {
	y0 := int(math.Round(s.A.Y))
	y1 := int(math.Round(s.B.Y))

	e := EdgeRecord{}
	if y0 <= y1 {
		e.Y2, e.YMax = y0, y1
		e.XInt, e.X2 = s.A.X, s.B.X
	} else {
		e.Y2, e.YMax = y1, y0
		e.XInt, e.X2 = s.B.X, s.A.X
	}
	if y0 != y1 {
		e.XInc = (s.B.X - s.A.X) / float64(y1-y0)
	}
	return e
}

// Horizontal reports whether the edge has zero height.
// Such edges are painted as a span on their single row and never stepped.
func (e *EdgeRecord) Horizontal() bool {
	return e.Y2 == e.YMax
}

// Advance moves the x-intersection to the next row.
// Horizontal edges cannot be stepped and return [ErrDegenerateEdge].
func (e *EdgeRecord) Advance() error {
	if e.Horizontal() {
		return fmt.Errorf("edge at row %d, x=%g..%g: %w", e.Y2, e.XInt, e.X2, ErrDegenerateEdge)
	}
	e.XInt += e.XInc
	return nil
}

// EdgeTable holds one bucket of edge records per row. Every record is
// stored in the bucket of its topmost row, and records within a bucket keep
// their insertion order.
type EdgeTable struct {
	buckets [][]EdgeRecord
	n       int
}

// NewEdgeTable returns an empty edge table for rows 0 to height-1.
func NewEdgeTable(height int) *EdgeTable {
	return &EdgeTable{buckets: make([][]EdgeRecord, max(height, 0))}
}

// Insert adds e to the bucket of row e.Y2 and reports whether it was stored.
//
// Edges which start above row 0 but reach into the table are moved into
// bucket 0, with XInt advanced to the row 0 intersection. Edges entirely
// above row 0 or starting at or below the last row are discarded.
func (t *EdgeTable) Insert(e EdgeRecord) bool {
	if e.Y2 < 0 {
		if e.Horizontal() || e.YMax <= 0 {
			return false
		}
		e.XInt += float64(-e.Y2) * e.XInc
		e.Y2 = 0
	}
	if e.Y2 >= len(t.buckets) {
		return false
	}
	t.buckets[e.Y2] = append(t.buckets[e.Y2], e)
	t.n++
	return true
}

// Bucket returns the records whose topmost row is row.
// The returned slice must not be modified.
func (t *EdgeTable) Bucket(row int) []EdgeRecord {
	if row < 0 || row >= len(t.buckets) {
		return nil
	}
	return t.buckets[row]
}

// Height returns the number of rows covered by the table.
func (t *EdgeTable) Height() int {
	return len(t.buckets)
}

// Len returns the total number of records in the table.
func (t *EdgeTable) Len() int {
	return t.n
}
