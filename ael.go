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
	"slices"
)

// ActiveEdgeList is the set of edges crossing the current row.
// The zero value is an empty list.
type ActiveEdgeList struct {
	edges []EdgeRecord
}

// Admit appends copies of the records in bucket.
func (l *ActiveEdgeList) Admit(bucket []EdgeRecord) {
	l.edges = append(l.edges, bucket...)
}

// Sort orders the list by increasing x-intersection.
// Edges with equal x-intersection keep their relative order.
func (l *ActiveEdgeList) Sort() {
	slices.SortStableFunc(l.edges, func(a, b EdgeRecord) int {
		return cmp.Compare(a.XInt, b.XInt)
	})
}

// Step finishes row. Horizontal edges and edges which do not reach row+1
// are removed, all other edges move their x-intersection to row+1.
func (l *ActiveEdgeList) Step(row int) {
	keep := l.edges[:0]
	for _, e := range l.edges {
		if e.Horizontal() || e.YMax <= row+1 {
			continue
		}
		// cannot fail, horizontal edges were dropped above
		_ = e.Advance()
		keep = append(keep, e)
	}
	clear(l.edges[len(keep):])
	l.edges = keep
}

// Edges returns the active edges in their current order.
// The returned slice is only valid until the next call to a method of l.
func (l *ActiveEdgeList) Edges() []EdgeRecord {
	return l.edges
}

// Len returns the number of active edges.
func (l *ActiveEdgeList) Len() int {
	return len(l.edges)
}

// Reset removes all edges, keeping the allocated memory.
func (l *ActiveEdgeList) Reset() {
	l.edges = l.edges[:0]
}
