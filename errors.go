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

import "errors"

// Errors reported by this package. Functions wrap these with position
// information, so callers should test for them using [errors.Is].
//
// None of these conditions is fatal: a rejected pixel write or edge does not
// stop the remainder of a line or a sweep.
var (
	// ErrInvalidGeometry is returned for polygons with fewer than three
	// vertices, for lines whose endpoints coincide, for naive lines with
	// a vertical direction, and for pixel slices of the wrong length.
	ErrInvalidGeometry = errors.New("invalid geometry")

	// ErrOutOfRange is returned when a pixel coordinate lies outside
	// [0,width)×[0,height). Only the offending write is rejected.
	ErrOutOfRange = errors.New("pixel out of range")

	// ErrDegenerateEdge is returned when a zero-height edge is asked to
	// step to the next scanline.
	ErrDegenerateEdge = errors.New("degenerate edge")
)
