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

import "seehuhn.de/go/geom/matrix"

var ctmCases = []TestCase{
	{
		Name:   "scale_2x",
		Path:   rectangle(0, 0, 20, 20),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
		CTM:    matrix.Scale(2, 2).Translate(12, 12),
	},
	{
		Name:   "rotate_45",
		Path:   rectangle(-15, -15, 15, 15),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
		CTM:    matrix.RotateDeg(45).Translate(32, 32),
	},
	{
		Name:   "skew_x",
		Path:   rectangle(-12, -12, 12, 12),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
		CTM:    matrix.Matrix{1, 0, 0.5, 1, 0, 0}.Translate(32, 32),
	},
	{
		Name:   "flip_y",
		Path:   triangle(10, 10, 32, 50, 54, 10),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: Outline},
		CTM:    matrix.Matrix{1, 0, 0, -1, 0, 64},
	},
}
