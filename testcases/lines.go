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

var lineCases = []TestCase{
	{
		Name:   "threshold_shallow",
		Path:   polyline(0, 0, 4, 2),
		Width:  8,
		Height: 8,
		Op:     Lines{Algorithm: Threshold},
	},
	{
		Name:   "naive_fan",
		Path:   polyline(2, 2, 60, 10, 2, 30, 60, 60),
		Width:  64,
		Height: 64,
		Op:     Lines{Algorithm: Naive},
	},
	{
		Name:   "threshold_fan",
		Path:   polyline(2, 2, 60, 10, 2, 30, 60, 60),
		Width:  64,
		Height: 64,
		Op:     Lines{Algorithm: Threshold},
	},
	{
		Name:   "bresenham_triangle",
		Path:   triangle(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Op:     Lines{Algorithm: Bresenham},
	},
	{
		Name:   "bresenham_full_triangle",
		Path:   triangle(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Op:     Lines{Algorithm: BresenhamFull},
	},
	{
		Name:   "bresenham_full_star",
		Path:   fivePointStar(32, 32, 25),
		Width:  64,
		Height: 64,
		Op:     Lines{Algorithm: BresenhamFull},
	},
}
