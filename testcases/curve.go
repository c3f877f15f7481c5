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

var curveCases = []TestCase{
	{
		Name:   "circle_outline",
		Path:   circle(32, 32, 24),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: Outline},
	},
	{
		Name:   "circle_evenodd",
		Path:   circle(32, 32, 24),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
	},
	{
		Name:   "lens_evenodd",
		Path:   lens(8, 32, 56, 32, 40),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
	},
}
