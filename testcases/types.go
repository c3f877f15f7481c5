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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single rendering test.
type TestCase struct {
	Name   string        // lowercase a-z, 0-9 and _ only
	Path   path.Path     // the geometry to render
	Width  int           // canvas width in pixels
	Height int           // canvas height in pixels
	Op     Operation     // fill or lines
	CTM    matrix.Matrix // transformation matrix (zero-value means no transform)
}

// Operation is the rendering operation to apply to the path.
type Operation interface {
	isOperation()
}

// FillRule specifies which pixels of a scanline are painted.
type FillRule int

const (
	Outline FillRule = iota
	EvenOdd
)

// Fill specifies a polygon fill. Every subpath is one polygon.
type Fill struct {
	Rule FillRule
}

func (Fill) isOperation() {}

// LineAlgorithm specifies the line stepping algorithm.
type LineAlgorithm int

const (
	Naive LineAlgorithm = iota
	Threshold
	Bresenham
	BresenhamFull
)

// Lines draws every straight segment of the path, with endpoints rounded
// to the nearest pixel. Closing segments are drawn, curves are replaced by
// a segment to their end point.
type Lines struct {
	Algorithm LineAlgorithm
}

func (Lines) isOperation() {}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
