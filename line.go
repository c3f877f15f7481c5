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
	"image"
	"math"
)

// LineAlgorithm selects how [DrawLine] steps from one endpoint to the other.
type LineAlgorithm int

const (
	// LineNaive steps x from x1 up to, but excluding, x2 and accumulates y
	// using the floating point slope. The slope is added before each pixel
	// is plotted, so the first pixel is (x1, y1+m) rounded down.
	// Vertical lines are rejected with [ErrInvalidGeometry].
	LineNaive LineAlgorithm = iota

	// LineThreshold steps x while x < x2 and moves y down by one whenever the
	// accumulated error |m| reaches 0.5. The endpoint x2 is not drawn.
	// Lines with x1 > x2 draw nothing, and steep lines are drawn with at
	// most one pixel per column.
	//
	// For example, the segment (0,0)-(4,2) gives the pixels (0,0), (1,1),
	// (2,1) and (3,2). [LineBresenham] gives (0,0), (1,0), (2,1) and (3,1)
	// for the same segment.
	LineThreshold

	// LineBresenham is the sign-based integer Bresenham algorithm with
	// decision variable dx-dy. The loop stops as soon as either coordinate
	// reaches its target, so the final run of pixels along the dominant
	// axis is missing whenever |dx| != |dy|, and horizontal and vertical
	// lines draw nothing.
	LineBresenham

	// LineBresenhamFull is LineBresenham with the loop running until both
	// coordinates have reached the endpoint. Both endpoints are drawn.
	LineBresenhamFull
)

func (a LineAlgorithm) String() string {
	switch a {
	case LineNaive:
		return "naive"
	case LineThreshold:
		return "threshold"
	case LineBresenham:
		return "bresenham"
	case LineBresenhamFull:
		return "bresenham-full"
	default:
		return fmt.Sprintf("LineAlgorithm(%d)", int(a))
	}
}

// LinePoints returns the pixels which [DrawLine] would set for the segment
// from (x1, y1) to (x2, y2), in drawing order.
func LinePoints(x1, y1, x2, y2 int, alg LineAlgorithm) ([]image.Point, error) {
	if x1 == x2 && y1 == y2 {
		return nil, fmt.Errorf("line (%d,%d)-(%d,%d): identical endpoints: %w",
			x1, y1, x2, y2, ErrInvalidGeometry)
	}

	switch alg {
	case LineNaive:
		if x1 == x2 {
			return nil, fmt.Errorf("naive line (%d,%d)-(%d,%d): vertical: %w",
				x1, y1, x2, y2, ErrInvalidGeometry)
		}
		return naiveLine(x1, y1, x2, y2), nil
	case LineThreshold:
		return thresholdLine(x1, y1, x2, y2), nil
	case LineBresenham:
		return bresenhamLine(x1, y1, x2, y2, false), nil
	case LineBresenhamFull:
		return bresenhamLine(x1, y1, x2, y2, true), nil
	default:
		return nil, fmt.Errorf("unknown line algorithm %d", int(alg))
	}
}

// DrawLine draws the segment from (x1, y1) to (x2, y2) into b using the
// given algorithm. Pixels outside the buffer are skipped; the returned error
// then joins one [ErrOutOfRange] per skipped pixel.
func DrawLine(b *Buffer, x1, y1, x2, y2 int, c Color, alg LineAlgorithm) error {
	pts, err := LinePoints(x1, y1, x2, y2, alg)
	if err != nil {
		return err
	}

	var errs []error
	for _, p := range pts {
		if err := b.SetPixel(p.X, p.Y, c); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		Logger().Warn("line pixels rejected",
			"algorithm", alg.String(), "rejected", len(errs), "total", len(pts))
	}
	return errors.Join(errs...)
}

func naiveLine(x1, y1, x2, y2 int) []image.Point {
	m := float64(y2-y1) / float64(x2-x1)
	y := float64(y1)

	var pts []image.Point
	for x := x1; x < x2; x++ {
		y += m
		pts = append(pts, image.Pt(x, int(math.Floor(y))))
	}
	return pts
}

func thresholdLine(x1, y1, x2, y2 int) []image.Point {
	if x2 <= x1 {
		return nil
	}
	m := math.Abs(float64(y2-y1) / float64(x2-x1))

	pts := make([]image.Point, 0, x2-x1)
	errAcc := 0.0
	y := y1
	for x := x1; x < x2; x++ {
		pts = append(pts, image.Pt(x, y))
		errAcc += m
		if errAcc >= 0.5 {
			y++
			errAcc -= 1.0
		}
	}
	return pts
}

func bresenhamLine(x1, y1, x2, y2 int, full bool) []image.Point {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx := -1
	if x1 < x2 {
		sx = 1
	}
	sy := -1
	if y1 < y2 {
		sy = 1
	}
	e := dx - dy

	pts := make([]image.Point, 0, max(dx, dy)+1)
	for {
		if full {
			pts = append(pts, image.Pt(x1, y1))
			if x1 == x2 && y1 == y2 {
				break
			}
		} else {
			if x1 == x2 || y1 == y2 {
				break
			}
			pts = append(pts, image.Pt(x1, y1))
		}
		e2 := 2 * e
		if e2 > -dy {
			e -= dy
			x1 += sx
		}
		if e2 < dx {
			e += dx
			y1 += sy
		}
	}
	return pts
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
