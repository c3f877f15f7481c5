// Package scanline rasterizes simple polygons into an RGBA pixel buffer using
// an edge table and an active edge list, and draws lines with naive and
// Bresenham stepping.
//
// Polygons are added to a [Rasterizer], which sorts their edges into per-row
// buckets. [Rasterizer.Raster] then sweeps the buffer row by row, keeps the
// edges crossing the current row in an [ActiveEdgeList] ordered by their
// x-intersection, and paints the pixels selected by the [FillRule].
package scanline

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf

import (
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/scanline/testcases"
)

// BackgroundColor is the colour RenderTestCase clears the buffer to.
const BackgroundColor Color = 0x000000ff

// RenderTestCase renders a test case into a newly allocated buffer,
// cleared to BackgroundColor, using DefaultColor for painting.
func RenderTestCase(tc testcases.TestCase) (*Buffer, error) {
	buf, err := NewBuffer(make([]byte, tc.Width*tc.Height*4), tc.Width, tc.Height)
	if err != nil {
		return nil, err
	}
	buf.Clear(BackgroundColor)

	ctm := tc.CTM
	if ctm == (matrix.Matrix{}) {
		ctm = matrix.Identity
	}

	switch op := tc.Op.(type) {
	case testcases.Fill:
		r := NewBufferRasterizer(buf)
		r.CTM = ctm
		if op.Rule == testcases.EvenOdd {
			r.Rule = FillEvenOdd
		}
		if err := r.AddPath(tc.Path); err != nil {
			return buf, err
		}
		err = r.Raster()

	case testcases.Lines:
		err = drawPathLines(buf, tc.Path, ctm, lineAlgorithm(op.Algorithm))

	default:
		err = fmt.Errorf("unsupported operation %T", tc.Op)
	}
	return buf, err
}

func lineAlgorithm(a testcases.LineAlgorithm) LineAlgorithm {
	switch a {
	case testcases.Threshold:
		return LineThreshold
	case testcases.Bresenham:
		return LineBresenham
	case testcases.BresenhamFull:
		return LineBresenhamFull
	default:
		return LineNaive
	}
}

// drawPathLines draws every segment of p, mapped through ctm and rounded
// to whole pixels. A rejected segment does not stop the remaining ones;
// the returned error joins the errors of all segments.
func drawPathLines(buf *Buffer, p path.Path, ctm matrix.Matrix, alg LineAlgorithm) error {
	device := func(v vec.Vec2) (int, int) {
		x := ctm[0]*v.X + ctm[2]*v.Y + ctm[4]
		y := ctm[1]*v.X + ctm[3]*v.Y + ctm[5]
		return int(math.Round(x)), int(math.Round(y))
	}

	var current, start vec.Vec2
	line := func(to vec.Vec2) error {
		x1, y1 := device(current)
		x2, y2 := device(to)
		current = to
		return DrawLine(buf, x1, y1, x2, y2, DefaultColor, alg)
	}

	var errs []error
	for cmd, pts := range p {
		var err error
		switch cmd {
		case path.CmdMoveTo:
			current = pts[0]
			start = current
		case path.CmdLineTo:
			err = line(pts[0])
		case path.CmdQuadTo, path.CmdCubeTo:
			err = line(pts[len(pts)-1])
		case path.CmdClose:
			if current != start {
				err = line(start)
			}
		}
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
