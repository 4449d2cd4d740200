package glyph2svg

import (
	"math"

	"github.com/esimov/glyph2svg/utils"
)

// SegmentOp identifies a path drawing operation.
type SegmentOp int

// The supported outline operations.
const (
	MoveTo SegmentOp = iota
	LineTo
	QuadTo
	CubeTo
	ClosePath
)

// Point is a position in font design units, with the y axis pointing up.
type Point struct {
	X, Y float64
}

// Segment is a single outline operation together with its control and end points.
// Only the first Op.NumPoints() entries of Args are used.
type Segment struct {
	Op   SegmentOp
	Args [3]Point
}

// NumPoints returns the number of points consumed by the operation.
func (op SegmentOp) NumPoints() int {
	switch op {
	case MoveTo, LineTo:
		return 1
	case QuadTo:
		return 2
	case CubeTo:
		return 3
	}
	return 0
}

// Outline holds the shape and the metrics of a glyph, expressed in font design units.
type Outline struct {
	Segments   []Segment
	Advance    float64
	Ascent     float64
	Descent    float64 // negative for descents below the baseline
	UnitsPerEm float64
}

// Bounds returns the bounding box of all the outline points.
// The second return value is false for empty outlines.
func (o *Outline) Bounds() (min, max Point, ok bool) {
	min = Point{math.Inf(1), math.Inf(1)}
	max = Point{math.Inf(-1), math.Inf(-1)}

	for _, seg := range o.Segments {
		for _, p := range seg.Args[:seg.Op.NumPoints()] {
			min.X, min.Y = utils.Min(min.X, p.X), utils.Min(min.Y, p.Y)
			max.X, max.Y = utils.Max(max.X, p.X), utils.Max(max.Y, p.Y)
			ok = true
		}
	}
	if !ok {
		return Point{}, Point{}, false
	}
	return min, max, true
}

// Width returns the horizontal extent used when rendering the glyph.
// Glyphs without an advance width (e.g. combining marks) fall back
// to the right edge of their outline and then to the em size.
func (o *Outline) Width() float64 {
	if o.Advance > 0 {
		return o.Advance
	}
	if _, max, ok := o.Bounds(); ok && max.X > 0 {
		return max.X
	}
	return o.UnitsPerEm
}

// Height returns the vertical extent between the ascent and the descent line.
func (o *Outline) Height() float64 {
	if h := o.Ascent - o.Descent; h > 0 {
		return h
	}
	return o.UnitsPerEm
}

// Top returns the upper edge of the rendering box.
func (o *Outline) Top() float64 {
	if o.Ascent-o.Descent > 0 {
		return o.Ascent
	}
	return o.UnitsPerEm
}
