package svgbuild

import "math"

// Point is an (x, y) pair in SVG user space: origin top left, y growing
// downwards.
type Point struct {
	X float64 `mapstructure:"x"`
	Y float64 `mapstructure:"y"`
}

// PolarToCartesian returns the point on the circle of radius r centered
// at (cx, cy) at angle theta. Theta is in radians, measured clockwise
// from 12 o'clock.
func PolarToCartesian(cx, cy, r, theta float64) Point {
	return Point{
		X: cx - r*math.Sin(theta),
		Y: cy - r*math.Cos(theta),
	}
}

// LargeArcFlag returns 1 when the span between the two angles is
// strictly greater than pi, 0 otherwise. A span of exactly pi yields 0.
func LargeArcFlag(startRadians, endRadians float64) int {
	if math.Abs(startRadians-endRadians) > math.Pi {
		return 1
	}
	return 0
}

// WedgePath builds the outline of a pie wedge: from the end point to the
// center, out to the start point, and along the arc back to the end
// point.
func WedgePath(cx, cy, r, startRadians, endRadians float64) *PathBuilder {
	return wedgePath(cx, cy, r, startRadians, endRadians, LargeArcFlag(startRadians, endRadians))
}

func wedgePath(cx, cy, r, startRadians, endRadians float64, largeArc int) *PathBuilder {
	start := PolarToCartesian(cx, cy, r, startRadians)
	end := PolarToCartesian(cx, cy, r, endRadians)

	path := NewPathBuilder()
	path.MoveTo(end.X, end.Y)
	path.LineTo(cx, cy)
	path.LineTo(start.X, start.Y)
	path.ArcTo(r, r, 0, largeArc, 0, end.X, end.Y)
	return path
}

// Arc writes a filled pie wedge (circular sector) as a path element.
// Angles are radians clockwise from vertical. An empty fill leaves the
// fill attribute out.
//
// Adjacent wedges sharing an angle can show a faint seam caused by
// anti-aliasing. Render with shape-rendering="crispEdges" or draw a
// separate path that strokes the outside of the circle if that matters.
func (d *Document) Arc(cx, cy, r, startRadians, endRadians float64, fill string) {
	largeArc := LargeArcFlag(startRadians, endRadians)
	path := wedgePath(cx, cy, r, startRadians, endRadians, largeArc)

	d.put(` <path d="`, path.Render(), `"`)
	if fill != "" {
		d.put(` fill="`, fill, `"`)
	}
	d.put("/>\n")

	d.Log().Debug().Str("Method", "Arc").Float64("Start", startRadians).Float64("End", endRadians).
		Int("LargeArcFlag", largeArc).Msg("wedge written")
}
