package svgbuild

import "strings"

// PolygonOptions configures Polygon.
//
//	DisableAntiAliasing: adds shape-rendering="crispEdges".
type PolygonOptions struct {
	Stroke              string  `mapstructure:"stroke"`
	Fill                string  `mapstructure:"fill"`
	StrokeWidth         float64 `mapstructure:"stroke_width"`
	DisableAntiAliasing bool    `mapstructure:"disable_anti_aliasing"`
}

// Polygon writes a polygon element through the given points, in order.
func (d *Document) Polygon(points []Point, opts PolygonOptions) {
	d.put(` <polygon points="`, formatPoints(points))
	d.put(`" stroke-width="`, formatNumber(strokeWidth(opts.StrokeWidth)))
	d.put(`"`)
	d.attr("fill", opts.Fill)
	d.attr("stroke", opts.Stroke)
	if opts.DisableAntiAliasing {
		d.put(` shape-rendering="crispEdges"`)
	}
	d.put("/>\n")
}

// formatPoints renders points as "x1,y1 x2,y2 ...".
func formatPoints(points []Point) string {
	parts := make([]string, len(points))
	for i, p := range points {
		parts[i] = formatNumber(p.X) + "," + formatNumber(p.Y)
	}
	return strings.Join(parts, " ")
}
