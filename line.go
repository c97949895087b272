package svgbuild

// LineOptions configures Line. An empty Stroke means "black" and a zero
// StrokeWidth means 1.
type LineOptions struct {
	Stroke      string  `mapstructure:"stroke"`
	StrokeWidth float64 `mapstructure:"stroke_width"`
}

// Line writes a line element from (x1, y1) to (x2, y2).
func (d *Document) Line(x1, y1, x2, y2 float64, opts LineOptions) {
	stroke := opts.Stroke
	if stroke == "" {
		stroke = "black"
	}

	d.put(` <line x1="`, formatNumber(x1))
	d.put(`" y1="`, formatNumber(y1))
	d.put(`" x2="`, formatNumber(x2))
	d.put(`" y2="`, formatNumber(y2))
	d.put(`" stroke="`, stroke)
	d.put(`" stroke-width="`, formatNumber(strokeWidth(opts.StrokeWidth)))
	d.put("\"/>\n")
}

// strokeWidth applies the default stroke width shared by all shapes.
func strokeWidth(w float64) float64 {
	if w == 0 {
		return 1
	}
	return w
}
