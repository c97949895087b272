package svgbuild

// CircleOptions configures Circle. Fill and Stroke are only written when
// set; a zero StrokeWidth means 1.
type CircleOptions struct {
	Stroke      string  `mapstructure:"stroke"`
	Fill        string  `mapstructure:"fill"`
	StrokeWidth float64 `mapstructure:"stroke_width"`
}

// Circle writes a circle element centered at (cx, cy) with radius r.
func (d *Document) Circle(cx, cy, r float64, opts CircleOptions) {
	d.put(` <circle cx="`, formatNumber(cx))
	d.put(`" cy="`, formatNumber(cy))
	d.put(`" r="`, formatNumber(r))
	d.put(`" stroke-width="`, formatNumber(strokeWidth(opts.StrokeWidth)))
	d.put(`"`)
	d.attr("fill", opts.Fill)
	d.attr("stroke", opts.Stroke)
	d.put("/>\n")
}
