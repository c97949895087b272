package svgbuild

// RectOptions configures Rect. Only the attributes whose option is set
// are written; a zero StrokeWidth means 1.
//
//	OnMouseMove, OnMouseOut: event handler script text.
//	Hidden: adds visibility="hidden".
//	LinkTarget: wraps the rect in <a xlink:href="...">.
type RectOptions struct {
	Fill        string  `mapstructure:"fill"`
	Stroke      string  `mapstructure:"stroke"`
	StrokeWidth float64 `mapstructure:"stroke_width"`
	OnMouseMove string  `mapstructure:"onmousemove"`
	OnMouseOut  string  `mapstructure:"onmouseout"`
	Hidden      bool    `mapstructure:"hidden"`
	CSSClass    string  `mapstructure:"css_class"`
	ID          string  `mapstructure:"id"`
	LinkTarget  string  `mapstructure:"link_target"`
}

// Rect writes a rect element. Without a link target no trailing newline
// is written.
func (d *Document) Rect(x, y, width, height float64, opts RectOptions) {
	d.put(" ")
	if opts.LinkTarget != "" {
		d.put(`<a xlink:href="`, opts.LinkTarget, `">`)
	}
	d.put(`<rect x="`, formatNumber(x))
	d.put(`" y="`, formatNumber(y))
	d.put(`" width="`, formatNumber(width))
	d.put(`" height="`, formatNumber(height))
	d.put(`" stroke-width="`, formatNumber(strokeWidth(opts.StrokeWidth)))
	d.put(`"`)

	d.attr("fill", opts.Fill)
	d.attr("stroke", opts.Stroke)
	d.attr("onmousemove", opts.OnMouseMove)
	d.attr("onmouseout", opts.OnMouseOut)
	if opts.Hidden {
		d.put(` visibility="hidden"`)
	}
	d.attr("class", opts.CSSClass)
	d.attr("id", opts.ID)

	d.put("/>")
	if opts.LinkTarget != "" {
		d.put("</a>\n")
	}
}

// attr writes ` name="value"` unless value is empty.
func (d *Document) attr(name, value string) {
	if value == "" {
		return
	}
	d.put(" ", name, `="`, value, `"`)
}
