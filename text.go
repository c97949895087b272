package svgbuild

// TextOptions configures Text. Empty Fill means "black", zero FontSize
// means 14 and empty Anchor means "start". The remaining attributes are
// only written when set.
type TextOptions struct {
	Fill              string  `mapstructure:"fill"`
	FontSize          float64 `mapstructure:"font_size"`
	Anchor            string  `mapstructure:"anchor"`
	AlignmentBaseline string  `mapstructure:"alignment_baseline"`
	Hidden            bool    `mapstructure:"hidden"`
	CSSClass          string  `mapstructure:"css_class"`
	ID                string  `mapstructure:"id"`
	Transform         string  `mapstructure:"transform"`
}

// Text writes a text element at (x, y). The content is inserted as is:
// escaping XML special characters is up to the caller.
func (d *Document) Text(content string, x, y float64, opts TextOptions) {
	fill := opts.Fill
	if fill == "" {
		fill = "black"
	}
	fontSize := opts.FontSize
	if fontSize == 0 {
		fontSize = 14
	}
	anchor := opts.Anchor
	if anchor == "" {
		anchor = "start"
	}

	d.put(` <text x="`, formatNumber(x))
	d.put(`" y="`, formatNumber(y))
	d.put(`" fill="`, fill)
	d.put(`" font-size="`, formatNumber(fontSize))
	d.put(`" text-anchor="`, anchor)
	d.put(`"`)

	d.attr("alignment-baseline", opts.AlignmentBaseline)
	if opts.Hidden {
		d.put(` visibility="hidden"`)
	}
	d.attr("transform", opts.Transform)
	d.attr("class", opts.CSSClass)
	d.attr("id", opts.ID)

	d.put(">", content, "</text>\n")
}
