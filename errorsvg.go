package svgbuild

import "io"

// ErrorSVGOptions configures RenderErrorSVGWithOptions. Zero Width and
// Height fall back to 800 and 600. LogOutput, when set, receives a warn
// level entry carrying the error text.
type ErrorSVGOptions struct {
	Width       float64   `mapstructure:"width"`
	Height      float64   `mapstructure:"height"`
	ViewBoxMode bool      `mapstructure:"view_box_mode"`
	LogOutput   io.Writer `mapstructure:"-"`
}

// DefaultErrorSVGOptions returns an 800x600 view box setup.
func DefaultErrorSVGOptions() ErrorSVGOptions {
	return ErrorSVGOptions{Width: 800, Height: 600, ViewBoxMode: true}
}

// RenderErrorSVG returns a complete document showing errorText in red.
// It is meant as a fallback image when rendering failed upstream.
func RenderErrorSVG(errorText string) string {
	return RenderErrorSVGWithOptions(errorText, DefaultErrorSVGOptions())
}

// RenderErrorSVGWithOptions is RenderErrorSVG with a custom size and
// sizing mode. ViewBoxMode is taken as given, so a zero ErrorSVGOptions
// writes width and height attributes; start from DefaultErrorSVGOptions
// to keep the view box.
func RenderErrorSVGWithOptions(errorText string, opts ErrorSVGOptions) string {
	if opts.Width == 0 {
		opts.Width = 800
	}
	if opts.Height == 0 {
		opts.Height = 600
	}

	doc := &Document{LogOutput: opts.LogOutput}
	doc.Log().Warn().Str("Method", "RenderErrorSVG").Str("Error", errorText).Msg("rendering error placeholder")

	doc.Begin(opts.Width, opts.Height, BeginOptions{ViewBoxMode: opts.ViewBoxMode})
	doc.Text(errorText, 10, 280, TextOptions{Fill: "#AA0000"})
	doc.End()

	return doc.String()
}
