package svgbuild

import (
	"io"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// GeneratorComment is written right after the opening svg tag of every
// document.
const GeneratorComment = "<!-- Generated using the Little Fish Solutions LTD SVG Generator Library. Enjoy! -->"

// Document accumulates the markup of one SVG document as an ordered list
// of fragments. Call Begin first, then any number of shape emitters,
// then End, and finally String to get the markup. The order is the
// caller's contract; Document does not check it.
//
// A Document is not safe for concurrent mutation. Use one per rendering
// task.
//
// LogOutput: io.Writer for debug logging. Pass nil to disable logging.
type Document struct {
	LogOutput io.Writer

	data        []string
	initLogOnce sync.Once
	logger      zerolog.Logger
}

// BeginOptions configures the opening svg tag.
//
// With ViewBoxMode set the document declares viewBox="0 0 width height"
// instead of fixed width and height attributes. A non-empty OnLoad is
// written as the onload attribute.
type BeginOptions struct {
	OnLoad      string `mapstructure:"onload"`
	ViewBoxMode bool   `mapstructure:"view_box_mode"`
}

// NewDocument returns an empty Document.
func NewDocument() *Document {
	return &Document{}
}

// Log returns the document's logger, initializing it lazily if LogOutput
// is set.
func (d *Document) Log() *zerolog.Logger {
	d.initLogOnce.Do(func() {
		if d.LogOutput != nil {
			d.logger = zerolog.New(d.LogOutput).With().Timestamp().Logger()
		} else {
			d.logger = zerolog.Nop()
		}
	})
	return &d.logger
}

func (d *Document) put(s ...string) {
	d.data = append(d.data, s...)
}

// Begin writes the opening svg tag with its namespace declarations,
// followed by the generator comment.
func (d *Document) Begin(width, height float64, opts BeginOptions) {
	d.put(`<svg xmlns:svg="http://www.w3.org/2000/svg" `)
	d.put(`xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" `)

	if opts.ViewBoxMode {
		d.put(`viewBox="0 0 `, formatNumber(width), " ", formatNumber(height))
	} else {
		d.put(`width="`, formatNumber(width), `" height="`, formatNumber(height))
	}

	d.put(`" version="1.1"`)
	if opts.OnLoad != "" {
		d.put(` onload="`, opts.OnLoad, `"`)
	}
	d.put(">")
	d.put("\n " + GeneratorComment + "\n")

	d.Log().Debug().Str("Method", "Begin").Float64("Width", width).Float64("Height", height).
		Bool("ViewBoxMode", opts.ViewBoxMode).Msg("document started")
}

// End writes the closing svg tag.
func (d *Document) End() {
	d.put("</svg>")
	d.Log().Debug().Str("Method", "End").Int("Fragments", len(d.data)).Msg("document finished")
}

// String returns the markup accumulated so far.
func (d *Document) String() string {
	return strings.Join(d.data, "")
}

// Document is an alias of String kept for callers that think of the
// builder as producing "the document".
func (d *Document) Document() string {
	return d.String()
}

// WriteTo writes the accumulated markup to w. It implements io.WriterTo.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, frag := range d.data {
		n, err := io.WriteString(w, frag)
		total += int64(n)
		if err != nil {
			return total, errors.Wrap(err, "svg document write error")
		}
	}
	return total, nil
}
