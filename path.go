package svgbuild

import "strings"

// PathBuilder accumulates path commands and renders them into the value
// of an SVG path's d attribute.
//
// Nothing is validated or escaped: arguments are stringified as given,
// and arc flags outside {0, 1} produce an invalid description. Keeping
// the flags in range is the caller's contract.
type PathBuilder struct {
	commands []PathCommand
}

// NewPathBuilder returns an empty PathBuilder. The zero value is usable
// as well.
func NewPathBuilder() *PathBuilder {
	return &PathBuilder{}
}

func (p *PathBuilder) put(c PathCommand) *PathBuilder {
	p.commands = append(p.commands, c)
	return p
}

// MoveTo appends "M x y".
func (p *PathBuilder) MoveTo(x, y float64) *PathBuilder {
	return p.put(PathCommand{Kind: MoveCommand, Args: []float64{x, y}})
}

// LineTo appends "L x y".
func (p *PathBuilder) LineTo(x, y float64) *PathBuilder {
	return p.put(PathCommand{Kind: LineCommand, Args: []float64{x, y}})
}

// ArcTo appends an elliptical arc command
// "A rx ry xAxisRotation largeArcFlag sweepFlag dx dy".
func (p *PathBuilder) ArcTo(rx, ry, xAxisRotation float64, largeArcFlag, sweepFlag int, dx, dy float64) *PathBuilder {
	return p.put(PathCommand{
		Kind: ArcCommand,
		Args: []float64{rx, ry, xAxisRotation, float64(largeArcFlag), float64(sweepFlag), dx, dy},
	})
}

// Len returns the number of commands appended so far.
func (p *PathBuilder) Len() int {
	return len(p.commands)
}

// Commands returns a deep copy of the commands in emission order.
func (p *PathBuilder) Commands() []PathCommand {
	out := make([]PathCommand, len(p.commands))
	for i, c := range p.commands {
		out[i] = PathCommand{Kind: c.Kind, Args: append([]float64(nil), c.Args...)}
	}
	return out
}

// Render joins the commands with single spaces. It can be called any
// number of times; the result only changes when commands are appended.
func (p *PathBuilder) Render() string {
	parts := make([]string, len(p.commands))
	for i, c := range p.commands {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
