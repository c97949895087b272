package svgbuild

// CommandKind tells which path mini-language command a PathCommand
// renders to.
type CommandKind int

// These are the path commands a PathBuilder can emit.
const (
	MoveCommand CommandKind = iota
	LineCommand
	ArcCommand
)

// Letter returns the absolute command letter for the kind.
func (k CommandKind) Letter() string {
	switch k {
	case MoveCommand:
		return "M"
	case LineCommand:
		return "L"
	case ArcCommand:
		return "A"
	}
	return "?"
}

// PathCommand is a single entry of a path description. Move and line
// commands carry (x, y); arc commands carry
// (rx, ry, xAxisRotation, largeArcFlag, sweepFlag, dx, dy).
type PathCommand struct {
	Kind CommandKind
	Args []float64
}

// String renders the command in its canonical textual form, e.g.
// "M 10 20" or "A 5 5 0 1 0 10 20". Args are written as they are, so a
// command with missing operands renders short rather than failing.
func (c PathCommand) String() string {
	if len(c.Args) == 0 {
		return c.Kind.Letter()
	}
	return c.Kind.Letter() + " " + formatNumbers(c.Args...)
}
