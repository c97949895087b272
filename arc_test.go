package svgbuild

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLargeArcFlagBoundary(t *testing.T) {
	eps := 1e-9

	assert.Equal(t, 0, LargeArcFlag(0, math.Pi), "span of exactly pi")
	assert.Equal(t, 1, LargeArcFlag(0, math.Pi+eps))
	assert.Equal(t, 0, LargeArcFlag(math.Pi, 0), "span is absolute")
	assert.Equal(t, 1, LargeArcFlag(math.Pi+eps, 0))
	assert.Equal(t, 0, LargeArcFlag(1, 1))
	assert.Equal(t, 1, LargeArcFlag(-2, 2))
}

func TestWedgePathHalfCircle(t *testing.T) {
	p := WedgePath(100, 100, 50, 0, math.Pi)

	require.Equal(t, "M 100 150 L 100 100 L 100 50 A 50 50 0 0 0 100 150", p.Render())

	cmds := p.Commands()
	require.Len(t, cmds, 4)
	require.Equal(t, []CommandKind{MoveCommand, LineCommand, LineCommand, ArcCommand},
		[]CommandKind{cmds[0].Kind, cmds[1].Kind, cmds[2].Kind, cmds[3].Kind})
	require.Equal(t, float64(0), cmds[3].Args[3])
}

func TestWedgePathLargeArc(t *testing.T) {
	p := WedgePath(0, 0, 1, 0, math.Pi+1e-6)

	arc := p.Commands()[3]
	require.Equal(t, ArcCommand, arc.Kind)
	require.Equal(t, float64(1), arc.Args[3], "large arc flag")
	require.Equal(t, float64(0), arc.Args[4], "sweep flag")
}

func TestWedgePathOrder(t *testing.T) {
	cx, cy, r := 30.0, 40.0, 12.0
	start, end := 0.3, 2.1

	cmds := WedgePath(cx, cy, r, start, end).Commands()
	s := PolarToCartesian(cx, cy, r, start)
	e := PolarToCartesian(cx, cy, r, end)

	require.Equal(t, []float64{e.X, e.Y}, cmds[0].Args, "starts at the end point")
	require.Equal(t, []float64{cx, cy}, cmds[1].Args, "through the center")
	require.Equal(t, []float64{s.X, s.Y}, cmds[2].Args, "out to the start point")
	require.Equal(t, []float64{r, r, 0, 0, 0, e.X, e.Y}, cmds[3].Args, "arcs back to the end point")
}

func TestPolarToCartesianOnCircle(t *testing.T) {
	centers := []Point{{0, 0}, {50, 50}, {-12.5, 300}, {1e3, -1e3}}
	radii := []float64{0.5, 1, 40, 999}
	angles := []float64{0, 0.1, math.Pi / 2, math.Pi, 4, 2 * math.Pi, -1.3, 17}

	for _, c := range centers {
		for _, r := range radii {
			for _, theta := range angles {
				p := PolarToCartesian(c.X, c.Y, r, theta)
				dx, dy := p.X-c.X, p.Y-c.Y
				assert.InDelta(t, r*r, dx*dx+dy*dy, 1e-6*r*r)
			}
		}
	}
}

func TestPolarToCartesianDirections(t *testing.T) {
	top := PolarToCartesian(10, 10, 5, 0)
	assert.InDelta(t, 10, top.X, 1e-12)
	assert.InDelta(t, 5, top.Y, 1e-12)

	quarter := PolarToCartesian(10, 10, 5, math.Pi/2)
	assert.InDelta(t, 5, quarter.X, 1e-12)
	assert.InDelta(t, 10, quarter.Y, 1e-12)
}

func TestDocumentArc(t *testing.T) {
	doc := NewDocument()
	doc.Arc(100, 100, 50, 0, math.Pi, "#336699")
	doc.Arc(100, 100, 50, 0, math.Pi, "")

	out := doc.String()
	require.Equal(t,
		` <path d="M 100 150 L 100 100 L 100 50 A 50 50 0 0 0 100 150" fill="#336699"/>`+"\n"+
			` <path d="M 100 150 L 100 100 L 100 50 A 50 50 0 0 0 100 150"/>`+"\n",
		out)
	require.Equal(t, 1, strings.Count(out, "fill="))
}

func TestWedgePathMatchesDocumentArc(t *testing.T) {
	for _, end := range []float64{1, math.Pi, math.Pi + 1e-6, 5} {
		doc := NewDocument()
		doc.Arc(20, 20, 10, 0, end, "")

		want := ` <path d="` + WedgePath(20, 20, 10, 0, end).Render() + `"/>` + "\n"
		require.Equal(t, want, doc.String())
	}
}
