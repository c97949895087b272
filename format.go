package svgbuild

import (
	"strconv"
	"strings"
)

// formatNumber renders a coordinate or length the way every emitter in
// this package writes numbers: the shortest decimal that round-trips,
// never in exponent form.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatNumbers(vs ...float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = formatNumber(v)
	}
	return strings.Join(parts, " ")
}
