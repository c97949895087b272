package svgbuild

// RotationTransform returns the value of a transform attribute that
// rotates by degrees around (xCenter, yCenter), e.g. "rotate(45 10 20)".
func RotationTransform(degrees, xCenter, yCenter float64) string {
	return "rotate(" + formatNumbers(degrees, xCenter, yCenter) + ")"
}
