package blochviz

import (
	"fmt"
	"math"
)

var fractionLabels = map[float64]string{
	0.25:  "PI/4",
	0.5:   "PI/2",
	1.0:   "PI",
	2.0:   "2*PI",
	-0.25: "-PI/4",
	-0.5:  "-PI/2",
	-1.0:  "-PI",
	-2.0:  "-2*PI",
}

// Fractions lists the supported multiples of π in the order they are offered.
func Fractions() []float64 {
	return []float64{0.25, 0.5, 1.0, 2.0, -0.25, -0.5, -1.0, -2.0}
}

// FractionLabel renders a supported fraction the way the angle picker shows it.
func FractionLabel(fraction float64) string {
	if label, ok := fractionLabels[fraction]; ok {
		return label
	}
	return fmt.Sprintf("%v*PI", fraction)
}

/*
Resolve maps one of the eight quantized angle choices to radians.
Anything outside the closed set is rejected, even if it would be a
valid angle on its own.
*/
func Resolve(fraction float64) (float64, error) {
	if _, ok := fractionLabels[fraction]; !ok {
		return 0, fmt.Errorf("%w: %v", ErrUnsupportedFraction, fraction)
	}
	return fraction * math.Pi, nil
}
