package featvec

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary is a point-in-time snapshot of a vector's distribution.
type Summary struct {
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// Summarize computes descriptive statistics over v's elements.
// Useful when eyeballing whether synthetic output resembles the
// classifier's expected input distribution.
func Summarize(v Vector) Summary {
	xs := v.Floats64()
	return Summary{
		Mean:   stat.Mean(xs, nil),
		StdDev: stat.StdDev(xs, nil),
		Min:    floats.Min(xs),
		Max:    floats.Max(xs),
	}
}
