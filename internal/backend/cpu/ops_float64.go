package cpu

import "gonum.org/v1/gonum/floats"

// Float64 row operations

func addRowFloat64(dst, a, b []float64) {
	floats.AddTo(dst, a, b)
}
