package nzgrid

import (
	"math"

	"github.com/golang/geo/s1"
)

// polynomial evaluates c[0]*x + c[1]*x^2 + ... + c[n-1]*x^n.
// There is no constant term.
func polynomial(c []float64, x float64) float64 {
	sum := 0.0
	for i := len(c) - 1; i >= 0; i-- {
		sum = (sum + c[i]) * x
	}
	return sum
}

// polynomialDerivative evaluates the derivative of polynomial(c, x).
func polynomialDerivative(c []float64, x float64) float64 {
	sum := 0.0
	for i := len(c) - 1; i >= 0; i-- {
		sum = sum*x + float64(i+1)*c[i]
	}
	return sum
}

// sineSeries evaluates c[0]*sin(2x) + c[1]*sin(4x) + ... + c[n-1]*sin(2nx).
func sineSeries(c []float64, x float64) float64 {
	sum := 0.0
	for k := len(c) - 1; k >= 0; k-- {
		sum += c[k] * math.Sin(float64(2*(k+1))*x)
	}
	return sum
}

// normalizeLongitude returns the equivalent angle in (-Pi, Pi].
func normalizeLongitude(lon float64) float64 {
	return s1.Angle(lon).Normalized().Radians()
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
