package nzgrid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolynomial(t *testing.T) {
	c := []float64{2, -3, 0.5}
	for _, x := range []float64{-1.5, 0, 0.25, 3} {
		want := 2*x - 3*x*x + 0.5*x*x*x
		assert.InDelta(t, want, polynomial(c, x), 1e-12)
		assert.InDelta(t, 2-6*x+1.5*x*x, polynomialDerivative(c, x), 1e-12)
	}
	assert.Equal(t, 0.0, polynomial(nil, 5))
}

func TestSineSeries(t *testing.T) {
	c := []float64{0.5, -0.25}
	x := 0.3
	assert.InDelta(t, 0.5*math.Sin(2*x)-0.25*math.Sin(4*x), sineSeries(c, x), 1e-15)
}

func TestNormalizeLongitude(t *testing.T) {
	assert.InDelta(t, math.Pi, normalizeLongitude(-math.Pi), 1e-15)
	assert.InDelta(t, math.Pi, normalizeLongitude(math.Pi), 1e-15)
	assert.InDelta(t, -math.Pi/2, normalizeLongitude(3*math.Pi/2), 1e-15)
	assert.InDelta(t, 0.1, normalizeLongitude(0.1+4*math.Pi), 1e-14)
	assert.Equal(t, 0.0, normalizeLongitude(0))
}

func TestComplexArithmetic(t *testing.T) {
	z := complexNum{re: 1, im: 2}
	w := complexNum{re: -3, im: 0.5}

	assert.Equal(t, complexNum{re: -2, im: 2.5}, z.add(w))
	assert.Equal(t, complexNum{re: 4, im: 1.5}, z.sub(w))
	assert.Equal(t, complexNum{re: -4, im: -5.5}, z.mul(w))
	assert.Equal(t, complexNum{re: 2, im: 4}, z.scale(2))
	assert.InDelta(t, math.Sqrt(5), z.abs(), 1e-15)

	q := z.mul(w).div(w)
	assert.InDelta(t, z.re, q.re, 1e-15)
	assert.InDelta(t, z.im, q.im, 1e-15)
}

func TestComplexPolynomial(t *testing.T) {
	c := []complexNum{{1, 0}, {0, 1}}
	z := complexNum{re: 0.5, im: -0.5}

	// z + i*z^2
	z2 := z.mul(z)
	want := z.add(complexNum{re: -z2.im, im: z2.re})
	got := complexPolynomial(c, z)
	assert.InDelta(t, want.re, got.re, 1e-15)
	assert.InDelta(t, want.im, got.im, 1e-15)

	// 1 + 2i*z
	d := complexPolynomialDerivative(c, z)
	assert.InDelta(t, 1+(-2*z.im), d.re, 1e-15)
	assert.InDelta(t, 2*z.re, d.im, 1e-15)
}

func TestInvertGridSeries(t *testing.T) {
	zeta := complexNum{re: 0.05, im: -0.03}
	got, err := invertGridSeries(complexPolynomial(nzmgB, zeta))
	assert.NoError(t, err)
	assert.InDelta(t, zeta.re, got.re, 1e-15)
	assert.InDelta(t, zeta.im, got.im, 1e-15)

	_, err = invertGridSeries(complexNum{re: math.NaN()})
	assert.ErrorIs(t, err, ErrConvergenceFailure)
}

func TestInvertLatitudeSeries(t *testing.T) {
	dPhi := 0.2
	got, err := invertLatitudeSeries(polynomial(nzmgA, dPhi))
	assert.NoError(t, err)
	assert.InDelta(t, dPhi, got, 1e-12)

	for _, dPsi := range []float64{math.NaN(), math.Inf(1)} {
		_, err = invertLatitudeSeries(dPsi)
		assert.ErrorIs(t, err, ErrConvergenceFailure)
	}
}
