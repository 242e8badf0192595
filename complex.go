package nzgrid

import "math"

// complexNum is a complex value used by the NZMG series. The real part
// carries the northing (latitude) component and the imaginary part the
// easting (longitude) component.
type complexNum struct {
	re float64
	im float64
}

func (z complexNum) add(w complexNum) complexNum {
	return complexNum{re: z.re + w.re, im: z.im + w.im}
}

func (z complexNum) sub(w complexNum) complexNum {
	return complexNum{re: z.re - w.re, im: z.im - w.im}
}

func (z complexNum) mul(w complexNum) complexNum {
	return complexNum{
		re: z.re*w.re - z.im*w.im,
		im: z.re*w.im + z.im*w.re,
	}
}

func (z complexNum) scale(s float64) complexNum {
	return complexNum{re: z.re * s, im: z.im * s}
}

func (z complexNum) div(w complexNum) complexNum {
	d := w.re*w.re + w.im*w.im
	return complexNum{
		re: (z.re*w.re + z.im*w.im) / d,
		im: (z.im*w.re - z.re*w.im) / d,
	}
}

func (z complexNum) abs() float64 {
	return math.Hypot(z.re, z.im)
}

// complexPolynomial evaluates c[0]*z + c[1]*z^2 + ... + c[n-1]*z^n.
func complexPolynomial(c []complexNum, z complexNum) complexNum {
	var sum complexNum
	for i := len(c) - 1; i >= 0; i-- {
		sum = sum.add(c[i]).mul(z)
	}
	return sum
}

// complexPolynomialDerivative evaluates the derivative of
// complexPolynomial(c, z).
func complexPolynomialDerivative(c []complexNum, z complexNum) complexNum {
	var sum complexNum
	for i := len(c) - 1; i >= 0; i-- {
		sum = sum.mul(z).add(c[i].scale(float64(i + 1)))
	}
	return sum
}
