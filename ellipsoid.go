package nzgrid

import (
	"fmt"
	"math"
)

// rectifyingTerms is the number of sine terms kept in the rectifying
// latitude series, one per power of the third flattening up to n^6.
const rectifyingTerms = 6

// Ellipsoid is an immutable reference ellipsoid. The zero value is not
// usable; construct one with NewEllipsoid or use International1924 or GRS80.
type Ellipsoid struct {
	semiMajorAxis     float64
	inverseFlattening float64
	flattening        float64
	e2                float64 // Eccentricity squared
	ep2               float64 // Second eccentricity squared
	n                 float64 // Third flattening, (a-b)/(a+b)

	rectifyingRadius float64 // Meridian arc length of one radian of rectifying latitude

	// Sine series coefficients, geodetic to rectifying latitude and back.
	toRectifying   [rectifyingTerms]float64
	fromRectifying [rectifyingTerms]float64
}

// NewEllipsoid constructs an ellipsoid from its semi-major axis in metres and
// its inverse flattening.
func NewEllipsoid(semiMajorAxis, inverseFlattening float64) (Ellipsoid, error) {
	if !isFinite(semiMajorAxis) || semiMajorAxis <= 0 {
		return Ellipsoid{}, fmt.Errorf("%w: semi-major axis must be greater than zero, got %v",
			ErrInvalidParameter, semiMajorAxis)
	}
	if !isFinite(inverseFlattening) || inverseFlattening <= 0 {
		return Ellipsoid{}, fmt.Errorf("%w: inverse flattening must be greater than zero, got %v",
			ErrInvalidParameter, inverseFlattening)
	}
	if inverseFlattening <= 1 {
		return Ellipsoid{}, fmt.Errorf("%w: inverse flattening %v gives a flattening outside (0, 1)",
			ErrInvalidParameter, inverseFlattening)
	}

	f := 1 / inverseFlattening
	e := Ellipsoid{
		semiMajorAxis:     semiMajorAxis,
		inverseFlattening: inverseFlattening,
		flattening:        f,
		e2:                f * (2 - f),
		n:                 f / (2 - f),
	}
	e.ep2 = e.e2 / (1 - e.e2)
	e.generateCoefficients()
	return e, nil
}

// generateCoefficients fills the rectifying latitude series. The series are
// expansions in Helmert's n to sixth order; the forward and inverse series
// are truncated at the same order so that FootpointLatitude inverts
// MeridianArc to near machine precision.
func (e *Ellipsoid) generateCoefficients() {
	n1 := e.n
	n2 := n1 * n1
	n3 := n2 * n1
	n4 := n3 * n1
	n5 := n4 * n1
	n6 := n5 * n1

	coeff := 1.0
	coeff += n2 / 4
	coeff += n4 / 64
	coeff += n6 / 256
	e.rectifyingRadius = e.semiMajorAxis * coeff / (1 + n1)

	// geodetic -> rectifying
	e.toRectifying[0] = -3.0*n1/2.0 + 9.0*n3/16.0 - 3.0*n5/32.0
	e.toRectifying[1] = 15.0*n2/16.0 - 15.0*n4/32.0 + 135.0*n6/2048.0
	e.toRectifying[2] = -35.0*n3/48.0 + 105.0*n5/256.0
	e.toRectifying[3] = 315.0*n4/512.0 - 189.0*n6/512.0
	e.toRectifying[4] = -693.0 * n5 / 1280.0
	e.toRectifying[5] = 1001.0 * n6 / 2048.0

	// rectifying -> geodetic
	e.fromRectifying[0] = 3.0*n1/2.0 - 27.0*n3/32.0 + 269.0*n5/512.0
	e.fromRectifying[1] = 21.0*n2/16.0 - 55.0*n4/32.0 + 6759.0*n6/4096.0
	e.fromRectifying[2] = 151.0*n3/96.0 - 417.0*n5/128.0
	e.fromRectifying[3] = 1097.0*n4/512.0 - 15543.0*n6/2560.0
	e.fromRectifying[4] = 8011.0 * n5 / 2560.0
	e.fromRectifying[5] = 293393.0 * n6 / 61440.0
}

// SemiMajorAxis returns the equatorial radius in metres.
func (e Ellipsoid) SemiMajorAxis() float64 { return e.semiMajorAxis }

// InverseFlattening returns 1/f.
func (e Ellipsoid) InverseFlattening() float64 { return e.inverseFlattening }

// Flattening returns f.
func (e Ellipsoid) Flattening() float64 { return e.flattening }

// EccentricitySquared returns e^2 = f(2-f).
func (e Ellipsoid) EccentricitySquared() float64 { return e.e2 }

// SecondEccentricitySquared returns e'^2 = e^2/(1-e^2).
func (e Ellipsoid) SecondEccentricitySquared() float64 { return e.ep2 }

// ThirdFlattening returns n = f/(2-f).
func (e Ellipsoid) ThirdFlattening() float64 { return e.n }

// MeridianArc returns the distance in metres along the meridian from the
// equator to latitude lat (radians). It is negative in the southern
// hemisphere.
func (e Ellipsoid) MeridianArc(lat float64) float64 {
	return e.rectifyingRadius * (lat + sineSeries(e.toRectifying[:], lat))
}

// FootpointLatitude returns the latitude whose meridian arc length from the
// equator is arc metres. It is the inverse of MeridianArc.
func (e Ellipsoid) FootpointLatitude(arc float64) float64 {
	mu := arc / e.rectifyingRadius
	return mu + sineSeries(e.fromRectifying[:], mu)
}

// RadiiOfCurvature returns the radius of curvature in the prime vertical
// (nu) and in the meridian (rho) at latitude lat, both in metres.
func (e Ellipsoid) RadiiOfCurvature(lat float64) (nu, rho float64) {
	sinLat := math.Sin(lat)
	w := 1 - e.e2*sinLat*sinLat
	nu = e.semiMajorAxis / math.Sqrt(w)
	rho = nu * (1 - e.e2) / w
	return nu, rho
}
