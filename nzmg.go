package nzgrid

import (
	"fmt"
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// NZMG projection origin and false origin.
const (
	nzmgOriginLatitude  = -41.0 // degrees
	nzmgOriginLongitude = 173 * s1.Degree
	nzmgFalseNorthing   = 6023150.0
	nzmgFalseEasting    = 2510000.0
)

// Latitude offsets in the NZMG series are measured in units of 10^5 seconds
// of arc.
const nzmgLatitudeUnit = 3600.0e-5 // per degree

const (
	nzmgMaxIterations = 10
	nzmgTolerance     = 1e-10 // complex correction, radians
	nzmgLatTolerance  = 1e-12 // latitude correction, 10^5 arc seconds
)

// Published NZMG coefficients (Reilly 1973, as tabulated by LINZ).
var (
	// Geodetic latitude offset to isometric latitude offset.
	nzmgA = []float64{
		0.6399175073,
		-0.1358797613,
		0.063294409,
		-0.02526853,
		0.0117879,
		-0.0055161,
		0.0026906,
		-0.001333,
		0.00067,
		-0.00034,
	}

	// Isometric latitude offset to geodetic latitude offset.
	nzmgD = []float64{
		1.5627014243,
		0.5185406398,
		-0.03333098,
		-0.1052906,
		-0.0368594,
		0.007317,
		0.01220,
		0.00394,
		-0.0013,
	}

	// Isometric plane to grid plane.
	nzmgB = []complexNum{
		{0.7557853228, 0.0},
		{0.249204646, 0.003371507},
		{-0.001541739, 0.041058560},
		{-0.10162907, 0.01727609},
		{-0.26623489, -0.36249218},
		{-0.6870983, -1.1651967},
	}
)

// NZMG converts between geodetic coordinates on the International 1924
// ellipsoid (NZGD49) and New Zealand Map Grid coordinates. It is safe for
// concurrent use.
type NZMG struct {
	ellipsoid Ellipsoid
}

// NewNZMG constructs an NZMG converter.
func NewNZMG() *NZMG {
	return &NZMG{ellipsoid: International1924}
}

// Ellipsoid returns the ellipsoid the grid is defined on.
func (m *NZMG) Ellipsoid() Ellipsoid {
	return m.ellipsoid
}

// ConvertFromGeodetic converts a geodetic coordinate to NZMG. The result is
// only meaningful in and around New Zealand.
func (m *NZMG) ConvertFromGeodetic(geodeticCoordinates s2.LatLng) GridCoord {
	dPhi := (geodeticCoordinates.Lat.Degrees() - nzmgOriginLatitude) * nzmgLatitudeUnit
	dLambda := normalizeLongitude(geodeticCoordinates.Lng.Radians() - nzmgOriginLongitude.Radians())

	zeta := complexNum{re: polynomial(nzmgA, dPhi), im: dLambda}
	z := complexPolynomial(nzmgB, zeta)

	a := m.ellipsoid.SemiMajorAxis()
	return GridCoord{
		Northing: nzmgFalseNorthing + z.re*a,
		Easting:  nzmgFalseEasting + z.im*a,
	}
}

// ConvertToGeodetic converts an NZMG coordinate to a geodetic coordinate.
// It returns an error wrapping ErrConvergenceFailure if the series inversion
// does not converge, which happens for non-finite input or for grid values
// far from New Zealand.
func (m *NZMG) ConvertToGeodetic(gridCoordinates GridCoord) (s2.LatLng, error) {
	a := m.ellipsoid.SemiMajorAxis()
	z := complexNum{
		re: (gridCoordinates.Northing - nzmgFalseNorthing) / a,
		im: (gridCoordinates.Easting - nzmgFalseEasting) / a,
	}

	zeta, err := invertGridSeries(z)
	if err != nil {
		return s2.LatLng{}, fmt.Errorf("NZMG %v: %w", gridCoordinates, err)
	}

	dPhi, err := invertLatitudeSeries(zeta.re)
	if err != nil {
		return s2.LatLng{}, fmt.Errorf("NZMG %v: %w", gridCoordinates, err)
	}

	lat := s1.Angle(nzmgOriginLatitude+dPhi/nzmgLatitudeUnit) * s1.Degree
	lng := s1.Angle(normalizeLongitude(nzmgOriginLongitude.Radians() + zeta.im))
	return s2.LatLng{Lat: lat, Lng: lng}, nil
}

// ConvertAllFromGeodetic converts each geodetic coordinate to NZMG.
func (m *NZMG) ConvertAllFromGeodetic(geodeticCoordinates []s2.LatLng) []GridCoord {
	out := make([]GridCoord, len(geodeticCoordinates))
	for i, g := range geodeticCoordinates {
		out[i] = m.ConvertFromGeodetic(g)
	}
	return out
}

// ConvertAllToGeodetic converts each NZMG coordinate to a geodetic
// coordinate, stopping at the first one that fails.
func (m *NZMG) ConvertAllToGeodetic(gridCoordinates []GridCoord) ([]s2.LatLng, error) {
	out := make([]s2.LatLng, len(gridCoordinates))
	for i, g := range gridCoordinates {
		ll, err := m.ConvertToGeodetic(g)
		if err != nil {
			return nil, fmt.Errorf("coordinate %d: %w", i, err)
		}
		out[i] = ll
	}
	return out, nil
}

// invertGridSeries solves complexPolynomial(nzmgB, zeta) = z for zeta by
// Newton iteration, starting from zeta = z.
func invertGridSeries(z complexNum) (complexNum, error) {
	zeta := z
	correction := 0.0
	for it := 1; it <= nzmgMaxIterations; it++ {
		f := complexPolynomial(nzmgB, zeta).sub(z)
		step := f.div(complexPolynomialDerivative(nzmgB, zeta))
		zeta = zeta.sub(step)

		correction = step.abs()
		if correction < nzmgTolerance {
			return zeta, nil
		}
	}
	return complexNum{}, fmt.Errorf("%w: grid series correction %g after %d iterations",
		ErrConvergenceFailure, correction, nzmgMaxIterations)
}

// invertLatitudeSeries recovers the geodetic latitude offset from the
// isometric latitude offset dPsi. The published inverse series gives the
// first estimate, which is then refined against the forward series.
func invertLatitudeSeries(dPsi float64) (float64, error) {
	dPhi := polynomial(nzmgD, dPsi)
	correction := 0.0
	for it := 1; it <= nzmgMaxIterations; it++ {
		step := (polynomial(nzmgA, dPhi) - dPsi) / polynomialDerivative(nzmgA, dPhi)
		dPhi -= step

		correction = math.Abs(step)
		if correction < nzmgLatTolerance {
			return dPhi, nil
		}
	}
	return 0, fmt.Errorf("%w: latitude series correction %g after %d iterations",
		ErrConvergenceFailure, correction, nzmgMaxIterations)
}
