package nzgrid

import (
	"fmt"
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// NZTM2000 projection parameters.
const (
	nztmCentralMeridian = 173 * s1.Degree
	nztmOriginLatitude  = 0 * s1.Degree
	nztmScaleFactor     = 0.9996
	nztmFalseEasting    = 1600000.0
	nztmFalseNorthing   = 10000000.0
)

// TMParams defines a Transverse Mercator projection.
type TMParams struct {
	CentralMeridian s1.Angle
	OriginLatitude  s1.Angle
	ScaleFactor     float64
	FalseEasting    float64 // metres
	FalseNorthing   float64 // metres
}

// NZTM converts between geodetic coordinates on the GRS80 ellipsoid
// (NZGD2000) and New Zealand Transverse Mercator 2000 coordinates, using
// Redfearn's series as given in the GDA technical manual. It is safe for
// concurrent use.
//
// The series are accurate to better than a millimetre within about 4
// degrees of the central meridian and degrade slowly beyond that. Inputs
// outside New Zealand are converted without error.
type NZTM struct {
	ellipsoid Ellipsoid
	params    TMParams

	originArc float64 // Meridian arc length to the origin latitude
}

// NewNZTM constructs an NZTM converter.
func NewNZTM() *NZTM {
	t, err := newTransverseMercator(GRS80, TMParams{
		CentralMeridian: nztmCentralMeridian,
		OriginLatitude:  nztmOriginLatitude,
		ScaleFactor:     nztmScaleFactor,
		FalseEasting:    nztmFalseEasting,
		FalseNorthing:   nztmFalseNorthing,
	})
	if err != nil {
		panic(fmt.Sprintf("error constructing NZTM converter: %s", err))
	}
	return t
}

func newTransverseMercator(ellipsoid Ellipsoid, params TMParams) (*NZTM, error) {
	if ellipsoid.SemiMajorAxis() <= 0 {
		return nil, fmt.Errorf("%w: ellipsoid is not initialised", ErrInvalidParameter)
	}
	originLat := params.OriginLatitude.Radians()
	if !isFinite(originLat) || originLat < -math.Pi/2 || originLat > math.Pi/2 {
		return nil, fmt.Errorf("%w: origin latitude %v out of range", ErrInvalidParameter, params.OriginLatitude)
	}
	centralMeridian := params.CentralMeridian.Radians()
	if !isFinite(centralMeridian) || centralMeridian < -math.Pi || centralMeridian > 2*math.Pi {
		return nil, fmt.Errorf("%w: central meridian %v out of range", ErrInvalidParameter, params.CentralMeridian)
	}

	const minScaleFactor = 0.1
	const maxScaleFactor = 10.0
	if !(params.ScaleFactor >= minScaleFactor && params.ScaleFactor <= maxScaleFactor) {
		return nil, fmt.Errorf("%w: scale factor %v out of range", ErrInvalidParameter, params.ScaleFactor)
	}
	if !isFinite(params.FalseEasting) || !isFinite(params.FalseNorthing) {
		return nil, fmt.Errorf("%w: false origin must be finite", ErrInvalidParameter)
	}

	params.CentralMeridian = s1.Angle(normalizeLongitude(centralMeridian))
	return &NZTM{
		ellipsoid: ellipsoid,
		params:    params,
		originArc: ellipsoid.MeridianArc(originLat),
	}, nil
}

// Params returns the projection definition.
func (t *NZTM) Params() TMParams {
	return t.params
}

// Ellipsoid returns the ellipsoid the projection is defined on.
func (t *NZTM) Ellipsoid() Ellipsoid {
	return t.ellipsoid
}

// ConvertFromGeodetic converts a geodetic coordinate to NZTM.
func (t *NZTM) ConvertFromGeodetic(geodeticCoordinates s2.LatLng) GridCoord {
	lat := geodeticCoordinates.Lat.Radians()
	dLon := normalizeLongitude(geodeticCoordinates.Lng.Radians() - t.params.CentralMeridian.Radians())
	k0 := t.params.ScaleFactor

	m := t.ellipsoid.MeridianArc(lat)
	nu, _ := t.ellipsoid.RadiiOfCurvature(lat)

	sinLat := math.Sin(lat)
	cosLat := math.Cos(lat)
	psi := t.psi(cosLat) // nu/rho
	tn := sinLat / cosLat
	t2 := tn * tn
	t4 := t2 * t2
	t6 := t2 * t4

	wc := dLon * cosLat
	wc2 := wc * wc

	// Easting
	trm1 := (psi - t2) / 6.0
	trm2 := (((4.0*(1.0-6.0*t2)*psi+(1.0+8.0*t2))*psi-2.0*t2)*psi + t4) / 120.0
	trm3 := (61.0 - 479.0*t2 + 179.0*t4 - t6) / 5040.0
	easting := k0 * nu * wc * (((trm3*wc2+trm2)*wc2+trm1)*wc2 + 1.0)

	// Northing
	trm1 = 0.5
	trm2 = ((4.0*psi+1.0)*psi - t2) / 24.0
	trm3 = 8.0 * (11.0 - 24.0*t2) * psi
	trm3 = (trm3 - 28.0*(1.0-6.0*t2)) * psi
	trm3 = (trm3 + (1.0 - 32.0*t2)) * psi
	trm3 = (trm3 - 2.0*t2) * psi
	trm3 = (trm3 + t4) / 720.0
	trm4 := (1385.0 - 3111.0*t2 + 543.0*t4 - t6) / 40320.0
	northing := nu * tn * ((((trm4*wc2+trm3)*wc2+trm2)*wc2 + trm1) * wc2)
	northing = (northing + m - t.originArc) * k0

	return GridCoord{
		Northing: northing + t.params.FalseNorthing,
		Easting:  easting + t.params.FalseEasting,
	}
}

// ConvertToGeodetic converts an NZTM coordinate to a geodetic coordinate.
//
// Converting the result back with ConvertFromGeodetic reproduces the grid
// coordinate to within 1e-6 m up to about 220 km (2.5 degrees) from the
// central meridian, 1e-4 m up to about 340 km and 1 mm across the whole of
// mainland New Zealand.
func (t *NZTM) ConvertToGeodetic(gridCoordinates GridCoord) s2.LatLng {
	k0 := t.params.ScaleFactor

	arc := (gridCoordinates.Northing-t.params.FalseNorthing)/k0 + t.originArc
	footLat := t.ellipsoid.FootpointLatitude(arc)
	nu, rho := t.ellipsoid.RadiiOfCurvature(footLat)

	sinLat := math.Sin(footLat)
	cosLat := math.Cos(footLat)
	psi := t.psi(cosLat)
	tn := sinLat / cosLat
	t2 := tn * tn
	t4 := t2 * t2

	e := gridCoordinates.Easting - t.params.FalseEasting
	x := e / (k0 * nu)
	x2 := x * x

	// Latitude
	trm1 := 0.5
	trm2 := ((-4.0*psi+9.0*(1.0-t2))*psi + 12.0*t2) / 24.0
	trm3 := 8.0 * (11.0 - 24.0*t2) * psi
	trm3 = (trm3 - 12.0*(21.0-71.0*t2)) * psi
	trm3 = (trm3 + 15.0*((15.0*t2-98.0)*t2+15.0)) * psi
	trm3 = (trm3 + 180.0*((-3.0*t2+5.0)*t2)) * psi
	trm3 = (trm3 + 360.0*t4) / 720.0
	trm4 := (((1575.0*t2+4095.0)*t2+3633.0)*t2 + 1385.0) / 40320.0
	lat := footLat + (tn*x*e/(k0*rho))*(((trm4*x2-trm3)*x2+trm2)*x2-trm1)

	// Longitude
	trm1 = 1.0
	trm2 = (psi + 2.0*t2) / 6.0
	trm3 = (((-4.0*(1.0-6.0*t2)*psi+(9.0-68.0*t2))*psi+72.0*t2)*psi + 24.0*t4) / 120.0
	trm4 = (((720.0*t2+1320.0)*t2+662.0)*t2 + 61.0) / 5040.0
	dLon := (x / cosLat) * (trm1 - ((trm4*x2-trm3)*x2+trm2)*x2)
	lon := normalizeLongitude(t.params.CentralMeridian.Radians() + dLon)

	return s2.LatLng{Lat: s1.Angle(lat), Lng: s1.Angle(lon)}
}

// psi returns nu/rho at a latitude with the given cosine.
func (t *NZTM) psi(cosLat float64) float64 {
	return 1 + t.ellipsoid.SecondEccentricitySquared()*cosLat*cosLat
}

// ConvertAllFromGeodetic converts each geodetic coordinate to NZTM.
func (t *NZTM) ConvertAllFromGeodetic(geodeticCoordinates []s2.LatLng) []GridCoord {
	out := make([]GridCoord, len(geodeticCoordinates))
	for i, g := range geodeticCoordinates {
		out[i] = t.ConvertFromGeodetic(g)
	}
	return out
}

// ConvertAllToGeodetic converts each NZTM coordinate to a geodetic
// coordinate.
func (t *NZTM) ConvertAllToGeodetic(gridCoordinates []GridCoord) []s2.LatLng {
	out := make([]s2.LatLng, len(gridCoordinates))
	for i, g := range gridCoordinates {
		out[i] = t.ConvertToGeodetic(g)
	}
	return out
}
