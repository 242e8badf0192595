package nzgrid

import (
	"math"
	"testing"

	"github.com/golang/geo/s1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nztmParams() TMParams {
	return TMParams{
		CentralMeridian: nztmCentralMeridian,
		OriginLatitude:  nztmOriginLatitude,
		ScaleFactor:     nztmScaleFactor,
		FalseEasting:    nztmFalseEasting,
		FalseNorthing:   nztmFalseNorthing,
	}
}

func TestNewTransverseMercatorInvalid(t *testing.T) {
	cases := []struct {
		name      string
		ellipsoid Ellipsoid
		modify    func(p *TMParams)
	}{
		{"zero ellipsoid", Ellipsoid{}, func(p *TMParams) {}},
		{"scale factor too small", GRS80, func(p *TMParams) { p.ScaleFactor = 0.05 }},
		{"scale factor too large", GRS80, func(p *TMParams) { p.ScaleFactor = 10.5 }},
		{"NaN scale factor", GRS80, func(p *TMParams) { p.ScaleFactor = math.NaN() }},
		{"origin latitude above pole", GRS80, func(p *TMParams) { p.OriginLatitude = 2 * s1.Radian }},
		{"origin latitude below pole", GRS80, func(p *TMParams) { p.OriginLatitude = -2 * s1.Radian }},
		{"NaN origin latitude", GRS80, func(p *TMParams) { p.OriginLatitude = s1.Angle(math.NaN()) }},
		{"central meridian too far east", GRS80, func(p *TMParams) { p.CentralMeridian = 7 * s1.Radian }},
		{"central meridian too far west", GRS80, func(p *TMParams) { p.CentralMeridian = -4 * s1.Radian }},
		{"NaN false easting", GRS80, func(p *TMParams) { p.FalseEasting = math.NaN() }},
		{"infinite false northing", GRS80, func(p *TMParams) { p.FalseNorthing = math.Inf(-1) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			params := nztmParams()
			tc.modify(&params)
			tm, err := newTransverseMercator(tc.ellipsoid, params)
			assert.ErrorIs(t, err, ErrInvalidParameter)
			assert.Nil(t, tm)
		})
	}
}

func TestNewTransverseMercatorNormalizesCentralMeridian(t *testing.T) {
	params := nztmParams()
	params.CentralMeridian = 190 * s1.Degree
	tm, err := newTransverseMercator(GRS80, params)
	require.NoError(t, err)
	assert.InDelta(t, -170.0, tm.Params().CentralMeridian.Degrees(), 1e-12)

	// Range limits are inclusive.
	params = nztmParams()
	params.ScaleFactor = 10
	params.OriginLatitude = s1.Angle(-math.Pi / 2)
	_, err = newTransverseMercator(GRS80, params)
	assert.NoError(t, err)
}

func TestNZTMPsiMatchesRadiiOfCurvature(t *testing.T) {
	for _, lat := range []float64{0, -0.3, -0.72, -1.4} {
		nu, rho := GRS80.RadiiOfCurvature(lat)
		assert.InDelta(t, nu/rho, DefaultNZTM.psi(math.Cos(lat)), 1e-15)
	}
}
