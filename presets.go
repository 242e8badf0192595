package nzgrid

import "fmt"

// International1924 is the International (Hayford) ellipsoid used by the
// NZGD49 datum and NZMG.
var International1924 Ellipsoid

// GRS80 is the ellipsoid used by the NZGD2000 datum and NZTM.
var GRS80 Ellipsoid

// DefaultNZMG is a ready to use NZMG converter.
var DefaultNZMG *NZMG

// DefaultNZTM is a ready to use NZTM converter.
var DefaultNZTM *NZTM

func init() {
	var err error
	International1924, err = NewEllipsoid(6378388.0, 297.0)
	if err != nil {
		panic(fmt.Sprintf("error constructing International 1924 ellipsoid: %s", err))
	}
	GRS80, err = NewEllipsoid(6378137.0, 298.257222101)
	if err != nil {
		panic(fmt.Sprintf("error constructing GRS80 ellipsoid: %s", err))
	}

	DefaultNZMG = NewNZMG()
	DefaultNZTM = NewNZTM()
}
