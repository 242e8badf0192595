package nzgrid

import "fmt"

// GridCoord is a projected coordinate in metres.
type GridCoord struct {
	Northing float64
	Easting  float64
}

func (g GridCoord) String() string {
	return fmt.Sprintf("%.3fmN %.3fmE", g.Northing, g.Easting)
}
