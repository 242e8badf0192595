/*
Package nzgrid converts between geodetic coordinates and the two New Zealand
national projected coordinate systems:

  - NZMG, the New Zealand Map Grid on the International 1924 ellipsoid (NZGD49)
  - NZTM, New Zealand Transverse Mercator 2000 on the GRS80 ellipsoid (NZGD2000)

Geodetic coordinates are s2.LatLng values in radians; grid coordinates are
metres. No datum shift is applied: NZMG results are NZGD49 positions and NZTM
results are NZGD2000 positions.

Both projections are only accurate over the New Zealand region. Inputs far
outside it still produce numbers, but they are not meaningful grid values and
no error is reported for them.
*/
package nzgrid
