package nzgrid

import "errors"

// ErrInvalidParameter is returned when an ellipsoid or projection is
// constructed from out of range parameters.
var ErrInvalidParameter = errors.New("invalid parameter")

// ErrConvergenceFailure is returned when the NZMG inverse iteration does not
// reach its tolerance within the iteration limit.
var ErrConvergenceFailure = errors.New("convergence failure")
