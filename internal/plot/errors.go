package plot

import "errors"

var (
	ErrNoWeights      = errors.New("plot: no weights")
	ErrBadWeight      = errors.New("plot: weights must be positive")
	ErrLengthMismatch = errors.New("plot: values and colors differ in length")
	ErrNoSeries       = errors.New("plot: no series")
	ErrShortSeries    = errors.New("plot: series needs at least two points")
	ErrBadColor       = errors.New("plot: unrecognized color")
)
