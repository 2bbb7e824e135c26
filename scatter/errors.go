package scatter

import "errors"

var (
	// ErrNilSubplot is returned when Plot is called without a subplot.
	ErrNilSubplot = errors.New("scatter: nil subplot")

	// ErrNilAxis is returned when the subplot lacks an x or y axis.
	ErrNilAxis = errors.New("scatter: subplot has no axis")
)
