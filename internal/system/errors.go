package system

import "errors"

// Fatal load-time configuration errors.
var (
	// ErrNoCharges indicates the structure file yielded no point charges.
	ErrNoCharges = errors.New("system: no point charges loaded")

	// ErrNoRegion indicates the options never configured a sampling volume.
	ErrNoRegion = errors.New("system: no sampling region configured")

	// ErrNegativeSamples indicates a negative requested sample count.
	ErrNegativeSamples = errors.New("system: sample count must be >= 0")
)
