package nemkit

import "errors"

// Sentinel errors for errors.Is() checks
var (
	// ErrInvalidMosaicID is returned when a mosaic identifier is missing its
	// namespace or name component.
	ErrInvalidMosaicID = errors.New("invalid mosaic id")
)
