package normalize

import "errors"

// Normalization error definitions using sentinel errors pattern. Callers
// wrap these with the name of the offending flag or argument.
var (
	ErrInvalidRegion    = errors.New("region must be exactly two letters (e.g. US, SE)")
	ErrInvalidPlatform  = errors.New("platform must be one of iphone, ipad, mac, appletv, watch, vision")
	ErrEmptyPlannedID   = errors.New("planned app id is empty")
	ErrPlannedIDTooLong = errors.New("planned app id exceeds 64 characters")
	ErrInvalidDate      = errors.New("date must be a valid YYYY-MM-DD")
	ErrInvalidPeriod    = errors.New("period must be 7, 30 or 90")
)
