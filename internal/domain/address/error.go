package address

import "errors"

var (
	ErrNotFound          = errors.New("postal code not found")
	ErrUnavailable       = errors.New("address directory unavailable")
	ErrInvalidPostalCode = errors.New("invalid postal code")
	ErrNoLookups         = errors.New("no lookups configured")
)
