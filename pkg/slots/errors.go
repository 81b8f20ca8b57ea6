package slots

import "errors"

// Sentinel errors for the slot engine.
var (
	ErrInvalidInterval  = errors.New("invalid busy interval")
	ErrInvalidSlotLabel = errors.New("invalid slot label")
	ErrInvalidTimestamp = errors.New("invalid timestamp")
)
