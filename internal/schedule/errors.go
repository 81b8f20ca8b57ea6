package schedule

import "errors"

// Domain-specific errors for the schedule package.
var (
	ErrUnknownTimezone  = errors.New("unknown timezone")
	ErrEmptyAttendee    = errors.New("attendee email is required")
	ErrNoAdminForDomain = errors.New("no admin registered for domain")
)
