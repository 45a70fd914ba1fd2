package domain

import "errors"

// Client-input errors. All surface as 400s at the HTTP boundary; none
// are retried and none are fatal to the process.
var (
	ErrMissingField    = errors.New("Location and ReviewBody are required")
	ErrInvalidLocation = errors.New("Invalid Location")
	ErrInvalidDate     = errors.New("invalid date")
)
