package booking

import "errors"

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrKeyNotFound     = errors.New("key not found")
	ErrInvalidWindow   = errors.New("booking end time must be after start time")
)
