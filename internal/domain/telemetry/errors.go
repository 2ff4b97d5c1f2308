package telemetry

import "errors"

var (
	ErrEventNotFound  = errors.New("event not found")
	ErrTripNotFound   = errors.New("trip not found")
	ErrDeviceNotFound = errors.New("device not found")
)
