package ingestion

import (
	"errors"
	"fmt"
)

var (
	errMissingEventID      = errors.New("event_id is required")
	errMissingTripID       = errors.New("trip_id is required")
	errMissingDeviceSerial = errors.New("device_serial is required")
)

// ValidateEventMessage checks the fields every event must carry. Unknown
// event type codes are accepted and stored as-is; the classifier maps them
// to the none severity.
func ValidateEventMessage(msg *EventMessage) error {
	if msg.EventID == "" {
		return errMissingEventID
	}
	if msg.DeviceSerial == "" {
		return errMissingDeviceSerial
	}
	if msg.Type == "" {
		return errors.New("type is required")
	}
	return nil
}

// ValidateTripMessage checks the fields every trip must carry.
func ValidateTripMessage(msg *TripMessage) error {
	if msg.TripID == "" {
		return errMissingTripID
	}
	if msg.DeviceSerial == "" {
		return errMissingDeviceSerial
	}
	if msg.Start.IsZero() {
		return errors.New("start is required")
	}
	if !msg.Stop.IsZero() && msg.Stop.Before(msg.Start) {
		return fmt.Errorf("trip %s stops before it starts", msg.TripID)
	}
	if msg.MileageMetres < 0 {
		return fmt.Errorf("trip %s has negative mileage", msg.TripID)
	}
	if msg.ParentTripID != nil && *msg.ParentTripID == msg.TripID {
		return fmt.Errorf("trip %s is its own parent", msg.TripID)
	}
	return nil
}
