package ingestion

import (
	"testing"
	"time"
)

func validEventMessage() *EventMessage {
	return &EventMessage{
		EventID:      "evt-1",
		DeviceSerial: "DEV-1",
		Timestamp:    time.Now(),
		Type:         "low",
	}
}

func validTripMessage() *TripMessage {
	start := time.Date(2024, 4, 2, 9, 0, 0, 0, time.UTC)
	return &TripMessage{
		TripID:        "trip-1",
		DeviceSerial:  "DEV-1",
		Start:         start,
		Stop:          start.Add(20 * time.Minute),
		MileageMetres: 4200,
		State:         "finished",
	}
}

func TestValidateEventMessage(t *testing.T) {
	if err := ValidateEventMessage(validEventMessage()); err != nil {
		t.Errorf("valid message rejected: %v", err)
	}

	msg := validEventMessage()
	msg.EventID = ""
	if err := ValidateEventMessage(msg); err == nil {
		t.Error("expected error for missing event_id")
	}

	msg = validEventMessage()
	msg.DeviceSerial = ""
	if err := ValidateEventMessage(msg); err == nil {
		t.Error("expected error for missing device_serial")
	}

	// Unknown type codes pass validation; classification maps them to none.
	msg = validEventMessage()
	msg.Type = "some_future_code"
	if err := ValidateEventMessage(msg); err != nil {
		t.Errorf("unknown type rejected: %v", err)
	}
}

func TestValidateTripMessage(t *testing.T) {
	if err := ValidateTripMessage(validTripMessage()); err != nil {
		t.Errorf("valid message rejected: %v", err)
	}

	msg := validTripMessage()
	msg.Stop = msg.Start.Add(-time.Minute)
	if err := ValidateTripMessage(msg); err == nil {
		t.Error("expected error for stop before start")
	}

	msg = validTripMessage()
	msg.MileageMetres = -1
	if err := ValidateTripMessage(msg); err == nil {
		t.Error("expected error for negative mileage")
	}

	msg = validTripMessage()
	self := msg.TripID
	msg.ParentTripID = &self
	if err := ValidateTripMessage(msg); err == nil {
		t.Error("expected error for self-parented trip")
	}
}

func TestParseEventMessageDefaultsTimestamp(t *testing.T) {
	msg, err := ParseEventMessage([]byte(`{"event_id":"evt-1","device_serial":"DEV-1","type":"high"}`))
	if err != nil {
		t.Fatalf("ParseEventMessage: %v", err)
	}
	if msg.Timestamp.IsZero() {
		t.Error("expected timestamp to default to now")
	}
}
