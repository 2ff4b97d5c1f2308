package ingestion

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"fleet-telematics-monitor/internal/domain/telemetry"
)

// EventMessage is a device event as published by the telematics provider.
// The association IDs are filled in by the provider's backend when the
// device is bound to a booking.
type EventMessage struct {
	EventID      string     `json:"event_id"`
	DeviceSerial string     `json:"device_serial"`
	Timestamp    time.Time  `json:"timestamp"`
	Type         string     `json:"type"`
	CarID        *uuid.UUID `json:"car_id"`
	BookingID    *uuid.UUID `json:"booking_id"`
	KeyID        *uuid.UUID `json:"key_id"`
	UserID       *uuid.UUID `json:"user_id"`
}

// TripMessage is a journey record as published by the telematics provider.
// Mileage arrives in metres. Trips may be republished with updated state and
// mileage until they finish.
type TripMessage struct {
	TripID        string     `json:"trip_id"`
	DeviceSerial  string     `json:"device_serial"`
	ParentTripID  *string    `json:"parent_trip_id"`
	Start         time.Time  `json:"start"`
	Stop          time.Time  `json:"stop"`
	MileageMetres int64      `json:"mileage_metres"`
	State         string     `json:"state"`
	CarID         *uuid.UUID `json:"car_id"`
	BookingID     *uuid.UUID `json:"booking_id"`
	KeyID         *uuid.UUID `json:"key_id"`
	UserID        *uuid.UUID `json:"user_id"`
}

// ParseEventMessage parses a JSON payload into an EventMessage.
func ParseEventMessage(payload []byte) (*EventMessage, error) {
	var msg EventMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		return nil, err
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now()
	}
	return &msg, nil
}

// ParseTripMessage parses a JSON payload into a TripMessage.
func ParseTripMessage(payload []byte) (*TripMessage, error) {
	var msg TripMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (m *EventMessage) toEntity() telemetry.Event {
	return telemetry.Event{
		ID:           m.EventID,
		DeviceSerial: m.DeviceSerial,
		CarID:        m.CarID,
		BookingID:    m.BookingID,
		KeyID:        m.KeyID,
		UserID:       m.UserID,
		Timestamp:    m.Timestamp,
		Type:         telemetry.EventType(m.Type),
	}
}

func (m *TripMessage) toEntity() telemetry.Trip {
	return telemetry.Trip{
		ID:            m.TripID,
		DeviceSerial:  m.DeviceSerial,
		CarID:         m.CarID,
		BookingID:     m.BookingID,
		KeyID:         m.KeyID,
		UserID:        m.UserID,
		ParentTripID:  m.ParentTripID,
		Start:         m.Start,
		Stop:          m.Stop,
		MileageMetres: m.MileageMetres,
		State:         m.State,
	}
}
