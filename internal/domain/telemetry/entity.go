package telemetry

import (
	"time"

	"github.com/google/uuid"
)

// EventType is the closed set of event codes reported by in-car devices.
type EventType string

const (
	EventLow          EventType = "low"
	EventMedium       EventType = "medium"
	EventHigh         EventType = "high"
	EventButton       EventType = "button"
	EventInput1       EventType = "input1"
	EventStart        EventType = "start"
	EventStop         EventType = "stop"
	EventIgnitionOff  EventType = "kl15_off"
	EventIgnitionOn   EventType = "kl15_on"
	EventPowerLow     EventType = "kl30_low"
	EventCardNotFound EventType = "card_not_found"
	EventFlashError   EventType = "flash_error"
	EventCardFull     EventType = "card_full"
	EventTravelStart  EventType = "travel_start"
	EventTravelStop   EventType = "travel_stop"
)

// EventTypeLabels maps event codes to their display descriptions.
var EventTypeLabels = map[EventType]string{
	EventLow:          "The accelerometer triggered a low event",
	EventMedium:       "The accelerometer triggered a medium event",
	EventHigh:         "The accelerometer triggered a high event",
	EventButton:       "Button on the device was pressed",
	EventInput1:       "External cable input triggered an event",
	EventStart:        "Device started up",
	EventStop:         "Device shutdown",
	EventIgnitionOff:  "Ignition was turned off",
	EventIgnitionOn:   "Ignition was turned on",
	EventPowerLow:     "Power supply dropped below threshold",
	EventCardNotFound: "No SD card inserted",
	EventFlashError:   "Internal flash overflow",
	EventCardFull:     "SD card full",
	EventTravelStart:  "The vehicle has been travelling at >10mph for at least 10 seconds",
	EventTravelStop:   "The vehicle stopped travelling: speed dropped below 10mph for 10 seconds",
}

// Label returns the display description for the event type, or the raw code
// when the type is outside the known enumeration.
func (t EventType) Label() string {
	if label, ok := EventTypeLabels[t]; ok {
		return label
	}
	return string(t)
}

// Device represents an in-car telematics unit. The serial is issued by the
// device provider.
type Device struct {
	Serial       string
	ProjectID    string
	LicensePlate string
	Zone         string
	CarID        *uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Event is a single telemetry event reported by a device. Events are
// immutable once ingested; the reporting engine only ever reads them.
type Event struct {
	ID           string
	DeviceSerial string
	CarID        *uuid.UUID
	BookingID    *uuid.UUID
	KeyID        *uuid.UUID
	UserID       *uuid.UUID
	Timestamp    time.Time
	Type         EventType
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Trip is a journey recorded by a device. Mileage is stored in metres as
// that is what the provider API reports. A trip with child trips is a
// composite covering its children; only leaf trips count towards mileage
// statistics.
type Trip struct {
	ID            string
	DeviceSerial  string
	CarID         *uuid.UUID
	BookingID     *uuid.UUID
	KeyID         *uuid.UUID
	UserID        *uuid.UUID
	ParentTripID  *string
	Start         time.Time
	Stop          time.Time
	MileageMetres int64
	State         string

	// HasChildTrips is populated by the repository so composite trips can be
	// excluded without a second query.
	HasChildTrips bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsLeaf reports whether the trip has no child trips.
func (t Trip) IsLeaf() bool {
	return !t.HasChildTrips
}
