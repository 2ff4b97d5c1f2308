package telemetry

import (
	"time"

	"github.com/google/uuid"

	domainTelemetry "fleet-telematics-monitor/internal/domain/telemetry"
	"fleet-telematics-monitor/internal/reporting"
)

// EventResponse is an event record with its display label and classified
// alert severity joined in.
type EventResponse struct {
	ID           string     `json:"id"`
	DeviceSerial string     `json:"device_serial"`
	CarID        *uuid.UUID `json:"car_id,omitempty"`
	BookingID    *uuid.UUID `json:"booking_id,omitempty"`
	KeyID        *uuid.UUID `json:"key_id,omitempty"`
	UserID       *uuid.UUID `json:"user_id,omitempty"`
	Timestamp    time.Time  `json:"timestamp"`
	Type         string     `json:"type"`
	Description  string     `json:"description"`
	Severity     string     `json:"severity"`
}

// TripResponse is a trip record with the mileage converted to miles.
type TripResponse struct {
	ID            string     `json:"id"`
	DeviceSerial  string     `json:"device_serial"`
	CarID         *uuid.UUID `json:"car_id,omitempty"`
	BookingID     *uuid.UUID `json:"booking_id,omitempty"`
	KeyID         *uuid.UUID `json:"key_id,omitempty"`
	UserID        *uuid.UUID `json:"user_id,omitempty"`
	ParentTripID  *string    `json:"parent_trip_id,omitempty"`
	Start         time.Time  `json:"start"`
	Stop          time.Time  `json:"stop"`
	MileageMetres int64      `json:"mileage_metres"`
	MileageMiles  float64    `json:"mileage_miles"`
	State         string     `json:"state"`
	HasChildTrips bool       `json:"has_child_trips"`
}

// DeviceResponse describes an in-car telematics unit.
type DeviceResponse struct {
	Serial       string     `json:"serial"`
	ProjectID    string     `json:"project_id"`
	LicensePlate string     `json:"license_plate"`
	Zone         string     `json:"zone"`
	CarID        *uuid.UUID `json:"car_id,omitempty"`
}

// ListResponse wraps a page of records with the unpaginated total.
type ListResponse[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
}

func ToEventResponse(e *domainTelemetry.Event) *EventResponse {
	return &EventResponse{
		ID:           e.ID,
		DeviceSerial: e.DeviceSerial,
		CarID:        e.CarID,
		BookingID:    e.BookingID,
		KeyID:        e.KeyID,
		UserID:       e.UserID,
		Timestamp:    e.Timestamp,
		Type:         string(e.Type),
		Description:  e.Type.Label(),
		Severity:     string(domainTelemetry.ClassifySeverity(e.Type)),
	}
}

func ToTripResponse(t *domainTelemetry.Trip) *TripResponse {
	return &TripResponse{
		ID:            t.ID,
		DeviceSerial:  t.DeviceSerial,
		CarID:         t.CarID,
		BookingID:     t.BookingID,
		KeyID:         t.KeyID,
		UserID:        t.UserID,
		ParentTripID:  t.ParentTripID,
		Start:         t.Start,
		Stop:          t.Stop,
		MileageMetres: t.MileageMetres,
		MileageMiles:  reporting.MetresToMiles(t.MileageMetres),
		State:         t.State,
		HasChildTrips: t.HasChildTrips,
	}
}

func ToDeviceResponse(d *domainTelemetry.Device) *DeviceResponse {
	return &DeviceResponse{
		Serial:       d.Serial,
		ProjectID:    d.ProjectID,
		LicensePlate: d.LicensePlate,
		Zone:         d.Zone,
		CarID:        d.CarID,
	}
}
