package telemetry

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository defines the read side of the telemetry record store. The
// reporting engine issues filtered queries and never mutates records; the
// write methods exist for the ingestion pipeline only.
type Repository interface {
	ListEvents(ctx context.Context, filter *EventFilter) ([]Event, int64, error)
	ListTrips(ctx context.Context, filter *TripFilter) ([]Trip, int64, error)
	GetEventByID(ctx context.Context, eventID string) (*Event, error)
	GetTripByID(ctx context.Context, tripID string) (*Trip, error)
	ListDevices(ctx context.Context) ([]Device, error)

	// QueryEvents and QueryTrips fetch every record matching the filter in
	// one pass, ignoring pagination. Report builders use these so a summary
	// is computed from exactly one store read.
	QueryEvents(ctx context.Context, filter *EventFilter) ([]Event, error)
	QueryTrips(ctx context.Context, filter *TripFilter) ([]Trip, error)

	SaveEvents(ctx context.Context, events []Event) error
	SaveTrips(ctx context.Context, trips []Trip) error
	UpsertDevice(ctx context.Context, device *Device) error
}

// EventFilter is an explicit, eagerly-describable query scope for events.
// Nil fields are not applied.
type EventFilter struct {
	DeviceSerial *string
	CarID        *uuid.UUID
	BookingID    *uuid.UUID
	UserID       *uuid.UUID
	Type         *EventType

	// HasUser excludes (false) or requires (true) an associated driver.
	HasUser *bool

	From *time.Time
	To   *time.Time

	Page     int
	PageSize int
}

// TripFilter is an explicit query scope for trips.
type TripFilter struct {
	DeviceSerial *string
	CarID        *uuid.UUID
	BookingID    *uuid.UUID
	UserID       *uuid.UUID
	State        *string

	// LeafOnly drops composite trips, i.e. trips that have child trips.
	LeafOnly bool

	// Start window.
	From *time.Time
	To   *time.Time

	Page     int
	PageSize int
}
