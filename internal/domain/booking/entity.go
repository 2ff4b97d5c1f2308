package booking

import (
	"time"

	"github.com/google/uuid"
)

// KeyOperation is a physical key operation code.
type KeyOperation string

const (
	OperationCheckout KeyOperation = "takeout"
	OperationReturn   KeyOperation = "putback"
)

// KeyStatus is the reported state of a key after an operation.
type KeyStatus string

const (
	StatusAllocated KeyStatus = "allocated"
	StatusTaken     KeyStatus = "taken"
	StatusReturned  KeyStatus = "returned"
	StatusMissing   KeyStatus = "missing"
)

// Booking is a reservation window for a driver, optionally pinned to a
// specific car.
type Booking struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	StartLocationID uuid.UUID
	EndLocationID   *uuid.UUID
	StartTime       time.Time
	EndTime         time.Time
	CarID           *uuid.UUID
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Key is a physical car key checked out against a booking. The latest_*
// fields cache the most recent KeyHistory entry and are only ever written
// together with a history append.
type Key struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	BookingID       uuid.UUID
	IsPutBack       bool
	IsDeleted       bool
	LatestOperation KeyOperation
	LatestStatus    KeyStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// KeyHistory is one entry in a key's append-only audit trail. Entries are
// never edited or deleted.
type KeyHistory struct {
	ID        uuid.UUID
	KeyID     uuid.UUID
	Operation KeyOperation
	Status    KeyStatus
	CreatedAt time.Time
}
