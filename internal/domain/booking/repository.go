package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository persists bookings.
type Repository interface {
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, bookingID uuid.UUID) (*Booking, error)
	List(ctx context.Context, filter *Filter) ([]Booking, int64, error)
}

// Filter narrows a booking listing. Nil fields are not applied.
type Filter struct {
	UserID      *uuid.UUID
	CarID       *uuid.UUID
	StartsAfter *time.Time
	EndsBefore  *time.Time

	Page     int
	PageSize int
}

// KeyRepository persists keys and their audit trail. RecordTransition must
// append the history row and refresh the key's cached latest_* fields in one
// transaction so a concurrent reader never observes them out of sync.
type KeyRepository interface {
	GetByID(ctx context.Context, keyID uuid.UUID) (*Key, error)
	ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]Key, error)
	Create(ctx context.Context, key *Key) error
	RecordTransition(ctx context.Context, keyID uuid.UUID, op KeyOperation, status KeyStatus) (*KeyHistory, error)
	History(ctx context.Context, keyID uuid.UUID) ([]KeyHistory, error)
}
