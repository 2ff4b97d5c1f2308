package models

import (
	"time"

	"github.com/google/uuid"
)

// BookingModel represents the database model for a Booking.
type BookingModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID          uuid.UUID  `gorm:"type:uuid;not null;index"`
	StartLocationID uuid.UUID  `gorm:"type:uuid;not null"`
	EndLocationID   *uuid.UUID `gorm:"type:uuid"`
	StartTime       time.Time  `gorm:"not null;index"`
	EndTime         time.Time  `gorm:"not null;index"`
	CarID           *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt       time.Time  `gorm:"not null"`
	UpdatedAt       time.Time  `gorm:"not null"`

	User          *UserModel     `gorm:"foreignKey:UserID"`
	Car           *CarModel      `gorm:"foreignKey:CarID"`
	StartLocation *LocationModel `gorm:"foreignKey:StartLocationID"`
	EndLocation   *LocationModel `gorm:"foreignKey:EndLocationID"`
}

func (BookingModel) TableName() string {
	return "bookings"
}

// KeyModel represents the database model for a physical Key. The latest_*
// columns cache the newest KeyHistoryModel row and are only written inside
// the same transaction that appends it.
type KeyModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index"`
	BookingID       uuid.UUID `gorm:"type:uuid;not null;index"`
	IsPutBack       bool      `gorm:"default:false;not null"`
	IsDeleted       bool      `gorm:"default:false;not null"`
	LatestOperation string    `gorm:"type:varchar(7);not null"`
	LatestStatus    string    `gorm:"type:varchar(9);not null"`
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time `gorm:"not null"`

	User    *UserModel    `gorm:"foreignKey:UserID"`
	Booking *BookingModel `gorm:"foreignKey:BookingID"`
}

func (KeyModel) TableName() string {
	return "keys"
}

// KeyHistoryModel represents one row of a key's append-only audit trail.
// Rows are inserted, never updated or deleted.
type KeyHistoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	KeyID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Operation string    `gorm:"type:varchar(7);not null"`
	Status    string    `gorm:"type:varchar(9);not null"`
	CreatedAt time.Time `gorm:"not null;index"`

	Key *KeyModel `gorm:"foreignKey:KeyID"`
}

func (KeyHistoryModel) TableName() string {
	return "key_history"
}
