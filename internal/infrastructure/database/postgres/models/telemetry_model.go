package models

import (
	"time"

	"github.com/google/uuid"
)

// DeviceModel represents the database model for a telematics Device. The
// serial comes from the device provider.
type DeviceModel struct {
	Serial       string     `gorm:"type:varchar(50);primary_key"`
	ProjectID    string     `gorm:"type:varchar(50);not null"`
	LicensePlate string     `gorm:"type:varchar(50);not null"`
	Zone         string     `gorm:"type:varchar(50);not null"`
	CarID        *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt    time.Time  `gorm:"not null"`
	UpdatedAt    time.Time  `gorm:"not null"`

	Car *CarModel `gorm:"foreignKey:CarID"`
}

func (DeviceModel) TableName() string {
	return "devices"
}

// EventModel represents the database model for a telemetry Event. Rows are
// insert-only.
type EventModel struct {
	ID           string     `gorm:"type:varchar(100);primary_key"`
	DeviceSerial string     `gorm:"type:varchar(50);not null;index"`
	CarID        *uuid.UUID `gorm:"type:uuid;index"`
	BookingID    *uuid.UUID `gorm:"type:uuid;index"`
	KeyID        *uuid.UUID `gorm:"type:uuid"`
	UserID       *uuid.UUID `gorm:"type:uuid;index"`
	Timestamp    time.Time  `gorm:"not null;index"`
	Type         string     `gorm:"type:varchar(20);not null;index"`
	CreatedAt    time.Time  `gorm:"not null"`
	UpdatedAt    time.Time  `gorm:"not null"`

	Device *DeviceModel `gorm:"foreignKey:DeviceSerial"`
	Car    *CarModel    `gorm:"foreignKey:CarID"`
}

func (EventModel) TableName() string {
	return "events"
}

// TripModel represents the database model for a Trip. Mileage is stored in
// metres as reported by the provider API.
type TripModel struct {
	ID            string     `gorm:"type:varchar(100);primary_key"`
	DeviceSerial  string     `gorm:"type:varchar(50);not null;index"`
	CarID         *uuid.UUID `gorm:"type:uuid;index"`
	BookingID     *uuid.UUID `gorm:"type:uuid;index"`
	KeyID         *uuid.UUID `gorm:"type:uuid"`
	UserID        *uuid.UUID `gorm:"type:uuid;index"`
	ParentTripID  *string    `gorm:"type:varchar(100);index"`
	Start         time.Time  `gorm:"not null;index"`
	Stop          time.Time  `gorm:"not null"`
	MileageMetres int64      `gorm:"not null;default:0;check:mileage_metres >= 0"`
	State         string     `gorm:"type:varchar(100);not null"`
	CreatedAt     time.Time  `gorm:"not null"`
	UpdatedAt     time.Time  `gorm:"not null"`

	Device     *DeviceModel `gorm:"foreignKey:DeviceSerial"`
	Car        *CarModel    `gorm:"foreignKey:CarID"`
	ParentTrip *TripModel   `gorm:"foreignKey:ParentTripID"`

	// HasChildTrips is selected via an EXISTS subquery, never stored.
	HasChildTrips bool `gorm:"->;-:migration"`
}

func (TripModel) TableName() string {
	return "trips"
}
