package models

import (
	"time"

	"github.com/google/uuid"
)

// CarModel represents the database model for a fleet Car.
type CarModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	RegistrationNumber string    `gorm:"type:varchar(10);not null;uniqueIndex"`
	ModelID            uuid.UUID `gorm:"type:uuid;not null"`
	LocationID         uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt          time.Time `gorm:"not null"`
	UpdatedAt          time.Time `gorm:"not null"`

	Model    *CarModelRefModel `gorm:"foreignKey:ModelID"`
	Location *LocationModel    `gorm:"foreignKey:LocationID"`
}

func (CarModel) TableName() string {
	return "cars"
}

// CarModelRefModel represents the database model for the make/model
// reference table (the domain's CarModel).
type CarModelRefModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Make       string    `gorm:"type:varchar(12);not null"`
	Name       string    `gorm:"type:varchar(20);not null"`
	CarClassID uuid.UUID `gorm:"type:uuid;not null"`
	Year       int       `gorm:"type:integer;not null"`
	Engine     string    `gorm:"type:varchar(8);not null"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`

	CarClass *CarClassModel `gorm:"foreignKey:CarClassID"`
}

func (CarModelRefModel) TableName() string {
	return "car_models"
}

// CarClassModel represents the database model for CarClass.
type CarClassModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Label     string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (CarClassModel) TableName() string {
	return "car_classes"
}

// LocationModel represents the database model for Location.
type LocationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Address   string    `gorm:"type:varchar(255);not null"`
	City      string    `gorm:"type:varchar(255);not null"`
	County    *string   `gorm:"type:varchar(50)"`
	Postcode  string    `gorm:"type:varchar(10);not null"`
	Latitude  *float64  `gorm:"type:decimal(10,8)"`
	Longitude *float64  `gorm:"type:decimal(10,8)"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (LocationModel) TableName() string {
	return "locations"
}
