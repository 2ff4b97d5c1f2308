package fleet

import (
	"time"

	"github.com/google/uuid"
)

// Make is the closed set of vehicle manufacturers in the fleet.
type Make string

const (
	MakeBYD     Make = "byd"
	MakeNissan  Make = "nissan"
	MakeRenault Make = "renault"
	MakeTesla   Make = "tesla"
)

// MakeLabels maps manufacturer codes to display names.
var MakeLabels = map[Make]string{
	MakeBYD:     "BYD",
	MakeNissan:  "Nissan",
	MakeRenault: "Renault",
	MakeTesla:   "Tesla",
}

// EngineType is the engine / fuel type of a car model.
type EngineType string

const (
	EngineElectric EngineType = "electric"
	EngineHybrid   EngineType = "hybrid"
	EnginePetrol   EngineType = "petrol"
	EngineDiesel   EngineType = "diesel"
)

// Car is a fleet vehicle. The registration number is the display label
// joined into per-car summaries.
type Car struct {
	ID                 uuid.UUID
	RegistrationNumber string
	ModelID            uuid.UUID
	LocationID         uuid.UUID
	CreatedAt          time.Time
	UpdatedAt          time.Time

	Model    *CarModel
	Location *Location
}

// CarModel is a make/model reference row.
type CarModel struct {
	ID         uuid.UUID
	Make       Make
	Name       string
	CarClassID uuid.UUID
	Year       int
	Engine     EngineType
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// DisplayName renders the model as "<make> <name>".
func (m CarModel) DisplayName() string {
	make := string(m.Make)
	if label, ok := MakeLabels[m.Make]; ok {
		make = label
	}
	return make + " " + m.Name
}

// CarClass groups car models into booking classes.
type CarClass struct {
	ID        uuid.UUID
	Label     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Location is a pick-up / drop-off site.
type Location struct {
	ID        uuid.UUID
	Name      string
	Address   string
	City      string
	County    *string
	Postcode  string
	Latitude  *float64
	Longitude *float64
	CreatedAt time.Time
	UpdatedAt time.Time
}
