package fleet

import (
	"time"

	"github.com/google/uuid"

	domainFleet "fleet-telematics-monitor/internal/domain/fleet"
)

type CarResponse struct {
	ID                 uuid.UUID         `json:"id"`
	RegistrationNumber string            `json:"registration_number"`
	Model              *CarModelResponse `json:"model,omitempty"`
	Location           *LocationResponse `json:"location,omitempty"`
	CreatedAt          time.Time         `json:"created_at"`
}

type CarModelResponse struct {
	ID          uuid.UUID `json:"id"`
	Make        string    `json:"make"`
	Name        string    `json:"name"`
	Year        int       `json:"year"`
	Engine      string    `json:"engine"`
	DisplayName string    `json:"display_name"`
}

type LocationResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Address  string    `json:"address"`
	City     string    `json:"city"`
	County   *string   `json:"county,omitempty"`
	Postcode string    `json:"postcode"`
}

func ToCarResponse(c *domainFleet.Car) *CarResponse {
	resp := &CarResponse{
		ID:                 c.ID,
		RegistrationNumber: c.RegistrationNumber,
		CreatedAt:          c.CreatedAt,
	}
	if c.Model != nil {
		resp.Model = &CarModelResponse{
			ID:          c.Model.ID,
			Make:        string(c.Model.Make),
			Name:        c.Model.Name,
			Year:        c.Model.Year,
			Engine:      string(c.Model.Engine),
			DisplayName: c.Model.DisplayName(),
		}
	}
	if c.Location != nil {
		resp.Location = ToLocationResponse(c.Location)
	}
	return resp
}

func ToLocationResponse(l *domainFleet.Location) *LocationResponse {
	return &LocationResponse{
		ID:       l.ID,
		Name:     l.Name,
		Address:  l.Address,
		City:     l.City,
		County:   l.County,
		Postcode: l.Postcode,
	}
}
