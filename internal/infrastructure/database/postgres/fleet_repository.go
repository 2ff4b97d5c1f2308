package postgres

import (
	"context"
	"errors"
	"fmt"

	"fleet-telematics-monitor/internal/domain/fleet"
	"fleet-telematics-monitor/internal/infrastructure/database/postgres/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FleetRepository struct {
	db *DB
}

func NewFleetRepository(db *DB) *FleetRepository {
	return &FleetRepository{db: db}
}

func (r *FleetRepository) GetCarByID(ctx context.Context, carID uuid.UUID) (*fleet.Car, error) {
	var dbModel models.CarModel
	err := r.db.DB.WithContext(ctx).
		Preload("Model").
		Preload("Location").
		Where("id = ?", carID).
		First(&dbModel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fleet.ErrCarNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get car: %w", err)
	}

	car := toCarEntity(&dbModel)
	return &car, nil
}

func (r *FleetRepository) ListCars(ctx context.Context) ([]fleet.Car, error) {
	var dbModels []models.CarModel
	err := r.db.DB.WithContext(ctx).
		Preload("Model").
		Preload("Location").
		Order("registration_number ASC").
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list cars: %w", err)
	}

	cars := make([]fleet.Car, len(dbModels))
	for i := range dbModels {
		cars[i] = toCarEntity(&dbModels[i])
	}
	return cars, nil
}

func (r *FleetRepository) ListLocations(ctx context.Context) ([]fleet.Location, error) {
	var dbModels []models.LocationModel
	err := r.db.DB.WithContext(ctx).Order("name ASC").Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}

	locations := make([]fleet.Location, len(dbModels))
	for i, m := range dbModels {
		locations[i] = fleet.Location{
			ID:        m.ID,
			Name:      m.Name,
			Address:   m.Address,
			City:      m.City,
			County:    m.County,
			Postcode:  m.Postcode,
			Latitude:  m.Latitude,
			Longitude: m.Longitude,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		}
	}
	return locations, nil
}

// CarRegistrations resolves the registration-number display labels for a set
// of cars in one query.
func (r *FleetRepository) CarRegistrations(ctx context.Context, carIDs []uuid.UUID) (map[uuid.UUID]string, error) {
	registrations := make(map[uuid.UUID]string, len(carIDs))
	if len(carIDs) == 0 {
		return registrations, nil
	}

	var rows []struct {
		ID                 uuid.UUID
		RegistrationNumber string
	}
	err := r.db.DB.WithContext(ctx).
		Model(&models.CarModel{}).
		Select("id, registration_number").
		Where("id IN ?", carIDs).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to resolve car registrations: %w", err)
	}

	for _, row := range rows {
		registrations[row.ID] = row.RegistrationNumber
	}
	return registrations, nil
}

func toCarEntity(m *models.CarModel) fleet.Car {
	car := fleet.Car{
		ID:                 m.ID,
		RegistrationNumber: m.RegistrationNumber,
		ModelID:            m.ModelID,
		LocationID:         m.LocationID,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
	if m.Model != nil {
		car.Model = &fleet.CarModel{
			ID:         m.Model.ID,
			Make:       fleet.Make(m.Model.Make),
			Name:       m.Model.Name,
			CarClassID: m.Model.CarClassID,
			Year:       m.Model.Year,
			Engine:     fleet.EngineType(m.Model.Engine),
			CreatedAt:  m.Model.CreatedAt,
			UpdatedAt:  m.Model.UpdatedAt,
		}
	}
	if m.Location != nil {
		car.Location = &fleet.Location{
			ID:        m.Location.ID,
			Name:      m.Location.Name,
			Address:   m.Location.Address,
			City:      m.Location.City,
			County:    m.Location.County,
			Postcode:  m.Location.Postcode,
			Latitude:  m.Location.Latitude,
			Longitude: m.Location.Longitude,
			CreatedAt: m.Location.CreatedAt,
			UpdatedAt: m.Location.UpdatedAt,
		}
	}
	return car
}
