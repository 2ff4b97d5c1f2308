package fleet

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	domainFleet "fleet-telematics-monitor/internal/domain/fleet"
)

// Service exposes read access to the fleet dimensions.
type Service struct {
	repo domainFleet.Repository
}

func NewService(repo domainFleet.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetCar(ctx context.Context, carID uuid.UUID) (*CarResponse, error) {
	car, err := s.repo.GetCarByID(ctx, carID)
	if err != nil {
		return nil, err
	}
	return ToCarResponse(car), nil
}

func (s *Service) ListCars(ctx context.Context) ([]*CarResponse, error) {
	cars, err := s.repo.ListCars(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cars: %w", err)
	}

	responses := make([]*CarResponse, len(cars))
	for i := range cars {
		responses[i] = ToCarResponse(&cars[i])
	}
	return responses, nil
}

func (s *Service) ListLocations(ctx context.Context) ([]*LocationResponse, error) {
	locations, err := s.repo.ListLocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}

	responses := make([]*LocationResponse, len(locations))
	for i := range locations {
		responses[i] = ToLocationResponse(&locations[i])
	}
	return responses, nil
}
