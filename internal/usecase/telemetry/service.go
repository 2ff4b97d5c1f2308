package telemetry

import (
	"context"
	"fmt"

	domainTelemetry "fleet-telematics-monitor/internal/domain/telemetry"
)

// Service exposes read access to the raw telemetry record store.
type Service struct {
	repo domainTelemetry.Repository
}

func NewService(repo domainTelemetry.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListEvents(ctx context.Context, filter *domainTelemetry.EventFilter) (*ListResponse[*EventResponse], error) {
	events, total, err := s.repo.ListEvents(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	items := make([]*EventResponse, len(events))
	for i := range events {
		items[i] = ToEventResponse(&events[i])
	}
	return &ListResponse[*EventResponse]{Items: items, Total: total}, nil
}

func (s *Service) GetEvent(ctx context.Context, eventID string) (*EventResponse, error) {
	event, err := s.repo.GetEventByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return ToEventResponse(event), nil
}

func (s *Service) ListTrips(ctx context.Context, filter *domainTelemetry.TripFilter) (*ListResponse[*TripResponse], error) {
	trips, total, err := s.repo.ListTrips(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}

	items := make([]*TripResponse, len(trips))
	for i := range trips {
		items[i] = ToTripResponse(&trips[i])
	}
	return &ListResponse[*TripResponse]{Items: items, Total: total}, nil
}

func (s *Service) GetTrip(ctx context.Context, tripID string) (*TripResponse, error) {
	trip, err := s.repo.GetTripByID(ctx, tripID)
	if err != nil {
		return nil, err
	}
	return ToTripResponse(trip), nil
}

func (s *Service) ListDevices(ctx context.Context) ([]*DeviceResponse, error) {
	devices, err := s.repo.ListDevices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}

	responses := make([]*DeviceResponse, len(devices))
	for i := range devices {
		responses[i] = ToDeviceResponse(&devices[i])
	}
	return responses, nil
}
