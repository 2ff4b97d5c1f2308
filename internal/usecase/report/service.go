package report

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"fleet-telematics-monitor/internal/domain/fleet"
	"fleet-telematics-monitor/internal/domain/telemetry"
	"fleet-telematics-monitor/internal/domain/user"
	"fleet-telematics-monitor/internal/logger"
	"fleet-telematics-monitor/internal/reporting"
	appErrors "fleet-telematics-monitor/pkg/errors"
)

// Service builds fleet reports. Each report is computed from a single
// record-store read; the grouping and bucketing happen in memory.
type Service struct {
	telemetryRepo telemetry.Repository
	fleetRepo     fleet.Repository
	userRepo      user.Repository
}

func NewService(
	telemetryRepo telemetry.Repository,
	fleetRepo fleet.Repository,
	userRepo user.Repository,
) *Service {
	return &Service{
		telemetryRepo: telemetryRepo,
		fleetRepo:     fleetRepo,
		userRepo:      userRepo,
	}
}

// TripSummaries builds the per-car and per-driver trip report plus the
// weekday and hour mileage histograms for the given scope. Composite trips
// are excluded at the store so child mileage is never double-counted.
func (s *Service) TripSummaries(ctx context.Context, scope *Scope) (*TripReportResponse, error) {
	if err := validateScope(scope); err != nil {
		return nil, err
	}

	filter := &telemetry.TripFilter{
		DeviceSerial: scope.DeviceSerial,
		CarID:        scope.CarID,
		BookingID:    scope.BookingID,
		UserID:       scope.UserID,
		From:         scope.From,
		To:           scope.To,
		LeafOnly:     true,
	}

	trips, err := s.telemetryRepo.QueryTrips(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query trips: %w", err)
	}

	dims, err := s.resolveDimensions(ctx, tripCarIDs(trips), tripUserIDs(trips))
	if err != nil {
		return nil, err
	}

	cars, carTotals := reporting.BuildCarTripSummaries(trips, dims)
	drivers, driverTotals := reporting.BuildDriverTripSummaries(trips, dims)

	logger.Debug("Trip report built",
		zap.Int("trips", len(trips)),
		zap.Int("cars", len(cars)),
		zap.Int("drivers", len(drivers)),
		zap.String("event", "trip_report_built"),
	)

	return &TripReportResponse{
		Cars:             cars,
		CarTotals:        carTotals,
		Drivers:          drivers,
		DriverTotals:     driverTotals,
		MileageByWeekday: reporting.BuildMileageByWeekday(trips),
		MileageByHour:    reporting.BuildMileageByHour(trips),
	}, nil
}

// AlertSummaries builds the per-driver alert report for the given scope.
// Events with no associated driver cannot be attributed and are excluded at
// the store.
func (s *Service) AlertSummaries(ctx context.Context, scope *Scope) (*AlertReportResponse, error) {
	if err := validateScope(scope); err != nil {
		return nil, err
	}

	hasUser := true
	filter := &telemetry.EventFilter{
		DeviceSerial: scope.DeviceSerial,
		CarID:        scope.CarID,
		BookingID:    scope.BookingID,
		UserID:       scope.UserID,
		From:         scope.From,
		To:           scope.To,
		HasUser:      &hasUser,
	}

	events, err := s.telemetryRepo.QueryEvents(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}

	dims, err := s.resolveDimensions(ctx, nil, eventUserIDs(events))
	if err != nil {
		return nil, err
	}

	drivers, totals := reporting.BuildDriverAlertSummaries(events, dims)

	logger.Debug("Alert report built",
		zap.Int("events", len(events)),
		zap.Int("drivers", len(drivers)),
		zap.String("event", "alert_report_built"),
	)

	return &AlertReportResponse{
		Drivers: drivers,
		Totals:  totals,
	}, nil
}

func validateScope(scope *Scope) error {
	if scope == nil {
		return nil
	}
	if scope.From != nil && scope.To != nil && scope.To.Before(*scope.From) {
		return appErrors.NewAppError("INVALID_TIME_RANGE", "Invalid report time range", appErrors.ErrInvalidTimeRange)
	}
	return nil
}

// resolveDimensions batches the display-label lookups so each report issues
// at most one query per dimension.
func (s *Service) resolveDimensions(ctx context.Context, carIDs, userIDs []uuid.UUID) (reporting.Dimensions, error) {
	dims := reporting.Dimensions{}

	if len(carIDs) > 0 {
		registrations, err := s.fleetRepo.CarRegistrations(ctx, carIDs)
		if err != nil {
			return dims, fmt.Errorf("failed to resolve car registrations: %w", err)
		}
		dims.CarRegistrations = registrations
	}

	if len(userIDs) > 0 {
		emails, err := s.userRepo.DriverEmails(ctx, userIDs)
		if err != nil {
			return dims, fmt.Errorf("failed to resolve driver emails: %w", err)
		}
		dims.DriverEmails = emails
	}

	return dims, nil
}

func tripCarIDs(trips []telemetry.Trip) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{})
	var ids []uuid.UUID
	for _, t := range trips {
		if t.CarID == nil {
			continue
		}
		if _, ok := seen[*t.CarID]; ok {
			continue
		}
		seen[*t.CarID] = struct{}{}
		ids = append(ids, *t.CarID)
	}
	return ids
}

func tripUserIDs(trips []telemetry.Trip) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{})
	var ids []uuid.UUID
	for _, t := range trips {
		if t.UserID == nil {
			continue
		}
		if _, ok := seen[*t.UserID]; ok {
			continue
		}
		seen[*t.UserID] = struct{}{}
		ids = append(ids, *t.UserID)
	}
	return ids
}

func eventUserIDs(events []telemetry.Event) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{})
	var ids []uuid.UUID
	for _, e := range events {
		if e.UserID == nil {
			continue
		}
		if _, ok := seen[*e.UserID]; ok {
			continue
		}
		seen[*e.UserID] = struct{}{}
		ids = append(ids, *e.UserID)
	}
	return ids
}
