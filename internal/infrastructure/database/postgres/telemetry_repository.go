package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fleet-telematics-monitor/internal/domain/telemetry"
	"fleet-telematics-monitor/internal/infrastructure/database/postgres/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TelemetryRepository struct {
	db *DB
}

func NewTelemetryRepository(db *DB) *TelemetryRepository {
	return &TelemetryRepository{db: db}
}

// applyEventFilter translates the explicit filter into one GORM query; the
// caller decides pagination.
func (r *TelemetryRepository) applyEventFilter(ctx context.Context, filter *telemetry.EventFilter) *gorm.DB {
	db := r.db.DB.WithContext(ctx).Model(&models.EventModel{})

	if filter == nil {
		return db
	}
	if filter.DeviceSerial != nil {
		db = db.Where("device_serial = ?", *filter.DeviceSerial)
	}
	if filter.CarID != nil {
		db = db.Where("car_id = ?", *filter.CarID)
	}
	if filter.BookingID != nil {
		db = db.Where("booking_id = ?", *filter.BookingID)
	}
	if filter.UserID != nil {
		db = db.Where("user_id = ?", *filter.UserID)
	}
	if filter.Type != nil {
		db = db.Where("type = ?", string(*filter.Type))
	}
	if filter.HasUser != nil {
		if *filter.HasUser {
			db = db.Where("user_id IS NOT NULL")
		} else {
			db = db.Where("user_id IS NULL")
		}
	}
	if filter.From != nil {
		db = db.Where("timestamp >= ?", filter.From)
	}
	if filter.To != nil {
		db = db.Where("timestamp <= ?", filter.To)
	}

	return db
}

func (r *TelemetryRepository) applyTripFilter(ctx context.Context, filter *telemetry.TripFilter) *gorm.DB {
	db := r.db.DB.WithContext(ctx).Model(&models.TripModel{}).
		Select("trips.*, EXISTS (SELECT 1 FROM trips children WHERE children.parent_trip_id = trips.id) AS has_child_trips")

	if filter == nil {
		return db
	}
	if filter.DeviceSerial != nil {
		db = db.Where("device_serial = ?", *filter.DeviceSerial)
	}
	if filter.CarID != nil {
		db = db.Where("car_id = ?", *filter.CarID)
	}
	if filter.BookingID != nil {
		db = db.Where("booking_id = ?", *filter.BookingID)
	}
	if filter.UserID != nil {
		db = db.Where("user_id = ?", *filter.UserID)
	}
	if filter.State != nil {
		db = db.Where("state = ?", *filter.State)
	}
	if filter.LeafOnly {
		db = db.Where("NOT EXISTS (SELECT 1 FROM trips children WHERE children.parent_trip_id = trips.id)")
	}
	if filter.From != nil {
		db = db.Where("start >= ?", filter.From)
	}
	if filter.To != nil {
		db = db.Where("start <= ?", filter.To)
	}

	return db
}

func (r *TelemetryRepository) ListEvents(ctx context.Context, filter *telemetry.EventFilter) ([]telemetry.Event, int64, error) {
	db := r.applyEventFilter(ctx, filter)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count events: %w", err)
	}

	page, pageSize := 1, 20
	if filter != nil {
		if filter.Page > 0 {
			page = filter.Page
		}
		if filter.PageSize > 0 {
			pageSize = filter.PageSize
		}
	}

	var dbModels []models.EventModel
	err := db.Order("timestamp DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&dbModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list events: %w", err)
	}

	return toEventEntities(dbModels), total, nil
}

func (r *TelemetryRepository) ListTrips(ctx context.Context, filter *telemetry.TripFilter) ([]telemetry.Trip, int64, error) {
	db := r.applyTripFilter(ctx, filter)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count trips: %w", err)
	}

	page, pageSize := 1, 20
	if filter != nil {
		if filter.Page > 0 {
			page = filter.Page
		}
		if filter.PageSize > 0 {
			pageSize = filter.PageSize
		}
	}

	var dbModels []models.TripModel
	err := db.Order("start DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&dbModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list trips: %w", err)
	}

	return toTripEntities(dbModels), total, nil
}

// QueryEvents fetches every event matching the filter in one pass. Report
// builders rely on this so a summary is computed from a single consistent
// read.
func (r *TelemetryRepository) QueryEvents(ctx context.Context, filter *telemetry.EventFilter) ([]telemetry.Event, error) {
	var dbModels []models.EventModel
	err := r.applyEventFilter(ctx, filter).Order("timestamp ASC").Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	return toEventEntities(dbModels), nil
}

func (r *TelemetryRepository) QueryTrips(ctx context.Context, filter *telemetry.TripFilter) ([]telemetry.Trip, error) {
	var dbModels []models.TripModel
	err := r.applyTripFilter(ctx, filter).Order("start ASC").Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query trips: %w", err)
	}
	return toTripEntities(dbModels), nil
}

func (r *TelemetryRepository) GetEventByID(ctx context.Context, eventID string) (*telemetry.Event, error) {
	var dbModel models.EventModel
	err := r.db.DB.WithContext(ctx).Where("id = ?", eventID).First(&dbModel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, telemetry.ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	entity := toEventEntity(&dbModel)
	return &entity, nil
}

func (r *TelemetryRepository) GetTripByID(ctx context.Context, tripID string) (*telemetry.Trip, error) {
	var dbModel models.TripModel
	err := r.db.DB.WithContext(ctx).Model(&models.TripModel{}).
		Select("trips.*, EXISTS (SELECT 1 FROM trips children WHERE children.parent_trip_id = trips.id) AS has_child_trips").
		Where("id = ?", tripID).
		First(&dbModel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, telemetry.ErrTripNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}

	entity := toTripEntity(&dbModel)
	return &entity, nil
}

func (r *TelemetryRepository) ListDevices(ctx context.Context) ([]telemetry.Device, error) {
	var dbModels []models.DeviceModel
	err := r.db.DB.WithContext(ctx).Order("serial ASC").Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}

	devices := make([]telemetry.Device, len(dbModels))
	for i, m := range dbModels {
		devices[i] = telemetry.Device{
			Serial:       m.Serial,
			ProjectID:    m.ProjectID,
			LicensePlate: m.LicensePlate,
			Zone:         m.Zone,
			CarID:        m.CarID,
			CreatedAt:    m.CreatedAt,
			UpdatedAt:    m.UpdatedAt,
		}
	}
	return devices, nil
}

// SaveEvents inserts a batch of events, skipping IDs already ingested so
// provider re-deliveries stay idempotent.
func (r *TelemetryRepository) SaveEvents(ctx context.Context, events []telemetry.Event) error {
	if len(events) == 0 {
		return nil
	}

	dbModels := make([]models.EventModel, len(events))
	now := time.Now()
	for i, e := range events {
		dbModels[i] = models.EventModel{
			ID:           e.ID,
			DeviceSerial: e.DeviceSerial,
			CarID:        e.CarID,
			BookingID:    e.BookingID,
			KeyID:        e.KeyID,
			UserID:       e.UserID,
			Timestamp:    e.Timestamp,
			Type:         string(e.Type),
			CreatedAt:    now,
			UpdatedAt:    now,
		}
	}

	err := r.db.DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&dbModels).Error
	if err != nil {
		return fmt.Errorf("failed to save events: %w", err)
	}
	return nil
}

// SaveTrips upserts a batch of trips. The provider re-reports trips as their
// state settles, so later deliveries overwrite the mutable columns.
func (r *TelemetryRepository) SaveTrips(ctx context.Context, trips []telemetry.Trip) error {
	if len(trips) == 0 {
		return nil
	}

	dbModels := make([]models.TripModel, len(trips))
	now := time.Now()
	for i, t := range trips {
		dbModels[i] = models.TripModel{
			ID:            t.ID,
			DeviceSerial:  t.DeviceSerial,
			CarID:         t.CarID,
			BookingID:     t.BookingID,
			KeyID:         t.KeyID,
			UserID:        t.UserID,
			ParentTripID:  t.ParentTripID,
			Start:         t.Start,
			Stop:          t.Stop,
			MileageMetres: t.MileageMetres,
			State:         t.State,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
	}

	err := r.db.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"stop", "mileage_metres", "state", "updated_at"}),
		}).
		Create(&dbModels).Error
	if err != nil {
		return fmt.Errorf("failed to save trips: %w", err)
	}
	return nil
}

func (r *TelemetryRepository) UpsertDevice(ctx context.Context, device *telemetry.Device) error {
	dbModel := models.DeviceModel{
		Serial:       device.Serial,
		ProjectID:    device.ProjectID,
		LicensePlate: device.LicensePlate,
		Zone:         device.Zone,
		CarID:        device.CarID,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	err := r.db.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "serial"}},
			DoUpdates: clause.AssignmentColumns([]string{"project_id", "license_plate", "zone", "car_id", "updated_at"}),
		}).
		Create(&dbModel).Error
	if err != nil {
		return fmt.Errorf("failed to upsert device: %w", err)
	}
	return nil
}

func toEventEntity(m *models.EventModel) telemetry.Event {
	return telemetry.Event{
		ID:           m.ID,
		DeviceSerial: m.DeviceSerial,
		CarID:        m.CarID,
		BookingID:    m.BookingID,
		KeyID:        m.KeyID,
		UserID:       m.UserID,
		Timestamp:    m.Timestamp,
		Type:         telemetry.EventType(m.Type),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toEventEntities(dbModels []models.EventModel) []telemetry.Event {
	events := make([]telemetry.Event, len(dbModels))
	for i := range dbModels {
		events[i] = toEventEntity(&dbModels[i])
	}
	return events
}

func toTripEntity(m *models.TripModel) telemetry.Trip {
	return telemetry.Trip{
		ID:            m.ID,
		DeviceSerial:  m.DeviceSerial,
		CarID:         m.CarID,
		BookingID:     m.BookingID,
		KeyID:         m.KeyID,
		UserID:        m.UserID,
		ParentTripID:  m.ParentTripID,
		Start:         m.Start,
		Stop:          m.Stop,
		MileageMetres: m.MileageMetres,
		State:         m.State,
		HasChildTrips: m.HasChildTrips,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toTripEntities(dbModels []models.TripModel) []telemetry.Trip {
	trips := make([]telemetry.Trip, len(dbModels))
	for i := range dbModels {
		trips[i] = toTripEntity(&dbModels[i])
	}
	return trips
}
