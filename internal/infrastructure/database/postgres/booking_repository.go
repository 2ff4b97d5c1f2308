package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fleet-telematics-monitor/internal/domain/booking"
	"fleet-telematics-monitor/internal/infrastructure/database/postgres/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingRepository struct {
	db *DB
}

func NewBookingRepository(db *DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	b.ID = uuid.New()
	b.CreatedAt = time.Now()
	b.UpdatedAt = time.Now()

	dbModel := toBookingModel(b)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, bookingID uuid.UUID) (*booking.Booking, error) {
	var dbModel models.BookingModel
	err := r.db.DB.WithContext(ctx).Where("id = ?", bookingID).First(&dbModel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, booking.ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	entity := toBookingEntity(&dbModel)
	return &entity, nil
}

func (r *BookingRepository) List(ctx context.Context, filter *booking.Filter) ([]booking.Booking, int64, error) {
	db := r.db.DB.WithContext(ctx).Model(&models.BookingModel{})

	if filter != nil {
		if filter.UserID != nil {
			db = db.Where("user_id = ?", *filter.UserID)
		}
		if filter.CarID != nil {
			db = db.Where("car_id = ?", *filter.CarID)
		}
		if filter.StartsAfter != nil {
			db = db.Where("start_time >= ?", filter.StartsAfter)
		}
		if filter.EndsBefore != nil {
			db = db.Where("end_time <= ?", filter.EndsBefore)
		}
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count bookings: %w", err)
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

	var dbModels []models.BookingModel
	err := db.Order("start_time DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&dbModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list bookings: %w", err)
	}

	bookings := make([]booking.Booking, len(dbModels))
	for i := range dbModels {
		bookings[i] = toBookingEntity(&dbModels[i])
	}
	return bookings, total, nil
}

func toBookingModel(b *booking.Booking) *models.BookingModel {
	return &models.BookingModel{
		ID:              b.ID,
		UserID:          b.UserID,
		StartLocationID: b.StartLocationID,
		EndLocationID:   b.EndLocationID,
		StartTime:       b.StartTime,
		EndTime:         b.EndTime,
		CarID:           b.CarID,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func toBookingEntity(m *models.BookingModel) booking.Booking {
	return booking.Booking{
		ID:              m.ID,
		UserID:          m.UserID,
		StartLocationID: m.StartLocationID,
		EndLocationID:   m.EndLocationID,
		StartTime:       m.StartTime,
		EndTime:         m.EndTime,
		CarID:           m.CarID,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
