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
	"gorm.io/gorm/clause"
)

type KeyRepository struct {
	db *DB
}

func NewKeyRepository(db *DB) *KeyRepository {
	return &KeyRepository{db: db}
}

func (r *KeyRepository) GetByID(ctx context.Context, keyID uuid.UUID) (*booking.Key, error) {
	var dbModel models.KeyModel
	err := r.db.DB.WithContext(ctx).Where("id = ?", keyID).First(&dbModel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, booking.ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get key: %w", err)
	}

	entity := toKeyEntity(&dbModel)
	return &entity, nil
}

func (r *KeyRepository) ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]booking.Key, error) {
	var dbModels []models.KeyModel
	err := r.db.DB.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("created_at DESC").
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}

	keys := make([]booking.Key, len(dbModels))
	for i := range dbModels {
		keys[i] = toKeyEntity(&dbModels[i])
	}
	return keys, nil
}

func (r *KeyRepository) Create(ctx context.Context, key *booking.Key) error {
	key.ID = uuid.New()
	key.CreatedAt = time.Now()
	key.UpdatedAt = time.Now()

	dbModel := models.KeyModel{
		ID:              key.ID,
		UserID:          key.UserID,
		BookingID:       key.BookingID,
		IsPutBack:       key.IsPutBack,
		IsDeleted:       key.IsDeleted,
		LatestOperation: string(key.LatestOperation),
		LatestStatus:    string(key.LatestStatus),
		CreatedAt:       key.CreatedAt,
		UpdatedAt:       key.UpdatedAt,
	}
	if err := r.db.DB.WithContext(ctx).Create(&dbModel).Error; err != nil {
		return fmt.Errorf("failed to create key: %w", err)
	}
	return nil
}

// RecordTransition appends a history row and refreshes the key's cached
// latest_* columns in one transaction, so a concurrent reader never sees the
// cache disagree with the trail.
func (r *KeyRepository) RecordTransition(ctx context.Context, keyID uuid.UUID, op booking.KeyOperation, status booking.KeyStatus) (*booking.KeyHistory, error) {
	history := models.KeyHistoryModel{
		ID:        uuid.New(),
		KeyID:     keyID,
		Operation: string(op),
		Status:    string(status),
		CreatedAt: time.Now(),
	}

	err := r.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Row lock keeps transitions for one key serialized.
		var key models.KeyModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", keyID).
			First(&key).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return booking.ErrKeyNotFound
			}
			return err
		}

		if err := tx.Create(&history).Error; err != nil {
			return err
		}

		updates := map[string]interface{}{
			"latest_operation": history.Operation,
			"latest_status":    history.Status,
			"updated_at":       time.Now(),
		}
		if op == booking.OperationReturn {
			updates["is_put_back"] = true
		}
		return tx.Model(&models.KeyModel{}).Where("id = ?", keyID).Updates(updates).Error
	})
	if err != nil {
		if errors.Is(err, booking.ErrKeyNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to record key transition: %w", err)
	}

	return &booking.KeyHistory{
		ID:        history.ID,
		KeyID:     history.KeyID,
		Operation: op,
		Status:    status,
		CreatedAt: history.CreatedAt,
	}, nil
}

func (r *KeyRepository) History(ctx context.Context, keyID uuid.UUID) ([]booking.KeyHistory, error) {
	var dbModels []models.KeyHistoryModel
	err := r.db.DB.WithContext(ctx).
		Where("key_id = ?", keyID).
		Order("created_at ASC").
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load key history: %w", err)
	}

	history := make([]booking.KeyHistory, len(dbModels))
	for i, m := range dbModels {
		history[i] = booking.KeyHistory{
			ID:        m.ID,
			KeyID:     m.KeyID,
			Operation: booking.KeyOperation(m.Operation),
			Status:    booking.KeyStatus(m.Status),
			CreatedAt: m.CreatedAt,
		}
	}
	return history, nil
}

func toKeyEntity(m *models.KeyModel) booking.Key {
	return booking.Key{
		ID:              m.ID,
		UserID:          m.UserID,
		BookingID:       m.BookingID,
		IsPutBack:       m.IsPutBack,
		IsDeleted:       m.IsDeleted,
		LatestOperation: booking.KeyOperation(m.LatestOperation),
		LatestStatus:    booking.KeyStatus(m.LatestStatus),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
