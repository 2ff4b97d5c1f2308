package booking

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domainBooking "fleet-telematics-monitor/internal/domain/booking"
	"fleet-telematics-monitor/internal/logger"
	appErrors "fleet-telematics-monitor/pkg/errors"
	"fleet-telematics-monitor/pkg/utils"
)

// Service implements booking and key-custody use cases.
type Service struct {
	bookingRepo domainBooking.Repository
	keyRepo     domainBooking.KeyRepository
}

func NewService(bookingRepo domainBooking.Repository, keyRepo domainBooking.KeyRepository) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		keyRepo:     keyRepo,
	}
}

func (s *Service) CreateBooking(ctx context.Context, req *CreateBookingRequest) (*BookingResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}
	if !req.EndTime.After(req.StartTime) {
		return nil, appErrors.NewAppError("INVALID_WINDOW", "Invalid booking window", domainBooking.ErrInvalidWindow)
	}

	b := &domainBooking.Booking{
		UserID:          req.UserID,
		StartLocationID: req.StartLocationID,
		EndLocationID:   req.EndLocationID,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		CarID:           req.CarID,
	}
	if err := s.bookingRepo.Create(ctx, b); err != nil {
		return nil, err
	}

	logger.Info("Booking created",
		zap.String("booking_id", b.ID.String()),
		zap.String("user_id", b.UserID.String()),
		zap.String("event", "booking_created"),
	)

	return ToBookingResponse(b), nil
}

func (s *Service) GetBooking(ctx context.Context, bookingID uuid.UUID) (*BookingResponse, error) {
	b, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	return ToBookingResponse(b), nil
}

func (s *Service) ListBookings(ctx context.Context, filter *domainBooking.Filter) (*BookingListResponse, error) {
	bookings, total, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	items := make([]*BookingResponse, len(bookings))
	for i := range bookings {
		items[i] = ToBookingResponse(&bookings[i])
	}
	return &BookingListResponse{Items: items, Total: total}, nil
}

// CreateKey allocates a physical key against a booking. The key starts in
// the allocated state with no operations on its trail.
func (s *Service) CreateKey(ctx context.Context, req *CreateKeyRequest) (*KeyResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	if _, err := s.bookingRepo.GetByID(ctx, req.BookingID); err != nil {
		return nil, err
	}

	key := &domainBooking.Key{
		UserID:       req.UserID,
		BookingID:    req.BookingID,
		LatestStatus: domainBooking.StatusAllocated,
	}
	if err := s.keyRepo.Create(ctx, key); err != nil {
		return nil, err
	}

	logger.Info("Key allocated",
		zap.String("key_id", key.ID.String()),
		zap.String("booking_id", key.BookingID.String()),
		zap.String("event", "key_allocated"),
	)

	return ToKeyResponse(key), nil
}

func (s *Service) GetKey(ctx context.Context, keyID uuid.UUID) (*KeyResponse, error) {
	key, err := s.keyRepo.GetByID(ctx, keyID)
	if err != nil {
		return nil, err
	}
	return ToKeyResponse(key), nil
}

func (s *Service) ListKeys(ctx context.Context, bookingID uuid.UUID) ([]*KeyResponse, error) {
	keys, err := s.keyRepo.ListByBooking(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}

	responses := make([]*KeyResponse, len(keys))
	for i := range keys {
		responses[i] = ToKeyResponse(&keys[i])
	}
	return responses, nil
}

// RecordKeyOperation appends an operation to the key's audit trail. The
// trail is append-only; the key's cached latest fields are refreshed by the
// repository in the same transaction.
func (s *Service) RecordKeyOperation(ctx context.Context, keyID uuid.UUID, req *RecordKeyOperationRequest) (*KeyHistoryResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	history, err := s.keyRepo.RecordTransition(ctx, keyID,
		domainBooking.KeyOperation(req.Operation),
		domainBooking.KeyStatus(req.Status),
	)
	if err != nil {
		return nil, err
	}

	logger.Info("Key operation recorded",
		zap.String("key_id", keyID.String()),
		zap.String("operation", req.Operation),
		zap.String("status", req.Status),
		zap.String("event", "key_operation_recorded"),
	)

	return ToKeyHistoryResponse(history), nil
}

func (s *Service) KeyHistory(ctx context.Context, keyID uuid.UUID) ([]*KeyHistoryResponse, error) {
	if _, err := s.keyRepo.GetByID(ctx, keyID); err != nil {
		return nil, err
	}

	entries, err := s.keyRepo.History(ctx, keyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load key history: %w", err)
	}

	responses := make([]*KeyHistoryResponse, len(entries))
	for i := range entries {
		responses[i] = ToKeyHistoryResponse(&entries[i])
	}
	return responses, nil
}
