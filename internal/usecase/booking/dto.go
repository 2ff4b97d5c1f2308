package booking

import (
	"time"

	"github.com/google/uuid"

	domainBooking "fleet-telematics-monitor/internal/domain/booking"
)

type CreateBookingRequest struct {
	UserID          uuid.UUID  `json:"user_id" validate:"required"`
	StartLocationID uuid.UUID  `json:"start_location_id" validate:"required"`
	EndLocationID   *uuid.UUID `json:"end_location_id"`
	StartTime       time.Time  `json:"start_time" validate:"required"`
	EndTime         time.Time  `json:"end_time" validate:"required"`
	CarID           *uuid.UUID `json:"car_id"`
}

type CreateKeyRequest struct {
	UserID    uuid.UUID `json:"user_id" validate:"required"`
	BookingID uuid.UUID `json:"booking_id" validate:"required"`
}

type RecordKeyOperationRequest struct {
	Operation string `json:"operation" validate:"required,oneof=takeout putback"`
	Status    string `json:"status" validate:"required,oneof=allocated taken returned missing"`
}

type BookingResponse struct {
	ID              uuid.UUID  `json:"id"`
	UserID          uuid.UUID  `json:"user_id"`
	StartLocationID uuid.UUID  `json:"start_location_id"`
	EndLocationID   *uuid.UUID `json:"end_location_id,omitempty"`
	StartTime       time.Time  `json:"start_time"`
	EndTime         time.Time  `json:"end_time"`
	CarID           *uuid.UUID `json:"car_id,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

type KeyResponse struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	BookingID       uuid.UUID `json:"booking_id"`
	IsPutBack       bool      `json:"is_put_back"`
	LatestOperation string    `json:"latest_operation"`
	LatestStatus    string    `json:"latest_status"`
	CreatedAt       time.Time `json:"created_at"`
}

type KeyHistoryResponse struct {
	ID        uuid.UUID `json:"id"`
	KeyID     uuid.UUID `json:"key_id"`
	Operation string    `json:"operation"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type BookingListResponse struct {
	Items []*BookingResponse `json:"items"`
	Total int64              `json:"total"`
}

func ToBookingResponse(b *domainBooking.Booking) *BookingResponse {
	return &BookingResponse{
		ID:              b.ID,
		UserID:          b.UserID,
		StartLocationID: b.StartLocationID,
		EndLocationID:   b.EndLocationID,
		StartTime:       b.StartTime,
		EndTime:         b.EndTime,
		CarID:           b.CarID,
		CreatedAt:       b.CreatedAt,
	}
}

func ToKeyResponse(k *domainBooking.Key) *KeyResponse {
	return &KeyResponse{
		ID:              k.ID,
		UserID:          k.UserID,
		BookingID:       k.BookingID,
		IsPutBack:       k.IsPutBack,
		LatestOperation: string(k.LatestOperation),
		LatestStatus:    string(k.LatestStatus),
		CreatedAt:       k.CreatedAt,
	}
}

func ToKeyHistoryResponse(h *domainBooking.KeyHistory) *KeyHistoryResponse {
	return &KeyHistoryResponse{
		ID:        h.ID,
		KeyID:     h.KeyID,
		Operation: string(h.Operation),
		Status:    string(h.Status),
		CreatedAt: h.CreatedAt,
	}
}
