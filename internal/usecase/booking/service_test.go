package booking

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	domainBooking "fleet-telematics-monitor/internal/domain/booking"
)

type fakeBookingRepo struct {
	bookings map[uuid.UUID]domainBooking.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[uuid.UUID]domainBooking.Booking)}
}

func (f *fakeBookingRepo) Create(ctx context.Context, b *domainBooking.Booking) error {
	b.ID = uuid.New()
	b.CreatedAt = time.Now()
	f.bookings[b.ID] = *b
	return nil
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, bookingID uuid.UUID) (*domainBooking.Booking, error) {
	b, ok := f.bookings[bookingID]
	if !ok {
		return nil, domainBooking.ErrBookingNotFound
	}
	return &b, nil
}

func (f *fakeBookingRepo) List(ctx context.Context, filter *domainBooking.Filter) ([]domainBooking.Booking, int64, error) {
	var out []domainBooking.Booking
	for _, b := range f.bookings {
		out = append(out, b)
	}
	return out, int64(len(out)), nil
}

type fakeKeyRepo struct {
	keys    map[uuid.UUID]domainBooking.Key
	history map[uuid.UUID][]domainBooking.KeyHistory
}

func newFakeKeyRepo() *fakeKeyRepo {
	return &fakeKeyRepo{
		keys:    make(map[uuid.UUID]domainBooking.Key),
		history: make(map[uuid.UUID][]domainBooking.KeyHistory),
	}
}

func (f *fakeKeyRepo) GetByID(ctx context.Context, keyID uuid.UUID) (*domainBooking.Key, error) {
	k, ok := f.keys[keyID]
	if !ok {
		return nil, domainBooking.ErrKeyNotFound
	}
	return &k, nil
}

func (f *fakeKeyRepo) ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]domainBooking.Key, error) {
	var out []domainBooking.Key
	for _, k := range f.keys {
		if k.BookingID == bookingID {
			out = append(out, k)
		}
	}
	return out, nil
}

func (f *fakeKeyRepo) Create(ctx context.Context, key *domainBooking.Key) error {
	key.ID = uuid.New()
	key.CreatedAt = time.Now()
	f.keys[key.ID] = *key
	return nil
}

func (f *fakeKeyRepo) RecordTransition(ctx context.Context, keyID uuid.UUID, op domainBooking.KeyOperation, status domainBooking.KeyStatus) (*domainBooking.KeyHistory, error) {
	key, ok := f.keys[keyID]
	if !ok {
		return nil, domainBooking.ErrKeyNotFound
	}

	entry := domainBooking.KeyHistory{
		ID:        uuid.New(),
		KeyID:     keyID,
		Operation: op,
		Status:    status,
		CreatedAt: time.Now(),
	}
	f.history[keyID] = append(f.history[keyID], entry)

	key.LatestOperation = op
	key.LatestStatus = status
	if op == domainBooking.OperationReturn {
		key.IsPutBack = true
	}
	f.keys[keyID] = key

	return &entry, nil
}

func (f *fakeKeyRepo) History(ctx context.Context, keyID uuid.UUID) ([]domainBooking.KeyHistory, error) {
	return f.history[keyID], nil
}

func newTestService() (*Service, *fakeBookingRepo, *fakeKeyRepo) {
	bookingRepo := newFakeBookingRepo()
	keyRepo := newFakeKeyRepo()
	return NewService(bookingRepo, keyRepo), bookingRepo, keyRepo
}

func createTestBooking(t *testing.T, svc *Service) *BookingResponse {
	t.Helper()

	start := time.Date(2024, 4, 2, 9, 0, 0, 0, time.UTC)
	resp, err := svc.CreateBooking(context.Background(), &CreateBookingRequest{
		UserID:          uuid.New(),
		StartLocationID: uuid.New(),
		StartTime:       start,
		EndTime:         start.Add(4 * time.Hour),
	})
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	return resp
}

func TestCreateBookingRejectsInvertedWindow(t *testing.T) {
	svc, _, _ := newTestService()

	start := time.Date(2024, 4, 2, 9, 0, 0, 0, time.UTC)
	_, err := svc.CreateBooking(context.Background(), &CreateBookingRequest{
		UserID:          uuid.New(),
		StartLocationID: uuid.New(),
		StartTime:       start,
		EndTime:         start.Add(-time.Hour),
	})
	if err == nil {
		t.Fatal("expected an error for end before start")
	}
}

func TestKeyLifecycle(t *testing.T) {
	svc, _, keyRepo := newTestService()
	b := createTestBooking(t, svc)

	key, err := svc.CreateKey(context.Background(), &CreateKeyRequest{
		UserID:    b.UserID,
		BookingID: b.ID,
	})
	if err != nil {
		t.Fatalf("CreateKey: %v", err)
	}
	if key.LatestStatus != string(domainBooking.StatusAllocated) {
		t.Errorf("new key status = %q, want %q", key.LatestStatus, domainBooking.StatusAllocated)
	}

	_, err = svc.RecordKeyOperation(context.Background(), key.ID, &RecordKeyOperationRequest{
		Operation: "takeout",
		Status:    "taken",
	})
	if err != nil {
		t.Fatalf("RecordKeyOperation takeout: %v", err)
	}

	_, err = svc.RecordKeyOperation(context.Background(), key.ID, &RecordKeyOperationRequest{
		Operation: "putback",
		Status:    "returned",
	})
	if err != nil {
		t.Fatalf("RecordKeyOperation putback: %v", err)
	}

	got, err := svc.GetKey(context.Background(), key.ID)
	if err != nil {
		t.Fatalf("GetKey: %v", err)
	}
	if !got.IsPutBack {
		t.Error("expected key to be marked put back after a return")
	}
	if got.LatestOperation != string(domainBooking.OperationReturn) {
		t.Errorf("latest operation = %q, want %q", got.LatestOperation, domainBooking.OperationReturn)
	}

	history, err := svc.KeyHistory(context.Background(), key.ID)
	if err != nil {
		t.Fatalf("KeyHistory: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("history length = %d, want 2", len(history))
	}
	if history[0].Operation != "takeout" || history[1].Operation != "putback" {
		t.Errorf("history order = %q,%q, want takeout,putback", history[0].Operation, history[1].Operation)
	}

	if len(keyRepo.history[key.ID]) != 2 {
		t.Errorf("repo trail length = %d, want 2", len(keyRepo.history[key.ID]))
	}
}

func TestRecordKeyOperationValidation(t *testing.T) {
	svc, _, _ := newTestService()
	b := createTestBooking(t, svc)

	key, err := svc.CreateKey(context.Background(), &CreateKeyRequest{
		UserID:    b.UserID,
		BookingID: b.ID,
	})
	if err != nil {
		t.Fatalf("CreateKey: %v", err)
	}

	_, err = svc.RecordKeyOperation(context.Background(), key.ID, &RecordKeyOperationRequest{
		Operation: "incinerate",
		Status:    "taken",
	})
	if err == nil {
		t.Error("expected an error for an unknown operation")
	}

	_, err = svc.RecordKeyOperation(context.Background(), uuid.New(), &RecordKeyOperationRequest{
		Operation: "takeout",
		Status:    "taken",
	})
	if err == nil {
		t.Error("expected an error for an unknown key")
	}
}
