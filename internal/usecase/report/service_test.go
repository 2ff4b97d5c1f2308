package report

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"fleet-telematics-monitor/internal/domain/fleet"
	"fleet-telematics-monitor/internal/domain/telemetry"
	"fleet-telematics-monitor/internal/domain/user"
)

type fakeTelemetryRepo struct {
	trips  []telemetry.Trip
	events []telemetry.Event

	lastTripFilter  *telemetry.TripFilter
	lastEventFilter *telemetry.EventFilter
}

func (f *fakeTelemetryRepo) ListEvents(ctx context.Context, filter *telemetry.EventFilter) ([]telemetry.Event, int64, error) {
	return f.events, int64(len(f.events)), nil
}

func (f *fakeTelemetryRepo) ListTrips(ctx context.Context, filter *telemetry.TripFilter) ([]telemetry.Trip, int64, error) {
	return f.trips, int64(len(f.trips)), nil
}

func (f *fakeTelemetryRepo) GetEventByID(ctx context.Context, eventID string) (*telemetry.Event, error) {
	return nil, telemetry.ErrEventNotFound
}

func (f *fakeTelemetryRepo) GetTripByID(ctx context.Context, tripID string) (*telemetry.Trip, error) {
	return nil, telemetry.ErrTripNotFound
}

func (f *fakeTelemetryRepo) ListDevices(ctx context.Context) ([]telemetry.Device, error) {
	return nil, nil
}

func (f *fakeTelemetryRepo) QueryEvents(ctx context.Context, filter *telemetry.EventFilter) ([]telemetry.Event, error) {
	f.lastEventFilter = filter
	return f.events, nil
}

func (f *fakeTelemetryRepo) QueryTrips(ctx context.Context, filter *telemetry.TripFilter) ([]telemetry.Trip, error) {
	f.lastTripFilter = filter
	return f.trips, nil
}

func (f *fakeTelemetryRepo) SaveEvents(ctx context.Context, events []telemetry.Event) error {
	return nil
}

func (f *fakeTelemetryRepo) SaveTrips(ctx context.Context, trips []telemetry.Trip) error {
	return nil
}

func (f *fakeTelemetryRepo) UpsertDevice(ctx context.Context, device *telemetry.Device) error {
	return nil
}

type fakeFleetRepo struct {
	registrations map[uuid.UUID]string
}

func (f *fakeFleetRepo) GetCarByID(ctx context.Context, carID uuid.UUID) (*fleet.Car, error) {
	return nil, fleet.ErrCarNotFound
}

func (f *fakeFleetRepo) ListCars(ctx context.Context) ([]fleet.Car, error) {
	return nil, nil
}

func (f *fakeFleetRepo) ListLocations(ctx context.Context) ([]fleet.Location, error) {
	return nil, nil
}

func (f *fakeFleetRepo) CarRegistrations(ctx context.Context, carIDs []uuid.UUID) (map[uuid.UUID]string, error) {
	out := make(map[uuid.UUID]string, len(carIDs))
	for _, id := range carIDs {
		if reg, ok := f.registrations[id]; ok {
			out[id] = reg
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	emails map[uuid.UUID]string
}

func (f *fakeUserRepo) Create(ctx context.Context, u *user.User) error { return nil }

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByID(ctx context.Context, userID uuid.UUID) (*user.User, error) {
	return nil, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetAll(ctx context.Context) ([]*user.User, error) { return nil, nil }

func (f *fakeUserRepo) DriverEmails(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]string, error) {
	out := make(map[uuid.UUID]string, len(userIDs))
	for _, id := range userIDs {
		if email, ok := f.emails[id]; ok {
			out[id] = email
		}
	}
	return out, nil
}

var (
	testCar    = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	testDriver = uuid.MustParse("22222222-2222-2222-2222-222222222222")
)

// Tuesday, so the weekday bucket is 3 under the Sunday=1 convention.
var testTuesday = time.Date(2024, 4, 2, 9, 0, 0, 0, time.UTC)

func testTrip(metres int64) telemetry.Trip {
	car, driver := testCar, testDriver
	return telemetry.Trip{
		ID:            uuid.NewString(),
		DeviceSerial:  "DEV-1",
		CarID:         &car,
		UserID:        &driver,
		Start:         testTuesday,
		Stop:          testTuesday.Add(30 * time.Minute),
		MileageMetres: metres,
		State:         "finished",
	}
}

func testEvent(eventType telemetry.EventType) telemetry.Event {
	car, driver := testCar, testDriver
	return telemetry.Event{
		ID:           uuid.NewString(),
		DeviceSerial: "DEV-1",
		CarID:        &car,
		UserID:       &driver,
		Timestamp:    testTuesday,
		Type:         eventType,
	}
}

func newTestService(repo *fakeTelemetryRepo) *Service {
	return NewService(
		repo,
		&fakeFleetRepo{registrations: map[uuid.UUID]string{testCar: "AB12 CDE"}},
		&fakeUserRepo{emails: map[uuid.UUID]string{testDriver: "driver@example.com"}},
	)
}

func TestTripSummaries(t *testing.T) {
	repo := &fakeTelemetryRepo{
		trips: []telemetry.Trip{testTrip(1000), testTrip(2000), testTrip(3000)},
	}
	svc := newTestService(repo)

	got, err := svc.TripSummaries(context.Background(), &Scope{})
	if err != nil {
		t.Fatalf("TripSummaries: %v", err)
	}

	if repo.lastTripFilter == nil || !repo.lastTripFilter.LeafOnly {
		t.Error("expected the store query to exclude composite trips")
	}

	if len(got.Cars) != 1 {
		t.Fatalf("cars = %d, want 1", len(got.Cars))
	}
	car := got.Cars[0]
	if car.RegistrationNumber != "AB12 CDE" {
		t.Errorf("registration = %q, want %q", car.RegistrationNumber, "AB12 CDE")
	}
	if car.Total != 3 {
		t.Errorf("car total = %d, want 3", car.Total)
	}
	if diff := car.TotalMileage - 3.728226; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("car mileage = %v, want 3.728226", car.TotalMileage)
	}

	if len(got.Drivers) != 1 {
		t.Fatalf("drivers = %d, want 1", len(got.Drivers))
	}
	if got.Drivers[0].Email != "driver@example.com" {
		t.Errorf("driver email = %q, want %q", got.Drivers[0].Email, "driver@example.com")
	}
	if got.DriverTotals.Total != 3 {
		t.Errorf("driver grand total = %d, want 3", got.DriverTotals.Total)
	}

	if len(got.MileageByWeekday) != 7 {
		t.Fatalf("weekday buckets = %d, want 7", len(got.MileageByWeekday))
	}
	for _, b := range got.MileageByWeekday {
		want := 0.0
		if b.TimePeriod == 3 {
			want = 3.728226
		}
		if diff := b.TotalMileage - want; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("weekday %d mileage = %v, want %v", b.TimePeriod, b.TotalMileage, want)
		}
	}
	if len(got.MileageByHour) != 24 {
		t.Fatalf("hour buckets = %d, want 24", len(got.MileageByHour))
	}
}

func TestTripSummariesEmptyScope(t *testing.T) {
	svc := newTestService(&fakeTelemetryRepo{})

	got, err := svc.TripSummaries(context.Background(), &Scope{})
	if err != nil {
		t.Fatalf("TripSummaries: %v", err)
	}

	if len(got.Cars) != 0 || got.CarTotals.Total != 0 || got.CarTotals.TotalMileage != 0 {
		t.Errorf("expected empty car summary, got %+v", got.Cars)
	}
	if len(got.MileageByWeekday) != 7 || len(got.MileageByHour) != 24 {
		t.Errorf("expected densified histograms even for an empty scope")
	}
	for _, b := range got.MileageByWeekday {
		if b.TotalMileage != 0 {
			t.Errorf("weekday %d mileage = %v, want 0", b.TimePeriod, b.TotalMileage)
		}
	}
}

func TestTripSummariesRejectsInvertedRange(t *testing.T) {
	svc := newTestService(&fakeTelemetryRepo{})

	from := testTuesday
	to := testTuesday.Add(-time.Hour)
	_, err := svc.TripSummaries(context.Background(), &Scope{From: &from, To: &to})
	if err == nil {
		t.Fatal("expected an error for an inverted time range")
	}
}

func TestAlertSummaries(t *testing.T) {
	repo := &fakeTelemetryRepo{
		events: []telemetry.Event{
			testEvent(telemetry.EventLow),
			testEvent(telemetry.EventLow),
			testEvent(telemetry.EventMedium),
			testEvent(telemetry.EventHigh),
			testEvent(telemetry.EventInput1),
		},
	}
	svc := newTestService(repo)

	got, err := svc.AlertSummaries(context.Background(), &Scope{})
	if err != nil {
		t.Fatalf("AlertSummaries: %v", err)
	}

	if repo.lastEventFilter == nil || repo.lastEventFilter.HasUser == nil || !*repo.lastEventFilter.HasUser {
		t.Error("expected the store query to require an associated driver")
	}

	if len(got.Drivers) != 1 {
		t.Fatalf("drivers = %d, want 1", len(got.Drivers))
	}
	d := got.Drivers[0]
	if d.LowTotal != 2 || d.MediumTotal != 1 || d.HighTotal != 1 || d.OverspeedTotal != 1 {
		t.Errorf("severity counts = %d/%d/%d/%d, want 2/1/1/1",
			d.LowTotal, d.MediumTotal, d.HighTotal, d.OverspeedTotal)
	}
	if d.TotalAlerts != 5 {
		t.Errorf("total alerts = %d, want 5", d.TotalAlerts)
	}
	if got.Totals.TotalAlerts != 5 {
		t.Errorf("grand total alerts = %d, want 5", got.Totals.TotalAlerts)
	}
}
