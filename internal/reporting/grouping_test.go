package reporting

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"fleet-telematics-monitor/internal/domain/telemetry"
)

var (
	carA    = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	carB    = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	driverD = uuid.MustParse("33333333-3333-3333-3333-333333333333")
	driverE = uuid.MustParse("44444444-4444-4444-4444-444444444444")
)

func leafTrip(id string, car *uuid.UUID, user *uuid.UUID, start time.Time, metres int64) telemetry.Trip {
	return telemetry.Trip{
		ID:            id,
		DeviceSerial:  "SC-0001",
		CarID:         car,
		UserID:        user,
		Start:         start,
		Stop:          start.Add(30 * time.Minute),
		MileageMetres: metres,
		State:         "finished",
	}
}

func alertEvent(id string, user *uuid.UUID, eventType telemetry.EventType) telemetry.Event {
	return telemetry.Event{
		ID:           id,
		DeviceSerial: "SC-0001",
		CarID:        &carA,
		UserID:       user,
		Timestamp:    time.Date(2024, 4, 2, 9, 0, 0, 0, time.UTC),
		Type:         eventType,
	}
}

func byCar(t telemetry.Trip) (uuid.UUID, bool) {
	if t.CarID == nil {
		return uuid.Nil, false
	}
	return *t.CarID, true
}

func TestGroupTripsAggregatesPerKey(t *testing.T) {
	start := time.Date(2024, 4, 2, 9, 0, 0, 0, time.UTC)
	trips := []telemetry.Trip{
		leafTrip("t1", &carA, &driverD, start, 1000),
		leafTrip("t2", &carB, &driverD, start, 500),
		leafTrip("t3", &carA, &driverE, start, 2000),
	}

	groups := GroupTrips(trips, byCar)

	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	if groups[0].Key != carA || groups[0].TripCount != 2 || groups[0].MileageMetres != 3000 {
		t.Errorf("car A group = %+v, want key=%s count=2 mileage=3000", groups[0], carA)
	}
	if groups[1].Key != carB || groups[1].TripCount != 1 || groups[1].MileageMetres != 500 {
		t.Errorf("car B group = %+v, want key=%s count=1 mileage=500", groups[1], carB)
	}
}

func TestGroupTripsIsExhaustive(t *testing.T) {
	start := time.Date(2024, 4, 2, 9, 0, 0, 0, time.UTC)
	trips := []telemetry.Trip{
		leafTrip("t1", &carA, nil, start, 100),
		leafTrip("t2", &carB, nil, start, 200),
		leafTrip("t3", &carA, nil, start, 300),
		leafTrip("t4", &carB, nil, start, 400),
	}

	groups := GroupTrips(trips, byCar)

	total := 0
	for _, g := range groups {
		total += g.TripCount
	}
	if total != len(trips) {
		t.Errorf("group counts sum to %d, want %d: no record may be dropped or double-counted", total, len(trips))
	}
}

func TestGroupTripsSkipsRecordsWithoutKey(t *testing.T) {
	start := time.Date(2024, 4, 2, 9, 0, 0, 0, time.UTC)
	trips := []telemetry.Trip{
		leafTrip("t1", &carA, nil, start, 100),
		leafTrip("t2", nil, nil, start, 9000),
	}

	groups := GroupTrips(trips, byCar)

	if len(groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(groups))
	}
	if groups[0].MileageMetres != 100 {
		t.Errorf("mileage = %d, want 100: keyless trip must not leak into another group", groups[0].MileageMetres)
	}
}

func TestGroupTripsEmptyInput(t *testing.T) {
	groups := GroupTrips(nil, byCar)
	if len(groups) != 0 {
		t.Errorf("got %d groups for empty input, want 0", len(groups))
	}
}

func TestGroupTripsOrderIsFirstAppearance(t *testing.T) {
	start := time.Date(2024, 4, 2, 9, 0, 0, 0, time.UTC)
	trips := []telemetry.Trip{
		leafTrip("t1", &carB, nil, start, 100),
		leafTrip("t2", &carA, nil, start, 200),
		leafTrip("t3", &carB, nil, start, 300),
	}

	groups := GroupTrips(trips, byCar)

	if groups[0].Key != carB || groups[1].Key != carA {
		t.Errorf("group order = [%s %s], want first-appearance order [%s %s]",
			groups[0].Key, groups[1].Key, carB, carA)
	}
}

func TestGroupAlertsCountsSeverities(t *testing.T) {
	events := []telemetry.Event{
		alertEvent("e1", &driverD, telemetry.EventLow),
		alertEvent("e2", &driverD, telemetry.EventLow),
		alertEvent("e3", &driverD, telemetry.EventMedium),
		alertEvent("e4", &driverD, telemetry.EventHigh),
		alertEvent("e5", &driverD, telemetry.EventInput1),
		alertEvent("e6", &driverD, telemetry.EventIgnitionOn),
	}

	groups := GroupAlerts(events, func(e telemetry.Event) (uuid.UUID, bool) {
		if e.UserID == nil {
			return uuid.Nil, false
		}
		return *e.UserID, true
	})

	if len(groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(groups))
	}
	g := groups[0]
	if g.LowTotal != 2 || g.MediumTotal != 1 || g.HighTotal != 1 || g.OverspeedTotal != 1 {
		t.Errorf("severity counts = %+v, want low=2 medium=1 high=1 overspeed=1", g)
	}
	if g.TotalAlerts != 5 {
		t.Errorf("TotalAlerts = %d, want 5: lifecycle events must not count", g.TotalAlerts)
	}
}
