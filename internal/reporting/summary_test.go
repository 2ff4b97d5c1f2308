package reporting

import (
	"reflect"
	"testing"
	"time"

	"fleet-telematics-monitor/internal/domain/telemetry"

	"github.com/google/uuid"
)

// 2 April 2024 is a Tuesday, weekday bucket 3.
var tuesday = time.Date(2024, 4, 2, 9, 30, 0, 0, time.UTC)

func testDimensions() Dimensions {
	return Dimensions{
		CarRegistrations: map[uuid.UUID]string{carA: "PK68 RHW", carB: "BJ68 NDS"},
		DriverEmails:     map[uuid.UUID]string{driverD: "testdrive@example.co.uk"},
	}
}

func TestBuildCarTripSummariesScenario(t *testing.T) {
	trips := []telemetry.Trip{
		leafTrip("t1", &carA, &driverD, tuesday, 1000),
		leafTrip("t2", &carA, &driverD, tuesday, 2000),
		leafTrip("t3", &carA, &driverD, tuesday, 3000),
	}

	summaries, totals := BuildCarTripSummaries(trips, testDimensions())

	if len(summaries) != 1 {
		t.Fatalf("got %d rows, want 1", len(summaries))
	}
	row := summaries[0]
	if row.CarID != carA || row.RegistrationNumber != "PK68 RHW" {
		t.Errorf("row identity = %s %q, want %s %q", row.CarID, row.RegistrationNumber, carA, "PK68 RHW")
	}
	if row.Total != 3 || !closeEnough(row.TotalMileage, 3.728226) {
		t.Errorf("row aggregates = {total: %d, total_mileage: %v}, want {total: 3, total_mileage: 3.728226}",
			row.Total, row.TotalMileage)
	}
	if totals.Total != 3 || !closeEnough(totals.TotalMileage, 3.728226) {
		t.Errorf("totals = %+v, want {3, 3.728226}", totals)
	}
}

func TestBuildCarTripSummariesExcludesCompositeTrips(t *testing.T) {
	parent := leafTrip("parent", &carA, &driverD, tuesday, 6000)
	parent.HasChildTrips = true
	trips := []telemetry.Trip{
		parent,
		leafTrip("t1", &carA, &driverD, tuesday, 1000),
		leafTrip("t2", &carA, &driverD, tuesday, 5000),
	}

	summaries, totals := BuildCarTripSummaries(trips, testDimensions())

	if summaries[0].Total != 2 {
		t.Errorf("total = %d, want 2: the composite trip must not count", summaries[0].Total)
	}
	if !closeEnough(totals.TotalMileage, MetresToMiles(6000)) {
		t.Errorf("total mileage = %v, want %v: composite mileage would double-count", totals.TotalMileage, MetresToMiles(6000))
	}
}

func TestBuildDriverTripSummariesExcludesDriverlessTrips(t *testing.T) {
	trips := []telemetry.Trip{
		leafTrip("t1", &carA, &driverD, tuesday, 1000),
		leafTrip("t2", &carA, nil, tuesday, 2000),
	}

	summaries, totals := BuildDriverTripSummaries(trips, testDimensions())

	if len(summaries) != 1 {
		t.Fatalf("got %d rows, want 1", len(summaries))
	}
	if summaries[0].Email != "testdrive@example.co.uk" {
		t.Errorf("email = %q, want the driver dimension label", summaries[0].Email)
	}
	if totals.Total != 1 {
		t.Errorf("totals.Total = %d, want 1: driverless trips leave the driver dimension", totals.Total)
	}
}

func TestBuildDriverAlertSummariesScenario(t *testing.T) {
	events := []telemetry.Event{
		alertEvent("e1", &driverD, telemetry.EventLow),
		alertEvent("e2", &driverD, telemetry.EventLow),
		alertEvent("e3", &driverD, telemetry.EventMedium),
		alertEvent("e4", &driverD, telemetry.EventHigh),
		alertEvent("e5", &driverD, telemetry.EventInput1),
		alertEvent("e6", nil, telemetry.EventHigh),
	}

	summaries, totals := BuildDriverAlertSummaries(events, testDimensions())

	if len(summaries) != 1 {
		t.Fatalf("got %d rows, want 1: events without a driver are excluded", len(summaries))
	}
	want := DriverAlertSummary{
		DriverID:       driverD,
		Email:          "testdrive@example.co.uk",
		LowTotal:       2,
		MediumTotal:    1,
		HighTotal:      1,
		OverspeedTotal: 1,
		TotalAlerts:    5,
	}
	if summaries[0] != want {
		t.Errorf("row = %+v, want %+v", summaries[0], want)
	}
	if totals.TotalAlerts != 5 {
		t.Errorf("totals.TotalAlerts = %d, want 5", totals.TotalAlerts)
	}
}

func TestBuildMileageByWeekdayScenario(t *testing.T) {
	trips := []telemetry.Trip{
		leafTrip("t1", &carA, &driverD, tuesday, 1000),
		leafTrip("t2", &carA, &driverD, tuesday, 2000),
		leafTrip("t3", &carA, &driverD, tuesday, 3000),
	}

	buckets := BuildMileageByWeekday(trips)

	if len(buckets) != 7 {
		t.Fatalf("got %d buckets, want 7", len(buckets))
	}
	for _, b := range buckets {
		if b.TimePeriod == 3 {
			if !closeEnough(b.TotalMileage, 3.728226) {
				t.Errorf("Tuesday mileage = %v, want 3.728226", b.TotalMileage)
			}
			continue
		}
		if b.TotalMileage != 0 {
			t.Errorf("weekday %d mileage = %v, want 0", b.TimePeriod, b.TotalMileage)
		}
	}
}

func TestBuildMileageByWeekdayExcludesCompositeTrips(t *testing.T) {
	parent := leafTrip("parent", &carA, &driverD, tuesday, 3000)
	parent.HasChildTrips = true

	buckets := BuildMileageByWeekday([]telemetry.Trip{
		parent,
		leafTrip("child", &carA, &driverD, tuesday, 3000),
	})

	if !closeEnough(buckets[2].TotalMileage, MetresToMiles(3000)) {
		t.Errorf("Tuesday mileage = %v, want %v: composite trips must contribute zero", buckets[2].TotalMileage, MetresToMiles(3000))
	}
}

func TestBuildMileageByHourIsDense(t *testing.T) {
	buckets := BuildMileageByHour([]telemetry.Trip{
		leafTrip("t1", &carA, &driverD, tuesday, 1000),
	})

	if len(buckets) != 24 {
		t.Fatalf("got %d buckets, want 24", len(buckets))
	}
	for i, b := range buckets {
		if b.TimePeriod != i {
			t.Errorf("bucket[%d].TimePeriod = %d, want %d", i, b.TimePeriod, i)
		}
	}
	if !closeEnough(buckets[9].TotalMileage, 0.621371) {
		t.Errorf("09:00 mileage = %v, want 0.621371", buckets[9].TotalMileage)
	}
}

func TestEmptyScopeYieldsZeroReports(t *testing.T) {
	summaries, totals := BuildCarTripSummaries(nil, testDimensions())
	if len(summaries) != 0 {
		t.Errorf("got %d rows for empty scope, want 0", len(summaries))
	}
	if totals != (TripTotals{}) {
		t.Errorf("totals = %+v, want zero totals", totals)
	}

	buckets := BuildMileageByWeekday(nil)
	want := make([]TimeBucket, 7)
	for i := range want {
		want[i] = TimeBucket{TimePeriod: i + 1}
	}
	if !reflect.DeepEqual(buckets, want) {
		t.Errorf("weekday histogram = %+v, want 7 zero-valued buckets", buckets)
	}
}

func TestReportsAreIdempotent(t *testing.T) {
	trips := []telemetry.Trip{
		leafTrip("t1", &carA, &driverD, tuesday, 1000),
		leafTrip("t2", &carB, &driverD, tuesday.Add(2*time.Hour), 2500),
	}

	first, firstTotals := BuildCarTripSummaries(trips, testDimensions())
	second, secondTotals := BuildCarTripSummaries(trips, testDimensions())

	if !reflect.DeepEqual(first, second) || firstTotals != secondTotals {
		t.Errorf("two runs over the same scope disagree: %+v vs %+v", first, second)
	}
}

func TestTripSummaryConservation(t *testing.T) {
	trips := []telemetry.Trip{
		leafTrip("t1", &carA, &driverD, tuesday, 1000),
		leafTrip("t2", &carB, &driverD, tuesday, 2000),
		leafTrip("t3", &carB, &driverE, tuesday.Add(time.Hour), 4000),
	}

	summaries, totals := BuildCarTripSummaries(trips, testDimensions())

	count := 0
	mileage := 0.0
	for _, s := range summaries {
		count += s.Total
		mileage += s.TotalMileage
	}
	if count != len(trips) || count != totals.Total {
		t.Errorf("group counts sum to %d, want %d", count, len(trips))
	}
	if !closeEnough(mileage, totals.TotalMileage) || !closeEnough(mileage, MetresToMiles(7000)) {
		t.Errorf("group mileage sums to %v, want %v", mileage, MetresToMiles(7000))
	}
}
