// Package reporting turns raw per-event and per-trip telemetry records into
// rolled-up statistics: per-driver alert totals, per-car trip and mileage
// totals, and time-bucketed mileage histograms. Everything here is a pure
// function of the records passed in, so a report is recomputable and
// testable without a live record store.
package reporting

import (
	"time"

	"github.com/google/uuid"

	"fleet-telematics-monitor/internal/domain/telemetry"
)

// Dimensions supplies the display labels joined onto group keys.
type Dimensions struct {
	CarRegistrations map[uuid.UUID]string
	DriverEmails     map[uuid.UUID]string
}

// CarTripSummary is the per-car trip report row.
type CarTripSummary struct {
	CarID              uuid.UUID `json:"car_id"`
	RegistrationNumber string    `json:"registration_number"`
	Total              int       `json:"total"`
	TotalMileage       float64   `json:"total_mileage"`
}

// DriverTripSummary is the per-driver trip report row.
type DriverTripSummary struct {
	DriverID     uuid.UUID `json:"driver_id"`
	Email        string    `json:"email"`
	Total        int       `json:"total"`
	TotalMileage float64   `json:"total_mileage"`
}

// TripTotals is the grand-total row summed across all groups of a trip
// summary.
type TripTotals struct {
	Total        int     `json:"total"`
	TotalMileage float64 `json:"total_mileage"`
}

// DriverAlertSummary is the per-driver alert report row.
type DriverAlertSummary struct {
	DriverID       uuid.UUID `json:"driver_id"`
	Email          string    `json:"email"`
	LowTotal       int       `json:"low_total"`
	MediumTotal    int       `json:"medium_total"`
	HighTotal      int       `json:"high_total"`
	OverspeedTotal int       `json:"overspeed_total"`
	TotalAlerts    int       `json:"total_alerts"`
}

// AlertTotals is the grand-total row summed across all drivers.
type AlertTotals struct {
	LowTotal       int `json:"low_total"`
	MediumTotal    int `json:"medium_total"`
	HighTotal      int `json:"high_total"`
	OverspeedTotal int `json:"overspeed_total"`
	TotalAlerts    int `json:"total_alerts"`
}

// TimeBucket is one period of a densified mileage histogram. Mileage is in
// miles.
type TimeBucket struct {
	TimePeriod   int     `json:"time_period"`
	TotalMileage float64 `json:"total_mileage"`
}

// leafTrips drops composite trips. A trip with child trips aggregates its
// children, so counting it as well would double-count mileage.
func leafTrips(trips []telemetry.Trip) []telemetry.Trip {
	out := make([]telemetry.Trip, 0, len(trips))
	for _, t := range trips {
		if t.IsLeaf() {
			out = append(out, t)
		}
	}
	return out
}

// BuildCarTripSummaries groups leaf trips by car, with the registration
// number joined in. Trips without a car are excluded from this dimension.
// The totals row is summed across all groups.
func BuildCarTripSummaries(trips []telemetry.Trip, dims Dimensions) ([]CarTripSummary, TripTotals) {
	groups := GroupTrips(leafTrips(trips), func(t telemetry.Trip) (uuid.UUID, bool) {
		if t.CarID == nil {
			return uuid.Nil, false
		}
		return *t.CarID, true
	})

	summaries := make([]CarTripSummary, len(groups))
	var totals TripTotals
	for i, g := range groups {
		summaries[i] = CarTripSummary{
			CarID:              g.Key,
			RegistrationNumber: dims.CarRegistrations[g.Key],
			Total:              g.TripCount,
			TotalMileage:       MetresToMiles(g.MileageMetres),
		}
		totals.Total += g.TripCount
		totals.TotalMileage += summaries[i].TotalMileage
	}
	return summaries, totals
}

// BuildDriverTripSummaries groups leaf trips by driver, with the driver's
// email joined in. Trips without a driver are excluded from this dimension.
func BuildDriverTripSummaries(trips []telemetry.Trip, dims Dimensions) ([]DriverTripSummary, TripTotals) {
	groups := GroupTrips(leafTrips(trips), func(t telemetry.Trip) (uuid.UUID, bool) {
		if t.UserID == nil {
			return uuid.Nil, false
		}
		return *t.UserID, true
	})

	summaries := make([]DriverTripSummary, len(groups))
	var totals TripTotals
	for i, g := range groups {
		summaries[i] = DriverTripSummary{
			DriverID:     g.Key,
			Email:        dims.DriverEmails[g.Key],
			Total:        g.TripCount,
			TotalMileage: MetresToMiles(g.MileageMetres),
		}
		totals.Total += g.TripCount
		totals.TotalMileage += summaries[i].TotalMileage
	}
	return summaries, totals
}

// BuildDriverAlertSummaries groups events by driver and counts classified
// alert severities. Events without a driver are excluded.
func BuildDriverAlertSummaries(events []telemetry.Event, dims Dimensions) ([]DriverAlertSummary, AlertTotals) {
	groups := GroupAlerts(events, func(e telemetry.Event) (uuid.UUID, bool) {
		if e.UserID == nil {
			return uuid.Nil, false
		}
		return *e.UserID, true
	})

	summaries := make([]DriverAlertSummary, len(groups))
	var totals AlertTotals
	for i, g := range groups {
		summaries[i] = DriverAlertSummary{
			DriverID:       g.Key,
			Email:          dims.DriverEmails[g.Key],
			LowTotal:       g.LowTotal,
			MediumTotal:    g.MediumTotal,
			HighTotal:      g.HighTotal,
			OverspeedTotal: g.OverspeedTotal,
			TotalAlerts:    g.TotalAlerts,
		}
		totals.LowTotal += g.LowTotal
		totals.MediumTotal += g.MediumTotal
		totals.HighTotal += g.HighTotal
		totals.OverspeedTotal += g.OverspeedTotal
		totals.TotalAlerts += g.TotalAlerts
	}
	return summaries, totals
}

// BuildMileageByWeekday sums leaf-trip mileage in miles per weekday of the
// trip start, densified over the full Sunday=1..Saturday=7 domain so every
// weekday is present even when no trip touched it.
func BuildMileageByWeekday(trips []telemetry.Trip) []TimeBucket {
	return buildHistogram(trips, WeekdayBucket, WeekdayDomain())
}

// BuildMileageByHour is the hour-of-day counterpart over the 0..23 domain.
func BuildMileageByHour(trips []telemetry.Trip) []TimeBucket {
	return buildHistogram(trips, HourBucket, HourDomain())
}

func buildHistogram(trips []telemetry.Trip, bucket func(time.Time) int, domain []int) []TimeBucket {
	groups := GroupTrips(leafTrips(trips), func(t telemetry.Trip) (int, bool) {
		return bucket(t.Start), true
	})

	sparse := make(map[int]float64, len(groups))
	for _, g := range groups {
		sparse[g.Key] = MetresToMiles(g.MileageMetres)
	}

	dense := Densify(sparse, domain, 0)
	out := make([]TimeBucket, len(dense))
	for i, b := range dense {
		out[i] = TimeBucket{TimePeriod: b.Bucket, TotalMileage: b.Value}
	}
	return out
}
