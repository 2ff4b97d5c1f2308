package report

import (
	"time"

	"github.com/google/uuid"

	"fleet-telematics-monitor/internal/reporting"
)

// Scope narrows a report to a slice of the fleet. Nil fields leave the
// dimension unconstrained.
type Scope struct {
	CarID        *uuid.UUID
	UserID       *uuid.UUID
	BookingID    *uuid.UUID
	DeviceSerial *string
	From         *time.Time
	To           *time.Time
}

// TripReportResponse carries the per-car and per-driver trip summaries plus
// the time-bucketed mileage histograms, each with its grand-total row.
type TripReportResponse struct {
	Cars             []reporting.CarTripSummary    `json:"cars"`
	CarTotals        reporting.TripTotals          `json:"car_totals"`
	Drivers          []reporting.DriverTripSummary `json:"drivers"`
	DriverTotals     reporting.TripTotals          `json:"driver_totals"`
	MileageByWeekday []reporting.TimeBucket        `json:"mileage_by_weekday"`
	MileageByHour    []reporting.TimeBucket        `json:"mileage_by_hour"`
}

// AlertReportResponse carries the per-driver alert summary with its
// grand-total row.
type AlertReportResponse struct {
	Drivers []reporting.DriverAlertSummary `json:"drivers"`
	Totals  reporting.AlertTotals          `json:"totals"`
}
