package reporting

import (
	"fleet-telematics-monitor/internal/domain/telemetry"
)

// TripGroup is one row of a trip grouping: the key plus the count and
// mileage aggregates over the records sharing it.
type TripGroup[K comparable] struct {
	Key           K
	TripCount     int
	MileageMetres int64
}

// AlertGroup is one row of an event grouping: the key plus one counter per
// alert severity. TotalAlerts is always the sum of the four severity
// counters.
type AlertGroup[K comparable] struct {
	Key            K
	LowTotal       int
	MediumTotal    int
	HighTotal      int
	OverspeedTotal int
	TotalAlerts    int
}

// GroupTrips groups trips by the extracted key and aggregates count and
// mileage per group. Records for which the key function reports ok=false
// have no value on this dimension and are excluded. Every remaining record
// lands in exactly one group; groups come out in first-appearance order so
// the result is stable for a given input order.
func GroupTrips[K comparable](trips []telemetry.Trip, key func(telemetry.Trip) (K, bool)) []TripGroup[K] {
	var order []K
	groups := make(map[K]*TripGroup[K])

	for _, t := range trips {
		k, ok := key(t)
		if !ok {
			continue
		}
		g, exists := groups[k]
		if !exists {
			g = &TripGroup[K]{Key: k}
			groups[k] = g
			order = append(order, k)
		}
		g.TripCount++
		g.MileageMetres += t.MileageMetres
	}

	out := make([]TripGroup[K], len(order))
	for i, k := range order {
		out[i] = *groups[k]
	}
	return out
}

// GroupAlerts groups events by the extracted key and counts classified
// severities per group. Events that classify as SeverityNone stay in their
// group but increment no severity counter.
func GroupAlerts[K comparable](events []telemetry.Event, key func(telemetry.Event) (K, bool)) []AlertGroup[K] {
	var order []K
	groups := make(map[K]*AlertGroup[K])

	for _, e := range events {
		k, ok := key(e)
		if !ok {
			continue
		}
		g, exists := groups[k]
		if !exists {
			g = &AlertGroup[K]{Key: k}
			groups[k] = g
			order = append(order, k)
		}
		switch telemetry.ClassifySeverity(e.Type) {
		case telemetry.SeverityLow:
			g.LowTotal++
		case telemetry.SeverityMedium:
			g.MediumTotal++
		case telemetry.SeverityHigh:
			g.HighTotal++
		case telemetry.SeverityOverspeed:
			g.OverspeedTotal++
		}
	}

	out := make([]AlertGroup[K], len(order))
	for i, k := range order {
		g := *groups[k]
		g.TotalAlerts = g.LowTotal + g.MediumTotal + g.HighTotal + g.OverspeedTotal
		out[i] = g
	}
	return out
}
