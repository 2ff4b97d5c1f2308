package telemetry

// AlertSeverity classifies an event for the per-driver alert summaries.
type AlertSeverity string

const (
	SeverityLow       AlertSeverity = "low"
	SeverityMedium    AlertSeverity = "medium"
	SeverityHigh      AlertSeverity = "high"
	SeverityOverspeed AlertSeverity = "overspeed"
	SeverityNone      AlertSeverity = "none"
)

// ClassifySeverity maps an event type to its alert severity. Button presses,
// device and ignition lifecycle events, and any code outside the enumeration
// classify as SeverityNone rather than erroring.
func ClassifySeverity(t EventType) AlertSeverity {
	switch t {
	case EventLow:
		return SeverityLow
	case EventMedium:
		return SeverityMedium
	case EventHigh:
		return SeverityHigh
	case EventInput1:
		return SeverityOverspeed
	default:
		return SeverityNone
	}
}

// IsAlert reports whether the event type counts towards alert totals.
func (t EventType) IsAlert() bool {
	return ClassifySeverity(t) != SeverityNone
}
