package telemetry

import "testing"

func TestClassifySeverity(t *testing.T) {
	tests := []struct {
		eventType EventType
		want      AlertSeverity
	}{
		{EventLow, SeverityLow},
		{EventMedium, SeverityMedium},
		{EventHigh, SeverityHigh},
		{EventInput1, SeverityOverspeed},
		{EventButton, SeverityNone},
		{EventStart, SeverityNone},
		{EventStop, SeverityNone},
		{EventIgnitionOn, SeverityNone},
		{EventIgnitionOff, SeverityNone},
		{EventPowerLow, SeverityNone},
		{EventCardNotFound, SeverityNone},
		{EventFlashError, SeverityNone},
		{EventCardFull, SeverityNone},
		{EventTravelStart, SeverityNone},
		{EventTravelStop, SeverityNone},
	}

	for _, tt := range tests {
		t.Run(string(tt.eventType), func(t *testing.T) {
			if got := ClassifySeverity(tt.eventType); got != tt.want {
				t.Errorf("ClassifySeverity(%s) = %s, want %s", tt.eventType, got, tt.want)
			}
		})
	}
}

func TestClassifySeverityUnknownCode(t *testing.T) {
	if got := ClassifySeverity(EventType("gibberish")); got != SeverityNone {
		t.Errorf("unknown code classified as %s, want %s", got, SeverityNone)
	}
}

func TestEventTypeLabelFallsBackToCode(t *testing.T) {
	if got := EventType("mystery").Label(); got != "mystery" {
		t.Errorf("Label() = %q, want the raw code", got)
	}
	if got := EventInput1.Label(); got != "External cable input triggered an event" {
		t.Errorf("Label() = %q, want the display description", got)
	}
}
