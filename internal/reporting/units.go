package reporting

// MilesPerKilometre is the fixed conversion factor applied to every mileage
// statistic before display. Raw storage stays in metres.
const MilesPerKilometre = 0.621371

// MetresToMiles converts a metre mileage to miles. No rounding happens here;
// display-layer rounding is the consumer's concern.
func MetresToMiles(metres int64) float64 {
	return float64(metres) / 1000 * MilesPerKilometre
}
