package reporting

import "time"

// BucketValue is one entry of a densified time-bucketed series.
type BucketValue[K comparable, V any] struct {
	Bucket K
	Value  V
}

// Densify emits one entry per domain key, in domain order, taking the value
// from the sparse input where present and zero otherwise. The output length
// always equals the domain length, so chart consumers get a gap-free series
// no matter how sparse the aggregation came out.
func Densify[K comparable, V any](values map[K]V, domain []K, zero V) []BucketValue[K, V] {
	out := make([]BucketValue[K, V], len(domain))
	for i, k := range domain {
		v, ok := values[k]
		if !ok {
			v = zero
		}
		out[i] = BucketValue[K, V]{Bucket: k, Value: v}
	}
	return out
}

// WeekdayDomain returns the full weekday bucket domain 1..7, Sunday first.
func WeekdayDomain() []int {
	return []int{1, 2, 3, 4, 5, 6, 7}
}

// HourDomain returns the full hour-of-day bucket domain 0..23.
func HourDomain() []int {
	hours := make([]int, 24)
	for i := range hours {
		hours[i] = i
	}
	return hours
}

// WeekdayBucket returns the weekday bucket for t, numbered Sunday=1 through
// Saturday=7.
func WeekdayBucket(t time.Time) int {
	return int(t.Weekday()) + 1
}

// HourBucket returns the hour-of-day bucket for t, 0..23.
func HourBucket(t time.Time) int {
	return t.Hour()
}
