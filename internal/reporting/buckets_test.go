package reporting

import (
	"testing"
	"time"
)

func TestDensifyFillsGaps(t *testing.T) {
	sparse := map[int]float64{2: 1.5, 5: 3.25}

	dense := Densify(sparse, WeekdayDomain(), 0)

	if len(dense) != 7 {
		t.Fatalf("got %d buckets, want 7", len(dense))
	}
	for i, b := range dense {
		wantKey := i + 1
		if b.Bucket != wantKey {
			t.Errorf("bucket[%d].Bucket = %d, want %d", i, b.Bucket, wantKey)
		}
		want := sparse[wantKey]
		if b.Value != want {
			t.Errorf("bucket[%d].Value = %v, want %v", i, b.Value, want)
		}
	}
}

func TestDensifyEmptyInput(t *testing.T) {
	dense := Densify(map[int]float64{}, HourDomain(), 0)

	if len(dense) != 24 {
		t.Fatalf("got %d buckets, want 24", len(dense))
	}
	for _, b := range dense {
		if b.Value != 0 {
			t.Errorf("bucket %d = %v, want zero", b.Bucket, b.Value)
		}
	}
}

func TestDensifyPreservesDomainOrder(t *testing.T) {
	domain := []int{3, 1, 2}
	dense := Densify(map[int]string{1: "one"}, domain, "")

	for i, b := range dense {
		if b.Bucket != domain[i] {
			t.Errorf("bucket[%d] = %d, want %d: output must follow domain order", i, b.Bucket, domain[i])
		}
	}
	if dense[1].Value != "one" {
		t.Errorf("value for key 1 = %q, want %q", dense[1].Value, "one")
	}
}

func TestWeekdayBucketNumbersSundayFirst(t *testing.T) {
	tests := []struct {
		day  time.Time
		want int
	}{
		{time.Date(2024, 3, 31, 12, 0, 0, 0, time.UTC), 1}, // Sunday
		{time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC), 2},  // Monday
		{time.Date(2024, 4, 2, 12, 0, 0, 0, time.UTC), 3},  // Tuesday
		{time.Date(2024, 4, 6, 12, 0, 0, 0, time.UTC), 7},  // Saturday
	}

	for _, tt := range tests {
		if got := WeekdayBucket(tt.day); got != tt.want {
			t.Errorf("WeekdayBucket(%s) = %d, want %d", tt.day.Weekday(), got, tt.want)
		}
	}
}

func TestHourBucket(t *testing.T) {
	at := time.Date(2024, 4, 2, 23, 59, 0, 0, time.UTC)
	if got := HourBucket(at); got != 23 {
		t.Errorf("HourBucket = %d, want 23", got)
	}
}
