package valueobject

import (
	"testing"
	"time"
)

func TestBucketOf(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		expected string
	}{
		{
			name:     "mid month",
			date:     time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC),
			expected: "2025-03",
		},
		{
			name:     "single digit month is zero padded",
			date:     time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			expected: "2024-01",
		},
		{
			name:     "last day of december",
			date:     time.Date(2025, time.December, 31, 23, 59, 59, 0, time.UTC),
			expected: "2025-12",
		},
		{
			name:     "non-UTC location uses the date components as-is",
			date:     time.Date(2025, time.June, 1, 0, 30, 0, 0, time.FixedZone("BRT", -3*60*60)),
			expected: "2025-06",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BucketOf(tt.date); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestShiftBucket(t *testing.T) {
	tests := []struct {
		name     string
		bucket   string
		n        int
		expected string
	}{
		{name: "forward within year", bucket: "2025-03", n: 2, expected: "2025-05"},
		{name: "forward across year boundary", bucket: "2025-12", n: 1, expected: "2026-01"},
		{name: "forward two across year boundary", bucket: "2025-11", n: 2, expected: "2026-01"},
		{name: "backward across year boundary", bucket: "2025-01", n: -1, expected: "2024-12"},
		{name: "zero shift is identity", bucket: "2025-07", n: 0, expected: "2025-07"},
		{name: "twelve months is one year", bucket: "2024-02", n: 12, expected: "2025-02"},
		{name: "long installment plan horizon", bucket: "2025-10", n: 47, expected: "2029-09"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ShiftBucket(tt.bucket, tt.n)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestShiftBucketInvalidInput(t *testing.T) {
	invalid := []string{"", "2025", "2025-13", "2025-00", "25-01", "2025/01", "2025-1"}
	for _, bucket := range invalid {
		if _, err := ShiftBucket(bucket, 1); err == nil {
			t.Errorf("expected error for bucket %q", bucket)
		}
	}
}

func TestCompareBuckets(t *testing.T) {
	if CompareBuckets("2024-12", "2025-01") >= 0 {
		t.Error("expected 2024-12 to order before 2025-01")
	}
	if CompareBuckets("2025-02", "2025-02") != 0 {
		t.Error("expected equal buckets to compare as zero")
	}
	if CompareBuckets("2025-10", "2025-09") <= 0 {
		t.Error("expected 2025-10 to order after 2025-09")
	}
}

func TestValidBucket(t *testing.T) {
	if !ValidBucket("2025-01") {
		t.Error("expected 2025-01 to be valid")
	}
	if ValidBucket("2025-1") {
		t.Error("expected 2025-1 to be invalid")
	}
}
