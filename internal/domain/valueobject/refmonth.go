// Package valueobject defines immutable domain values shared across use cases.
package valueobject

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// RefMonthLayout is the canonical reference-month format ("YYYY-MM").
// This exact format is stored in the database and must never change, since
// statement lookups and month navigation compare these strings directly.
const RefMonthLayout = "2006-01"

var refMonthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// BucketOf maps a calendar date to its reference-month bucket.
// It uses the date's own year/month components, not a re-derived local
// time, so the bucket never shifts across timezones.
func BucketOf(date time.Time) string {
	year, month, _ := date.Date()
	return fmt.Sprintf("%04d-%02d", year, int(month))
}

// ValidBucket reports whether s is a well-formed reference-month bucket.
func ValidBucket(s string) bool {
	return refMonthPattern.MatchString(s)
}

// ShiftBucket advances (n > 0) or retreats (n < 0) a bucket by n calendar
// months, rolling year boundaries: ShiftBucket("2025-11", 2) == "2026-01".
func ShiftBucket(bucket string, n int) (string, error) {
	if !ValidBucket(bucket) {
		return "", fmt.Errorf("invalid reference month %q", bucket)
	}

	year, _ := strconv.Atoi(bucket[:4])
	month, _ := strconv.Atoi(bucket[5:])

	// Zero-based month index since year 0 keeps the arithmetic trivial.
	idx := year*12 + (month - 1) + n
	if idx < 0 {
		return "", fmt.Errorf("reference month %q shifted by %d is out of range", bucket, n)
	}

	return fmt.Sprintf("%04d-%02d", idx/12, idx%12+1), nil
}

// CompareBuckets orders two buckets chronologically. The zero-padded
// "YYYY-MM" layout makes lexicographic comparison equivalent.
func CompareBuckets(a, b string) int {
	return strings.Compare(a, b)
}
