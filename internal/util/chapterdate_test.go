package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseChapterDateAt_Relative(t *testing.T) {
	now := time.Date(2024, time.March, 15, 12, 30, 0, 0, time.UTC)

	testCases := []struct {
		label    string
		expected time.Time
	}{
		{"30 mins ago", time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)},
		{"1 minute ago", time.Date(2024, time.March, 15, 12, 29, 0, 0, time.UTC)},
		{"3 hours ago", time.Date(2024, time.March, 15, 9, 30, 0, 0, time.UTC)},
		{"5 days ago", time.Date(2024, time.March, 10, 12, 30, 0, 0, time.UTC)},
		{"2 weeks ago", time.Date(2024, time.March, 1, 12, 30, 0, 0, time.UTC)},
		{"1 month ago", time.Date(2024, time.February, 15, 12, 30, 0, 0, time.UTC)},
		{"3 months ago", time.Date(2023, time.December, 15, 12, 30, 0, 0, time.UTC)},
		{"2 years ago", time.Date(2022, time.March, 15, 12, 30, 0, 0, time.UTC)},
		{"1 Day ago", time.Date(2024, time.March, 14, 12, 30, 0, 0, time.UTC)},
	}
	for _, tc := range testCases {
		got := ParseChapterDateAt(tc.label, now)
		assert.Equal(t, tc.expected.UnixMilli(), got, "label %q", tc.label)
		assert.Less(t, got, now.UnixMilli(), "label %q", tc.label)
	}
}

func TestParseChapterDateAt_LargeMagnitudes(t *testing.T) {
	now := time.Date(2024, time.March, 15, 12, 30, 0, 0, time.UTC)

	testCases := []struct {
		label    string
		expected time.Time
	}{
		// 9999999999 minutes is 6944444 days and 639 minutes.
		{"9999999999 minutes ago", now.AddDate(0, 0, -6944444).Add(-639 * time.Minute)},
		// 9999999 hours is 416666 days and 15 hours.
		{"9999999 hours ago", now.AddDate(0, 0, -416666).Add(-15 * time.Hour)},
	}
	for _, tc := range testCases {
		got := ParseChapterDateAt(tc.label, now)
		assert.Equal(t, tc.expected.UnixMilli(), got, "label %q", tc.label)
		assert.Less(t, got, now.UnixMilli(), "label %q", tc.label)
	}
}

func TestParseChapterDateAt_MonthLengthVariance(t *testing.T) {
	// March has 31 days, February 2023 has 28: one calendar month back from
	// April 1st is March 1st, not 31 days earlier.
	now := time.Date(2023, time.April, 1, 0, 0, 0, 0, time.UTC)
	got := ParseChapterDateAt("1 month ago", now)
	assert.Equal(t, time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC).UnixMilli(), got)

	now = time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC)
	got = ParseChapterDateAt("1 month ago", now)
	assert.Equal(t, time.Date(2023, time.February, 1, 0, 0, 0, 0, time.UTC).UnixMilli(), got)
	assert.Equal(t, int64(28*24*time.Hour/time.Millisecond), now.UnixMilli()-got)
}

func TestParseChapterDateAt_Degenerate(t *testing.T) {
	now := time.Date(2024, time.March, 15, 12, 30, 0, 0, time.UTC)

	testCases := []struct {
		label    string
		expected int64
	}{
		{"", 0},
		{"   ", 0},
		{"ago", 0},
		{"3 fortnight ago", now.UnixMilli()},
		{"x days ago", now.UnixMilli()},
		{"not a date", 0},
	}
	for _, tc := range testCases {
		if got := ParseChapterDateAt(tc.label, now); got != tc.expected {
			t.Errorf("ParseChapterDateAt(%q) = %d; want %d", tc.label, got, tc.expected)
		}
	}
}

func TestParseChapterDateAt_Absolute(t *testing.T) {
	now := time.Now()

	got := ParseChapterDateAt("2024-01-02", now)
	assert.Equal(t, time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC).UnixMilli(), got)

	got = ParseChapterDateAt("Oct 7, 2023", now)
	assert.Equal(t, time.Date(2023, time.October, 7, 0, 0, 0, 0, time.UTC).UnixMilli(), got)
}

func TestParseChapterDate_UsesCurrentTime(t *testing.T) {
	before := time.Now().AddDate(0, 0, -5).UnixMilli()
	got := ParseChapterDate("5 days ago")
	after := time.Now().AddDate(0, 0, -5).UnixMilli()

	assert.GreaterOrEqual(t, got, before)
	assert.LessOrEqual(t, got, after)
}
