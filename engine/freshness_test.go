package engine

import (
	"testing"
	"time"

	"sm-server/models"
)

func daysAgo(now time.Time, days int) *time.Time {
	ts := now.AddDate(0, 0, -days)
	return &ts
}

func TestClassifyFreshness_Buckets(t *testing.T) {
	eng := testEngine()
	now := localTime(4, 12, 0)

	tests := []struct {
		name  string
		days  int
		level models.FreshnessLevel
	}{
		{name: "today", days: 0, level: models.FreshnessFresh},
		{name: "under two weeks", days: 13, level: models.FreshnessFresh},
		{name: "exactly two weeks", days: 14, level: models.FreshnessAging},
		{name: "top of aging range", days: 45, level: models.FreshnessAging},
		{name: "past aging range", days: 46, level: models.FreshnessStale},
		{name: "months old", days: 120, level: models.FreshnessStale},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := eng.ClassifyFreshness(nil, daysAgo(now, test.days), now)
			if got.Level != test.level {
				t.Errorf("Expected level %q for %d days, got %q", test.level, test.days, got.Level)
			}
		})
	}
}

func TestClassifyFreshness_VerifiedBeatsUpdated(t *testing.T) {
	// Setup: an old update but a recent verification.
	eng := testEngine()
	now := localTime(4, 12, 0)
	verified := daysAgo(now, 2)
	updated := daysAgo(now, 90)

	// Act
	got := eng.ClassifyFreshness(verified, updated, now)

	// Assert
	if got.Level != models.FreshnessFresh {
		t.Errorf("Expected verification to win, got level %q", got.Level)
	}

	// And the other way round: a stale verification outranks a fresh
	// update because verification is the stronger signal.
	got = eng.ClassifyFreshness(daysAgo(now, 90), daysAgo(now, 1), now)
	if got.Level != models.FreshnessStale {
		t.Errorf("Expected stale verification to win, got level %q", got.Level)
	}
}

func TestClassifyFreshness_NoTimestamps(t *testing.T) {
	eng := testEngine()
	now := localTime(4, 12, 0)

	got := eng.ClassifyFreshness(nil, nil, now)
	if got.Level != models.FreshnessUnknown {
		t.Errorf("Expected level %q, got %q", models.FreshnessUnknown, got.Level)
	}
	if got.Label != "" {
		t.Errorf("Expected empty label, got %q", got.Label)
	}
}

func TestClassifyFreshness_Labels(t *testing.T) {
	eng := testEngine()
	now := localTime(4, 12, 0)

	tests := []struct {
		days int
		want string
	}{
		{days: 0, want: "Updated today"},
		{days: 1, want: "Updated yesterday"},
		{days: 3, want: "Updated 3 days ago"},
		{days: 21, want: "Updated 3 weeks ago"},
		{days: 90, want: "Updated 3 months ago"},
	}

	for _, test := range tests {
		if got := eng.ClassifyFreshness(nil, daysAgo(now, test.days), now); got.Label != test.want {
			t.Errorf("Expected label %q for %d days, got %q", test.want, test.days, got.Label)
		}
	}
}

func TestClassifyFreshness_FutureTimestamp(t *testing.T) {
	eng := testEngine()
	now := localTime(4, 12, 0)

	got := eng.ClassifyFreshness(nil, daysAgo(now, -3), now)
	if got.Level != models.FreshnessFresh {
		t.Errorf("Expected future timestamp to read fresh, got %q", got.Level)
	}
	if got.Label != "Updated today" {
		t.Errorf("Expected label %q, got %q", "Updated today", got.Label)
	}
}
