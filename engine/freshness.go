package engine

import (
	"fmt"
	"time"

	"sm-server/models"
)

// Freshness bucket bounds in whole elapsed days. The aging range is
// inclusive on both ends: day 14 and day 45 both read as aging.
const (
	freshnessFreshBeforeDays = 14
	freshnessAgingThruDays   = 45
)

// ClassifyFreshness buckets a spot by the age of its most trustworthy
// timestamp. A verification beats an update regardless of which is
// newer; with neither on record the spot is unknown, which ranks below
// stale for display purposes.
func (e *Engine) ClassifyFreshness(lastVerified, lastUpdated *time.Time, now time.Time) models.Freshness {
	ts := lastVerified
	if ts == nil || ts.IsZero() {
		ts = lastUpdated
	}
	if ts == nil || ts.IsZero() {
		return models.Freshness{Level: models.FreshnessUnknown}
	}
	days := int(now.Sub(*ts) / (24 * time.Hour))
	if days < 0 {
		days = 0
	}
	level := models.FreshnessStale
	switch {
	case days < freshnessFreshBeforeDays:
		level = models.FreshnessFresh
	case days <= freshnessAgingThruDays:
		level = models.FreshnessAging
	}
	return models.Freshness{Level: level, Label: freshnessLabel(days)}
}

// freshnessLabel words the elapsed time the way list cards show it.
func freshnessLabel(days int) string {
	switch {
	case days == 0:
		return "Updated today"
	case days == 1:
		return "Updated yesterday"
	case days < freshnessFreshBeforeDays:
		return fmt.Sprintf("Updated %d days ago", days)
	case days < 60:
		return fmt.Sprintf("Updated %d weeks ago", days/7)
	default:
		return fmt.Sprintf("Updated %d months ago", days/30)
	}
}
