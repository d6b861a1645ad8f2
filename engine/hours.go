package engine

import (
	"fmt"
	"strconv"
	"time"

	"sm-server/models"
)

// closingSoonWindowMinutes is how close to closing time a venue still
// counts as open but gets the "Closing soon" label.
const closingSoonWindowMinutes = 30

// nextOpenScanDays bounds the forward scan for the next opening time.
// Seven days covers a venue that opens on a single weekday.
const nextOpenScanDays = 7

// EvaluateHours resolves a venue's open/closed state at now against
// its weekly hours. A venue with no hours on record comes back with an
// unknown status (empty label) rather than "Closed". Intervals whose
// close time is earlier than their open time wrap past midnight, so
// the early hours of a day are covered by the previous day's entry.
func (e *Engine) EvaluateHours(hours *models.WeeklyHours, now time.Time) models.OpenStatus {
	if hours == nil {
		return models.OpenStatus{}
	}
	local := now.In(e.loc)
	minute := minuteOfDay(local)
	today := local.Weekday()

	if openMin, closeMin, ok := dayInterval(hours.Day(today)); ok {
		if openMin < closeMin && minute >= openMin && minute < closeMin {
			return openStatusAt(minute, closeMin)
		}
		if closeMin < openMin && minute >= openMin {
			return openStatusAt(minute, closeMin)
		}
	}
	if openMin, closeMin, ok := dayInterval(hours.Day(previousWeekday(today))); ok {
		if closeMin < openMin && minute < closeMin {
			return openStatusAt(minute, closeMin)
		}
	}

	status := models.OpenStatus{Label: models.OpenLabelClosed}
	if opensAt, ok := nextOpening(hours, today, minute); ok {
		status.OpensAt = opensAt
	}
	return status
}

// openStatusAt builds the status for a venue known to be open, with
// closing time closeMin minutes into some day on the wall clock.
func openStatusAt(minute, closeMin int) models.OpenStatus {
	status := models.OpenStatus{
		IsOpen:   true,
		Label:    models.OpenLabelOpen,
		ClosesAt: formatClock12(closeMin),
	}
	left := (closeMin - minute + minutesPerDay) % minutesPerDay
	if left <= closingSoonWindowMinutes {
		status.Label = models.OpenLabelClosingSoon
	}
	return status
}

// nextOpening scans forward day by day for the next opening time. The
// scan is bounded; a venue whose week holds no parseable entry yields
// no hint.
func nextOpening(hours *models.WeeklyHours, today time.Weekday, minute int) (string, bool) {
	for offset := 0; offset <= nextOpenScanDays; offset++ {
		day := time.Weekday((int(today) + offset) % 7)
		openMin, _, ok := dayInterval(hours.Day(day))
		if !ok {
			continue
		}
		if offset == 0 && openMin <= minute {
			continue
		}
		return formatClock12(openMin), true
	}
	return "", false
}

// dayInterval parses one day's entry into open and close minutes of
// day. Days marked closed, days with no entry and days with malformed
// times all come back not ok.
func dayInterval(d models.DayHours) (openMin, closeMin int, ok bool) {
	if d.Closed || d.Open == "" {
		return 0, 0, false
	}
	openMin, okOpen := parseClock24(d.Open)
	closeMin, okClose := parseClock24(d.Close)
	if !okOpen || !okClose {
		return 0, 0, false
	}
	return openMin, closeMin, true
}

// parseClock24 converts a zero-padded "HH:MM" string to minute of day.
func parseClock24(s string) (int, bool) {
	if len(s) != 5 || s[2] != ':' {
		return 0, false
	}
	hour, err := strconv.Atoi(s[:2])
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}
	min, err := strconv.Atoi(s[3:])
	if err != nil || min < 0 || min > 59 {
		return 0, false
	}
	return hour*60 + min, true
}

// formatClock12 renders a minute of day as a compact 12-hour string:
// "6pm", "9:30am", "12am" for midnight.
func formatClock12(minute int) string {
	hour := minute / 60 % 24
	min := minute % 60
	suffix := "am"
	if hour >= 12 {
		suffix = "pm"
	}
	hour12 := hour % 12
	if hour12 == 0 {
		hour12 = 12
	}
	if min == 0 {
		return fmt.Sprintf("%d%s", hour12, suffix)
	}
	return fmt.Sprintf("%d:%02d%s", hour12, min, suffix)
}
