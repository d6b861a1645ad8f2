package engine

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Promotion windows arrive as free text written for humans, e.g.
// "4pm-6pm • Monday-Friday" or "9pm-12am • Weekends". The grammar
// below is the whole contract: a descriptor splits on the bullet into
// clauses, a clause needs a 12-hour time range to count, and weekday
// tokens (names, name ranges, Daily, Weekdays, Weekends) narrow the
// days it applies to. Anything unparseable degrades to inactive, never
// to an error.
var (
	timeRangeRegex = regexp.MustCompile(`(?i)(\d{1,2})(?::(\d{2}))?(am|pm)\s*-\s*(\d{1,2})(?::(\d{2}))?(am|pm)`)
	dayRangeRegex  = regexp.MustCompile(`(?i)\b(sunday|monday|tuesday|wednesday|thursday|friday|saturday)\s*-\s*(sunday|monday|tuesday|wednesday|thursday|friday|saturday)\b`)
	dayNameRegex   = regexp.MustCompile(`(?i)\b(sunday|monday|tuesday|wednesday|thursday|friday|saturday)\b`)
	dailyRegex     = regexp.MustCompile(`(?i)\bdaily\b`)
	weekdaysRegex  = regexp.MustCompile(`(?i)\bweekdays?\b`)
	weekendsRegex  = regexp.MustCompile(`(?i)\bweekends?\b`)
)

var weekdayByName = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// windowClause is one parsed clause of a promotion descriptor: a
// time-of-day range plus the weekdays it applies to. A nil day set
// means every day.
type windowClause struct {
	startMin int
	endMin   int
	days     map[time.Weekday]bool
}

// appliesOn reports whether the clause covers the given weekday.
func (c windowClause) appliesOn(d time.Weekday) bool {
	return c.days == nil || c.days[d]
}

// activeAt reports whether the clause covers the given minute of the
// given weekday. A range whose end precedes its start wraps past
// midnight, so its tail belongs to the day after the one it names.
func (c windowClause) activeAt(day time.Weekday, minute int) bool {
	if c.startMin < c.endMin {
		return c.appliesOn(day) && minute >= c.startMin && minute < c.endMin
	}
	if c.startMin > c.endMin {
		if c.appliesOn(day) && minute >= c.startMin {
			return true
		}
		return c.appliesOn(previousWeekday(day)) && minute < c.endMin
	}
	return false
}

// IsActiveNow reports whether a promotion descriptor covers now.
// Descriptors with no parseable time range are never active.
func (e *Engine) IsActiveNow(descriptor string, now time.Time) bool {
	clauses := parseWindowDescriptor(descriptor)
	if len(clauses) == 0 {
		return false
	}
	local := now.In(e.loc)
	minute := minuteOfDay(local)
	day := local.Weekday()
	for _, c := range clauses {
		if c.activeAt(day, minute) {
			return true
		}
	}
	return false
}

// MinutesUntilNextStart finds the smallest non-negative wall-clock
// delta from now to a clause start boundary, scanning at most a week
// ahead. ok is false when the descriptor holds no parseable window.
func (e *Engine) MinutesUntilNextStart(descriptor string, now time.Time) (int, bool) {
	clauses := parseWindowDescriptor(descriptor)
	if len(clauses) == 0 {
		return 0, false
	}
	local := now.In(e.loc)
	minute := minuteOfDay(local)
	today := local.Weekday()
	best := -1
	for offset := 0; offset <= nextOpenScanDays; offset++ {
		day := time.Weekday((int(today) + offset) % 7)
		for _, c := range clauses {
			if !c.appliesOn(day) {
				continue
			}
			delta := offset*minutesPerDay + c.startMin - minute
			if delta < 0 {
				continue
			}
			if best < 0 || delta < best {
				best = delta
			}
		}
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}

// parseWindowDescriptor is the only place the descriptor grammar is
// interpreted. Bullet segments holding a time range become clauses;
// segments holding only weekday tokens constrain the clause next to
// them, so "4pm-6pm • Monday-Friday" reads as one clause covering
// Monday through Friday.
func parseWindowDescriptor(descriptor string) []windowClause {
	if strings.TrimSpace(descriptor) == "" {
		return nil
	}
	var clauses []windowClause
	var carriedDays map[time.Weekday]bool
	for _, segment := range strings.Split(descriptor, "•") {
		startMin, endMin, hasRange := findTimeRange(segment)
		days := findWeekdays(segment)
		switch {
		case hasRange:
			c := windowClause{startMin: startMin, endMin: endMin, days: days}
			if c.days == nil && carriedDays != nil {
				c.days = carriedDays
				carriedDays = nil
			}
			clauses = append(clauses, c)
		case days != nil:
			if n := len(clauses); n > 0 {
				clauses[n-1].days = unionDays(clauses[n-1].days, days)
			} else {
				carriedDays = unionDays(carriedDays, days)
			}
		}
	}
	return clauses
}

// findTimeRange pulls the first "4pm-6pm" style range out of a
// segment. 12am reads as midnight and 12pm as noon.
func findTimeRange(segment string) (startMin, endMin int, ok bool) {
	m := timeRangeRegex.FindStringSubmatch(segment)
	if m == nil {
		return 0, 0, false
	}
	startMin = clockToMinutes(m[1], m[2], m[3])
	endMin = clockToMinutes(m[4], m[5], m[6])
	if startMin < 0 || endMin < 0 {
		return 0, 0, false
	}
	return startMin, endMin, true
}

// clockToMinutes converts the captured hour, optional minute and
// meridiem of a 12-hour time to minute of day, or -1 when the numbers
// fall outside the clock.
func clockToMinutes(hourStr, minStr, meridiem string) int {
	hour, err := strconv.Atoi(hourStr)
	if err != nil || hour < 1 || hour > 12 {
		return -1
	}
	min := 0
	if minStr != "" {
		min, err = strconv.Atoi(minStr)
		if err != nil || min > 59 {
			return -1
		}
	}
	if hour == 12 {
		hour = 0
	}
	if strings.EqualFold(meridiem, "pm") {
		hour += 12
	}
	return hour*60 + min
}

// findWeekdays collects every weekday constraint in a segment: name
// ranges first (inclusive, wrapping past Saturday when reversed), then
// leftover single names, then the Daily, Weekdays and Weekends words.
// nil means the segment constrains nothing.
func findWeekdays(segment string) map[time.Weekday]bool {
	var days map[time.Weekday]bool
	add := func(d time.Weekday) {
		if days == nil {
			days = make(map[time.Weekday]bool)
		}
		days[d] = true
	}

	rest := segment
	for _, m := range dayRangeRegex.FindAllStringSubmatch(rest, -1) {
		from := weekdayByName[strings.ToLower(m[1])]
		to := weekdayByName[strings.ToLower(m[2])]
		for d := from; ; d = time.Weekday((int(d) + 1) % 7) {
			add(d)
			if d == to {
				break
			}
		}
	}
	rest = dayRangeRegex.ReplaceAllString(rest, " ")
	for _, m := range dayNameRegex.FindAllStringSubmatch(rest, -1) {
		add(weekdayByName[strings.ToLower(m[1])])
	}
	if dailyRegex.MatchString(rest) {
		for d := time.Sunday; d <= time.Saturday; d++ {
			add(d)
		}
	}
	if weekdaysRegex.MatchString(rest) {
		for d := time.Monday; d <= time.Friday; d++ {
			add(d)
		}
	}
	if weekendsRegex.MatchString(rest) {
		add(time.Saturday)
		add(time.Sunday)
	}
	return days
}

// unionDays merges two day sets in place on dst, treating nil as
// empty.
func unionDays(dst, src map[time.Weekday]bool) map[time.Weekday]bool {
	if src == nil {
		return dst
	}
	if dst == nil {
		dst = make(map[time.Weekday]bool, len(src))
	}
	for d := range src {
		dst[d] = true
	}
	return dst
}

// ActivityWindow summarizes a descriptor for callers that want the
// parse result without re-evaluating it, e.g. the plotting helper.
type ActivityWindow struct {
	StartMinute int
	EndMinute   int
	Days        []time.Weekday
}

// ParseActivityWindows exposes the parsed clauses of a descriptor.
// Days comes back sorted Sunday first; an empty Days means every day.
func ParseActivityWindows(descriptor string) []ActivityWindow {
	clauses := parseWindowDescriptor(descriptor)
	if len(clauses) == 0 {
		return nil
	}
	out := make([]ActivityWindow, 0, len(clauses))
	for _, c := range clauses {
		w := ActivityWindow{StartMinute: c.startMin, EndMinute: c.endMin}
		for d := time.Sunday; d <= time.Saturday; d++ {
			if c.days != nil && c.days[d] {
				w.Days = append(w.Days, d)
			}
		}
		out = append(out, w)
	}
	return out
}
