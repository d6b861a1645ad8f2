package models

import (
	"fmt"
	"time"
)

// DayHours is one weekday's operating interval. Open/Close are local
// wall-clock times "HH:MM" (24-hour, zero-padded). Close may be
// numerically smaller than Open, meaning the interval wraps past
// midnight into the next day. An empty Open with Closed=false means
// the day has no entry at all.
type DayHours struct {
	Closed bool   `json:"closed,omitempty"`
	Open   string `json:"open,omitempty"`
	Close  string `json:"close,omitempty"`
}

// WeeklyHours is a venue's full weekly schedule, one entry per
// weekday. It is attached 1:1 to a venue and never mutated after load.
type WeeklyHours struct {
	Sunday    DayHours `json:"sunday"`
	Monday    DayHours `json:"monday"`
	Tuesday   DayHours `json:"tuesday"`
	Wednesday DayHours `json:"wednesday"`
	Thursday  DayHours `json:"thursday"`
	Friday    DayHours `json:"friday"`
	Saturday  DayHours `json:"saturday"`
}

// Day returns the entry for the given weekday.
func (w *WeeklyHours) Day(d time.Weekday) DayHours {
	switch d {
	case time.Sunday:
		return w.Sunday
	case time.Monday:
		return w.Monday
	case time.Tuesday:
		return w.Tuesday
	case time.Wednesday:
		return w.Wednesday
	case time.Thursday:
		return w.Thursday
	case time.Friday:
		return w.Friday
	case time.Saturday:
		return w.Saturday
	}
	return DayHours{}
}

// Venue is the physical place a spot may be linked to. One venue can
// host any number of spots (a bar with both a happy hour and a trivia
// night). The engine reads venues, it never owns their lifecycle.
type Venue struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Location Coordinates `json:"location"`
	Address  string      `json:"address,omitempty"`
	Phone    string      `json:"phone,omitempty"`
	Website  string      `json:"website,omitempty"`

	Hours *WeeklyHours `json:"hours,omitempty"`
}

func (v *Venue) ToString() string {
	return fmt.Sprintf("Venue(id=%s, name=%s, lat=%f, lng=%f)",
		v.ID, v.Name, v.Location.Lat, v.Location.Lng)
}
