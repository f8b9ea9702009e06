package schedule

import (
	"fmt"
	"time"
)

// Schedule is the parsed form of a merchant's operating days and hours.
type Schedule struct {
	days      map[time.Weekday]bool
	intervals []Interval
}

// Parse builds a Schedule from the raw spreadsheet fields. Input that
// yields no working days or no intervals produces a schedule that is
// always closed.
func Parse(daysRaw, hoursRaw string) Schedule {
	return Schedule{
		days:      ParseDays(daysRaw),
		intervals: ParseHours(hoursRaw),
	}
}

// WorkingDay reports whether the schedule covers the given weekday.
func (s Schedule) WorkingDay(d time.Weekday) bool {
	return s.days[d]
}

// Intervals returns the parsed opening windows.
func (s Schedule) Intervals() []Interval {
	return s.intervals
}

// IsOpenAt reports whether the store is open at the given instant.
// Interval ends are inclusive, so a store open "18h às 23h" is still
// open at exactly 23:00. Overnight windows extend into the morning of
// the following day: the morning half counts only when the previous
// day is a working day, since that is the shift the window belongs to.
func (s Schedule) IsOpenAt(t time.Time) bool {
	minutes := t.Hour()*60 + t.Minute()
	today := t.Weekday()
	yesterday := (today + 6) % 7

	for _, iv := range s.intervals {
		if iv.Overnight() {
			if s.days[today] && minutes >= iv.Start {
				return true
			}
			if s.days[yesterday] && minutes <= iv.End {
				return true
			}
			continue
		}
		if s.days[today] && minutes >= iv.Start && minutes <= iv.End {
			return true
		}
	}
	return false
}

// DaySlots groups the pickup times offered on a single calendar day.
type DaySlots struct {
	Date  string   `json:"date"`
	Times []string `json:"times"`
}

// SlotOptions controls slot generation. Zero values fall back to the
// storefront defaults.
type SlotOptions struct {
	MinLeadTime   time.Duration
	Step          time.Duration
	LookaheadDays int
}

func (o SlotOptions) withDefaults() SlotOptions {
	if o.MinLeadTime <= 0 {
		o.MinLeadTime = 24 * time.Hour
	}
	if o.Step <= 0 {
		o.Step = 30 * time.Minute
	} else if o.Step < time.Minute {
		// Slot math works in whole minutes; anything finer would
		// truncate to a zero step.
		o.Step = time.Minute
	}
	if o.LookaheadDays <= 0 {
		o.LookaheadDays = 30
	}
	return o
}

// Slots enumerates bookable pickup times starting strictly after
// now+MinLeadTime. Days with no remaining times are omitted. Overnight
// windows are not sliced into slots; they only affect IsOpenAt.
func (s Schedule) Slots(now time.Time, opts SlotOptions) []DaySlots {
	opts = opts.withDefaults()
	minTime := now.Add(opts.MinLeadTime)
	step := int(opts.Step.Minutes())

	var out []DaySlots
	for offset := 0; offset < opts.LookaheadDays; offset++ {
		day := time.Date(now.Year(), now.Month(), now.Day()+offset, 0, 0, 0, 0, now.Location())
		if !s.days[day.Weekday()] {
			continue
		}

		var times []string
		for _, iv := range s.intervals {
			if iv.Overnight() {
				continue
			}
			for m := iv.Start; m < iv.End; m += step {
				slot := day.Add(time.Duration(m) * time.Minute)
				if slot.After(minTime) {
					times = append(times, fmt.Sprintf("%02d:%02d", m/60, m%60))
				}
			}
		}
		if len(times) > 0 {
			out = append(out, DaySlots{Date: day.Format("02/01/2006"), Times: times})
		}
	}
	return out
}
