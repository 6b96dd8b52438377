// Package timeline maps booking spans onto the 24-hour axis of a table track
// and maps pointer positions on the track back to bookable slots.
//
// Every function here is pure: the result depends only on the arguments, no
// state is shared between calls and nothing is persisted. Out-of-range input
// is clamped, never reported as an error.
package timeline

import (
	"time"

	"github.com/m04kA/SMC-BilliardTimeline/internal/domain"
)

// Placement is the horizontal position of a span on the track, in percent of the track width.
// LeftPercent and WidthPercent are in [0,100] and their sum never exceeds 100.
type Placement struct {
	LeftPercent  float64
	WidthPercent float64
}

// Visible reports whether the span overlaps the displayed day at all.
// A zero width means the caller must not render the span.
func (p Placement) Visible() bool {
	return p.WidthPercent > 0
}

// DayStart returns midnight of the calendar date of date, in loc.
// The time-of-day part of date is ignored.
func DayStart(date time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = date.Location()
	}
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// NextDayStart returns midnight of the day after dayStart
func NextDayStart(dayStart time.Time) time.Time {
	return dayStart.AddDate(0, 0, 1)
}

// MinuteOfDay returns the wall-clock minute of t on the day starting at dayStart,
// clipped to [0, MinutesPerDay]: instants before the day map to 0, instants at
// or after the next midnight map to MinutesPerDay.
// The axis counts wall-clock minutes, not elapsed ones: on a daylight-saving
// transition day the hour that is skipped or repeated is not stretched.
func MinuteOfDay(t, dayStart time.Time) int {
	if !t.After(dayStart) {
		return 0
	}
	if !t.Before(NextDayStart(dayStart)) {
		return domain.MinutesPerDay
	}
	local := t.In(dayStart.Location())
	return local.Hour()*domain.MinutesPerHour + local.Minute()
}

// Clip intersects [start, end) with the day and returns minutes since midnight.
// The result always satisfies 0 <= startMinute <= endMinute <= MinutesPerDay.
func Clip(start, end, dayStart time.Time) (startMinute, endMinute int) {
	startMinute = MinuteOfDay(start, dayStart)
	endMinute = MinuteOfDay(end, dayStart)
	if endMinute < startMinute {
		endMinute = startMinute
	}
	return startMinute, endMinute
}

// Position places the span [start, end) on the track of the day starting at dayStart.
// Spans entirely outside the day get a zero width.
func Position(start, end, dayStart time.Time) Placement {
	startMinute, endMinute := Clip(start, end, dayStart)
	return Placement{
		LeftPercent:  minutesToPercent(startMinute),
		WidthPercent: minutesToPercent(endMinute - startMinute),
	}
}

// CurrentTimePosition returns the position of the "now" marker on the day starting
// at dayStart. The second result is false when now falls on another calendar date,
// in which case the marker must not be rendered. Like MinuteOfDay it uses
// the wall clock of the hall time zone.
func CurrentTimePosition(now, dayStart time.Time) (float64, bool) {
	local := now.In(dayStart.Location())
	if !sameDate(local, dayStart) {
		return 0, false
	}
	return minutesToPercent(local.Hour()*domain.MinutesPerHour + local.Minute()), true
}

func minutesToPercent(minutes int) float64 {
	return float64(minutes) / domain.MinutesPerDay * 100
}

func sameDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
