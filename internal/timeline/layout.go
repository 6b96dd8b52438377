package timeline

import (
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-BilliardTimeline/internal/domain"
)

// Bar is a booking laid out on the track of the displayed day
type Bar struct {
	BookingID int64
	TableID   int64
	Status    domain.BookingStatus
	Placement

	// Clipped minutes since midnight
	StartMinute int
	EndMinute   int

	// Span continues from the previous day / into the next day
	ContinuesBefore bool
	ContinuesAfter  bool

	Style   Style
	Caption Caption
}

// Layout positions bookings on the day starting at dayStart.
// Bookings that do not overlap the day are omitted. Bars are ordered by left edge,
// then by booking ID.
func Layout(bookings []*domain.Booking, dayStart time.Time, showPersonalInfo bool) []Bar {
	nextDay := NextDayStart(dayStart)
	bars := make([]Bar, 0, len(bookings))

	for _, b := range bookings {
		if b == nil {
			continue
		}

		placement := Position(b.StartTime, b.EndTime, dayStart)
		if !placement.Visible() {
			continue
		}

		startMinute, endMinute := Clip(b.StartTime, b.EndTime, dayStart)
		bars = append(bars, Bar{
			BookingID:       b.ID,
			TableID:         b.TableID,
			Status:          b.Status,
			Placement:       placement,
			StartMinute:     startMinute,
			EndMinute:       endMinute,
			ContinuesBefore: b.StartTime.Before(dayStart),
			ContinuesAfter:  b.EndTime.After(nextDay),
			Style:           StyleFor(b.Status),
			Caption:         BuildCaption(b, dayStart, showPersonalInfo),
		})
	}

	sort.SliceStable(bars, func(i, j int) bool {
		if bars[i].StartMinute != bars[j].StartMinute {
			return bars[i].StartMinute < bars[j].StartMinute
		}
		return bars[i].BookingID < bars[j].BookingID
	})

	return bars
}

// HourMark is a vertical grid line of the track
type HourMark struct {
	Hour        int
	Label       string
	LeftPercent float64
}

// HourMarks returns the 24 hour grid lines of the day axis
func HourMarks() []HourMark {
	marks := make([]HourMark, domain.HoursPerDay)
	for h := range marks {
		marks[h] = HourMark{
			Hour:        h,
			Label:       fmt.Sprintf("%02d:00", h),
			LeftPercent: minutesToPercent(h * domain.MinutesPerHour),
		}
	}
	return marks
}
