package timeline

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-BilliardTimeline/internal/domain"
	"github.com/m04kA/SMC-BilliardTimeline/pkg/types"
)

// guestTitle shown in the staff view for a guest booking without a name
const guestTitle = "Гость"

// Style is the fixed visual appearance of a booking status
type Style struct {
	Color      string
	Background string
	Label      string
}

var statusStyles = map[domain.BookingStatus]Style{
	domain.StatusPending: {
		Color:      "#92400e",
		Background: "#fde68a",
		Label:      "Ожидает подтверждения",
	},
	domain.StatusConfirmed: {
		Color:      "#065f46",
		Background: "#6ee7b7",
		Label:      "Забронировано",
	},
	domain.StatusCancelled: {
		Color:      "#991b1b",
		Background: "#fecaca",
		Label:      "Отменено",
	},
	domain.StatusCompleted: {
		Color:      "#374151",
		Background: "#d1d5db",
		Label:      "Завершено",
	},
}

// unknownStyle is used for statuses the engine does not know about
var unknownStyle = Style{
	Color:      "#1f2937",
	Background: "#e5e7eb",
	Label:      "Занято",
}

// StyleFor returns the display style of a status
func StyleFor(status domain.BookingStatus) Style {
	if s, ok := statusStyles[status]; ok {
		return s
	}
	return unknownStyle
}

// LegendItem is one entry of the status legend shown next to the timeline
type LegendItem struct {
	Status domain.BookingStatus
	Style  Style
}

// Legend returns the styles of all known statuses in display order
func Legend() []LegendItem {
	items := make([]LegendItem, len(domain.AllStatuses))
	for i, status := range domain.AllStatuses {
		items[i] = LegendItem{Status: status, Style: StyleFor(status)}
	}
	return items
}

// Caption is the text rendered on a booking bar.
// Personal fields stay nil unless the caption was built with showPersonalInfo.
type Caption struct {
	Title     string
	TimeRange string
	IsGuest   *bool
	Phone     *string
	Price     *float64
}

// BuildCaption returns the caption of b. With showPersonalInfo=false only the status
// label and the time range are filled in, whatever customer data b carries.
func BuildCaption(b *domain.Booking, dayStart time.Time, showPersonalInfo bool) Caption {
	caption := Caption{
		Title:     StyleFor(b.Status).Label,
		TimeRange: formatRange(b.StartTime, b.EndTime, dayStart.Location()),
	}
	if !showPersonalInfo {
		return caption
	}

	isGuest := b.IsGuest
	price := b.Price
	caption.IsGuest = &isGuest
	caption.Price = &price

	if b.IsGuest {
		caption.Title = guestTitle
		if b.GuestName != nil && strings.TrimSpace(*b.GuestName) != "" {
			caption.Title = strings.TrimSpace(*b.GuestName)
		}
		if b.GuestPhone != nil && *b.GuestPhone != "" {
			phone := *b.GuestPhone
			caption.Phone = &phone
		}
		return caption
	}

	if name := strings.TrimSpace(b.CustomerName); name != "" {
		caption.Title = name
	}
	return caption
}

func formatRange(start, end time.Time, loc *time.Location) string {
	return fmt.Sprintf("%s–%s", types.NewTimeString(start.In(loc)), types.NewTimeString(end.In(loc)))
}
