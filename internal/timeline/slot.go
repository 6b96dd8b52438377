package timeline

import (
	"math"

	"github.com/m04kA/SMC-BilliardTimeline/internal/domain"
)

// SlotHandler receives a slot resolved on the track of a table
type SlotHandler func(tableID int64, slot domain.Slot)

// Track is the horizontal pixel region holding the 24-hour axis of one table
type Track struct {
	TableID     int64
	WidthPixels float64
}

// Click resolves pixelX into a slot and passes it to onSlot.
// Nothing is called when the click cannot be resolved; the result reports whether onSlot fired.
func (t Track) Click(pixelX float64, onSlot SlotHandler) bool {
	slot, ok := ResolveSlotFromClick(pixelX, t.WidthPixels)
	if !ok {
		return false
	}
	if onSlot != nil {
		onSlot(t.TableID, slot)
	}
	return true
}

// ResolveSlotFromClick converts a pointer position on a track of trackWidth pixels
// into a slot rounded to the nearest SlotStepMinutes boundary.
//
// Rounding up to a full hour carries into the next hour. A carry into hour 24 is
// rejected: the last quarter of the day (23:45-24:00 rounding upwards) has no slot.
// A non-positive or non-finite track width is rejected as well, an infinite width
// included, even though the ratio would clamp to 00:00.
func ResolveSlotFromClick(pixelX, trackWidth float64) (domain.Slot, bool) {
	if math.IsNaN(pixelX) || math.IsNaN(trackWidth) || math.IsInf(trackWidth, 0) || trackWidth <= 0 {
		return domain.Slot{}, false
	}

	percent := clampPercent(pixelX / trackWidth * 100)
	totalMinutes := percent / 100 * domain.MinutesPerDay

	rawMinute := int(math.Floor(totalMinutes)) % domain.MinutesPerHour
	rawHour := int(math.Floor(totalMinutes / domain.MinutesPerHour))

	roundedMinute := int(math.Round(float64(rawMinute)/domain.SlotStepMinutes)) * domain.SlotStepMinutes

	slot := domain.Slot{Hour: rawHour, Minute: roundedMinute}
	if roundedMinute == domain.MinutesPerHour {
		slot = domain.Slot{Hour: rawHour + 1, Minute: 0}
	}

	if slot.Hour >= domain.HoursPerDay {
		return domain.Slot{}, false
	}
	return slot, true
}

// clampPercent clamps p to [0,100)
func clampPercent(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p >= 100 {
		return math.Nextafter(100, 0)
	}
	return p
}
