package domain

import "time"

// Day axis
const (
	MinutesPerHour = 60
	HoursPerDay    = 24
	MinutesPerDay  = HoursPerDay * MinutesPerHour // 1440
)

// SlotStepMinutes granularity of slots resolved from a click on the track
const SlotStepMinutes = 15

// Now marker refresh cadence
const (
	DefaultRefreshInterval = 30 * time.Second
	MaxRefreshInterval     = 60 * time.Second
)

// DateFormat формат даты в запросах и ответах (YYYY-MM-DD)
const DateFormat = "2006-01-02"

// AllStatuses список всех статусов бронирования
var AllStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
	StatusCompleted,
}
