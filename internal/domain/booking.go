package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "PENDING"
	StatusConfirmed BookingStatus = "CONFIRMED"
	StatusCancelled BookingStatus = "CANCELLED"
	StatusCompleted BookingStatus = "COMPLETED"
)

// Booking is a reserved span of time on one billiard table.
// Bookings are read-only inputs of the timeline: nothing here mutates them.
type Booking struct {
	ID        int64
	TableID   int64
	StartTime time.Time
	EndTime   time.Time
	Status    BookingStatus

	// Customer data. Only rendered in the staff view.
	IsGuest      bool
	CustomerName string
	GuestName    *string
	GuestPhone   *string
	Price        float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BookingsFilter фильтр для выборки бронирований столов за период
type BookingsFilter struct {
	TableIDs         []int64   // Обязательный параметр, минимум один стол
	From             time.Time // Начало периода (включительно)
	To               time.Time // Конец периода (не включительно)
	IncludeCancelled bool      // Включать ли отмененные бронирования
}
