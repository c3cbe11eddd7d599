package domain

import "time"

// Форматы даты и времени в API и логах
const (
	DateFormat = "2006-01-02"
	TimeFormat = time.RFC3339
)

// Probability bounds for availability responses
const (
	MinProbability = 0
	MaxProbability = 100
)

// DefaultBookingStatus is used when a booking is written without a status
const DefaultBookingStatus = StatusPending

// BookingStatuses список всех допустимых статусов бронирования
var BookingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
}
