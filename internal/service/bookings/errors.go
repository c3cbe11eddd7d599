package bookings

import "errors"

var (
	// ErrMissingID возвращается, когда не передан ID бронирования
	ErrMissingID = errors.New("bookings: booking ID is required")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("bookings: booking not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings: internal error")
)
