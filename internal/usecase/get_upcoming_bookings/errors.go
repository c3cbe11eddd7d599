package get_upcoming_bookings

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_upcoming_bookings: internal error")
)
