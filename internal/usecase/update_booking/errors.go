package update_booking

import "errors"

var (
	// ErrMissingID возвращается, когда не передан ID бронирования
	ErrMissingID = errors.New("update_booking: booking ID is required")

	// ErrMissingCourtID возвращается, когда не указан корт
	ErrMissingCourtID = errors.New("update_booking: court ID is required")

	// ErrInvalidTimeRange возвращается, когда время начала не раньше времени окончания
	ErrInvalidTimeRange = errors.New("update_booking: start time must be before end time")

	// ErrInvalidStatus возвращается при неизвестном статусе бронирования
	ErrInvalidStatus = errors.New("update_booking: invalid booking status")

	// ErrOverlap возвращается, когда на корте уже есть другое бронирование в этом интервале
	ErrOverlap = errors.New("update_booking: court already has a booking in the selected time range")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("update_booking: booking not found")

	// ErrCourtNotFound возвращается, когда корт не существует
	ErrCourtNotFound = errors.New("update_booking: court not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking: internal error")
)
