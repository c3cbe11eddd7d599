package create_booking

import "errors"

var (
	// ErrMissingCourtID возвращается, когда не указан корт
	ErrMissingCourtID = errors.New("create_booking: court ID is required")

	// ErrInvalidTimeRange возвращается, когда время начала не раньше времени окончания
	ErrInvalidTimeRange = errors.New("create_booking: start time must be before end time")

	// ErrInvalidStatus возвращается при неизвестном статусе бронирования
	ErrInvalidStatus = errors.New("create_booking: invalid booking status")

	// ErrOverlap возвращается, когда на корте уже есть бронирование в этом интервале
	ErrOverlap = errors.New("create_booking: court already has a booking in the selected time range")

	// ErrCourtNotFound возвращается, когда корт не существует
	ErrCourtNotFound = errors.New("create_booking: court not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
