package set_availability

import "errors"

var (
	// ErrMissingBookingID возвращается, когда не указано бронирование
	ErrMissingBookingID = errors.New("set_availability: booking is required")

	// ErrInvalidProbability возвращается, когда вероятность не число или вне диапазона 0..100
	ErrInvalidProbability = errors.New("set_availability: probability must be between 0 and 100")

	// ErrBookingNotFound возвращается, когда бронирование не существует
	ErrBookingNotFound = errors.New("set_availability: booking not found")

	// ErrUnknownUser возвращается, когда пользователь из токена не зарегистрирован в сервисе
	ErrUnknownUser = errors.New("set_availability: user is not registered")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("set_availability: internal error")
)
