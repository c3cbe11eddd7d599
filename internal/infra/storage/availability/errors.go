package availability

import "errors"

var (
	// ErrBookingNotFound возвращается, когда ответ ссылается на несуществующее бронирование
	ErrBookingNotFound = errors.New("availability.repository: booking not found")

	// ErrUserNotFound возвращается, когда пользователя нет в таблице users
	ErrUserNotFound = errors.New("availability.repository: user not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("availability.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("availability.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("availability.repository: failed to scan row")
)
