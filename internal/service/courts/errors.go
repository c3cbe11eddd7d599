package courts

import "errors"

var (
	// ErrMissingID возвращается, когда не передан ID корта
	ErrMissingID = errors.New("courts: court ID is required")

	// ErrEmptyName возвращается, когда название корта пустое
	ErrEmptyName = errors.New("courts: court name is required")

	// ErrDuplicateName возвращается, когда корт с таким названием уже существует
	ErrDuplicateName = errors.New("courts: court with this name already exists")

	// ErrCourtNotFound возвращается, когда корт не найден
	ErrCourtNotFound = errors.New("courts: court not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("courts: internal error")
)
