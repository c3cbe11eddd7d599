package create_booking

import (
	"fmt"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
)

// validateRequest валидирует входные данные и возвращает статус с учётом значения по умолчанию
func validateRequest(req *Request) (domain.BookingStatus, error) {
	if req.CourtID == "" {
		return "", ErrMissingCourtID
	}
	if !domain.IsValidID(req.CourtID) {
		return "", ErrCourtNotFound
	}

	// Проверка порядка выполняется здесь, сама проверка пересечений его не валидирует
	if !(domain.Interval{Start: req.StartTime, End: req.EndTime}).IsValid() {
		return "", ErrInvalidTimeRange
	}

	status := domain.BookingStatus(req.Status)
	if status == "" {
		status = domain.DefaultBookingStatus
	}

	if !status.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}

	return status, nil
}
