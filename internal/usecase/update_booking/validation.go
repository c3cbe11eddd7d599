package update_booking

import (
	"fmt"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
)

// validateRequest валидирует поля бронирования. ID проверяется до проверки прав в Execute
func validateRequest(req *Request) (domain.BookingStatus, error) {
	if req.CourtID == "" {
		return "", ErrMissingCourtID
	}
	if !domain.IsValidID(req.CourtID) {
		return "", ErrCourtNotFound
	}

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
