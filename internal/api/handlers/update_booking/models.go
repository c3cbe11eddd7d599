package update_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
	updateBooking "github.com/m04kA/SMC-CourtBooking/internal/usecase/update_booking"
)

// UpdateBookingRequest HTTP request model
type UpdateBookingRequest struct {
	CourtID   string `json:"courtId"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Status    string `json:"status,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateBookingRequest) ToUseCaseRequest(id string) (*updateBooking.Request, error) {
	startTime, err := time.Parse(domain.TimeFormat, r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("startTime: %w", err)
	}

	endTime, err := time.Parse(domain.TimeFormat, r.EndTime)
	if err != nil {
		return nil, fmt.Errorf("endTime: %w", err)
	}

	return &updateBooking.Request{
		ID:        id,
		CourtID:   r.CourtID,
		StartTime: startTime,
		EndTime:   endTime,
		Status:    r.Status,
	}, nil
}
