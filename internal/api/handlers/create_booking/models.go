package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
	createBooking "github.com/m04kA/SMC-CourtBooking/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CourtID   string `json:"courtId"`
	StartTime string `json:"startTime"` // RFC3339
	EndTime   string `json:"endTime"`   // RFC3339
	Status    string `json:"status,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID        string `json:"id"`
	CourtID   string `json:"courtId"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	startTime, err := time.Parse(domain.TimeFormat, r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("startTime: %w", err)
	}

	endTime, err := time.Parse(domain.TimeFormat, r.EndTime)
	if err != nil {
		return nil, fmt.Errorf("endTime: %w", err)
	}

	return &createBooking.Request{
		CourtID:   r.CourtID,
		StartTime: startTime,
		EndTime:   endTime,
		Status:    r.Status,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:        resp.ID,
		CourtID:   resp.CourtID,
		StartTime: resp.StartTime.UTC().Format(domain.TimeFormat),
		EndTime:   resp.EndTime.UTC().Format(domain.TimeFormat),
		Status:    resp.Status,
		CreatedAt: resp.CreatedAt.UTC().Format(domain.TimeFormat),
		UpdatedAt: resp.UpdatedAt.UTC().Format(domain.TimeFormat),
	}
}
