package set_availability

import (
	"math"

	setAvailability "github.com/m04kA/SMC-CourtBooking/internal/usecase/set_availability"
)

// SetAvailabilityRequest HTTP request model
type SetAvailabilityRequest struct {
	Probability *float64 `json:"probability"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	BookingID   string `json:"bookingId"`
	UserID      string `json:"userId"`
	Probability int    `json:"probability"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Отсутствующая вероятность передаётся как NaN и отклоняется валидацией
func (r *SetAvailabilityRequest) ToUseCaseRequest(bookingID string) *setAvailability.Request {
	probability := math.NaN()
	if r.Probability != nil {
		probability = *r.Probability
	}

	return &setAvailability.Request{
		BookingID:   bookingID,
		Probability: probability,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *setAvailability.Response) *AvailabilityResponse {
	return &AvailabilityResponse{
		BookingID:   resp.BookingID,
		UserID:      resp.UserID,
		Probability: resp.Probability,
	}
}
