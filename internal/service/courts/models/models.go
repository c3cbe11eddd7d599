package models

import (
	"time"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
)

// CourtResponse ответ с данными корта
type CourtResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromDomainCourt конвертирует domain.Court в CourtResponse
func FromDomainCourt(court *domain.Court) CourtResponse {
	return CourtResponse{
		ID:        court.ID,
		Name:      court.Name,
		CreatedAt: court.CreatedAt,
	}
}

// FromDomainCourtList конвертирует список кортов
func FromDomainCourtList(courts []*domain.Court) []CourtResponse {
	result := make([]CourtResponse, 0, len(courts))
	for _, court := range courts {
		result = append(result, FromDomainCourt(court))
	}
	return result
}
