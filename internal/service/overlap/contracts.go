package overlap

import (
	"context"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
)

// BookingRepository источник бронирований для проверки пересечений
type BookingRepository interface {
	FindOverlapping(ctx context.Context, candidate domain.OverlapCandidate) ([]string, error)
}
