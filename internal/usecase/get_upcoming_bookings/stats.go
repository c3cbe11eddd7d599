package get_upcoming_bookings

import (
	"time"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
)

// startOfDay возвращает полночь текущего дня по UTC
func startOfDay(now time.Time) time.Time {
	y, m, d := now.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// groupByBooking раскладывает ответы по бронированиям
func groupByBooking(availabilities []*domain.Availability) map[string][]domain.Availability {
	grouped := make(map[string][]domain.Availability)
	for _, a := range availabilities {
		grouped[a.BookingID] = append(grouped[a.BookingID], *a)
	}
	return grouped
}

// buildBooking собирает представление бронирования для пользователя userID
func buildBooking(b *domain.BookingWithCourt, responses []domain.Availability, userID string) Booking {
	stats := domain.ComputeStats(responses)

	view := Booking{
		ID:        b.ID,
		CourtID:   b.CourtID,
		CourtName: b.CourtName,
		StartTime: b.StartTime.UTC(),
		EndTime:   b.EndTime.UTC(),
		Status:    string(b.Status),
		Responses: make([]Answer, 0, len(responses)),
		Stats: Stats{
			ResponseCount:      stats.ResponseCount,
			AvailableCount:     stats.AvailableCount,
			UnavailableCount:   stats.UnavailableCount,
			AverageProbability: stats.AverageProbability,
		},
	}

	for _, r := range responses {
		answer := Answer{UserID: r.UserID, Probability: r.Probability}
		view.Responses = append(view.Responses, answer)
		if r.UserID == userID {
			mine := answer
			view.MyResponse = &mine
		}
	}

	return view
}
