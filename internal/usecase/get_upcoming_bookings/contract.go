package get_upcoming_bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.BookingWithCourt, error)
}

// AvailabilityRepository интерфейс репозитория ответов о доступности
type AvailabilityRepository interface {
	ListByBookingIDs(ctx context.Context, bookingIDs []string) ([]*domain.Availability, error)
}

// AccessChecker определяет текущего пользователя
type AccessChecker interface {
	RequireUser(ctx context.Context) (string, error)
}

// ViewCache кэш представлений
type ViewCache interface {
	Get(ctx context.Context, view, scope string, dest interface{}) (bool, int64, error)
	Set(ctx context.Context, view, scope string, version int64, value interface{}) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
