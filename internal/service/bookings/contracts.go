package bookings

import (
	"context"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.BookingWithCourt, error)
}

// CourtRepository интерфейс репозитория кортов
type CourtRepository interface {
	List(ctx context.Context) ([]*domain.Court, error)
}

// AccessChecker проверка прав администратора
type AccessChecker interface {
	RequireAdmin(ctx context.Context) (string, error)
}

// ViewCache кэш представлений
type ViewCache interface {
	Get(ctx context.Context, view, scope string, dest interface{}) (bool, int64, error)
	Set(ctx context.Context, view, scope string, version int64, value interface{}) error
	Invalidate(ctx context.Context, views ...string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
