package courts

import (
	"context"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
)

// CourtRepository интерфейс репозитория кортов
type CourtRepository interface {
	Create(ctx context.Context, court *domain.Court) (*domain.Court, error)
	Update(ctx context.Context, court *domain.Court) error
	Delete(ctx context.Context, id string) error
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
