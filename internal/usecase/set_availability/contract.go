package set_availability

import (
	"context"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
)

// AvailabilityRepository интерфейс репозитория ответов о доступности
type AvailabilityRepository interface {
	Upsert(ctx context.Context, availability *domain.Availability) error
}

// AccessChecker определяет текущего пользователя
type AccessChecker interface {
	RequireUser(ctx context.Context) (string, error)
}

// ViewInvalidator сбрасывает закэшированные представления
type ViewInvalidator interface {
	Invalidate(ctx context.Context, views ...string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
