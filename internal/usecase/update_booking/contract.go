package update_booking

import (
	"context"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Update(ctx context.Context, booking *domain.Booking) error
}

// OverlapChecker проверка пересечения слота с существующими бронированиями
type OverlapChecker interface {
	HasOverlap(ctx context.Context, candidate domain.OverlapCandidate) (bool, error)
}

// AccessChecker проверка прав администратора
type AccessChecker interface {
	RequireAdmin(ctx context.Context) (string, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// ViewInvalidator сбрасывает закэшированные представления
type ViewInvalidator interface {
	Invalidate(ctx context.Context, views ...string) error
}

// ConflictRecorder считает отклонённые из-за пересечения записи
type ConflictRecorder interface {
	ObserveOverlapConflict(operation string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
