package availability

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
	"github.com/m04kA/SMC-CourtBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-CourtBooking/pkg/pgerrors"
	"github.com/m04kA/SMC-CourtBooking/pkg/psqlbuilder"
)

// upsertSuffix заменяет существующий ответ пользователя на бронирование
// Ключ конфликта (booking_id, user_id) гарантирует один ответ на пару
const upsertSuffix = "ON CONFLICT (booking_id, user_id) DO UPDATE SET probability = EXCLUDED.probability, updated_at = NOW()"

// userForeignKey ограничение на availabilities.user_id из миграции
const userForeignKey = "availabilities_user_id_fkey"

// Repository репозиторий ответов пользователей о доступности
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Upsert сохраняет ответ пользователя, заменяя предыдущий
func (r *Repository) Upsert(ctx context.Context, a *domain.Availability) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("availabilities").
		Columns("booking_id", "user_id", "probability").
		Values(a.BookingID, a.UserID, a.Probability).
		Suffix(upsertSuffix).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		if pgerrors.IsForeignKeyViolation(err) {
			if pgerrors.Constraint(err) == userForeignKey {
				return ErrUserNotFound
			}
			return ErrBookingNotFound
		}
		return fmt.Errorf("%w: Upsert - execute insert: %w", ErrExecQuery, err)
	}

	return nil
}

// ListByBookingIDs возвращает все ответы по набору бронирований
func (r *Repository) ListByBookingIDs(ctx context.Context, bookingIDs []string) ([]*domain.Availability, error) {
	if len(bookingIDs) == 0 {
		return []*domain.Availability{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("booking_id", "user_id", "probability", "updated_at").
		From("availabilities").
		Where(squirrel.Eq{"booking_id": bookingIDs}).
		OrderBy("booking_id ASC", "user_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBookingIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBookingIDs - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.Availability, 0)
	for rows.Next() {
		var a domain.Availability
		var updatedAt sql.NullTime

		if err := rows.Scan(&a.BookingID, &a.UserID, &a.Probability, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: ListByBookingIDs - scan row: %w", ErrScanRow, err)
		}

		a.UpdatedAt = updatedAt.Time
		result = append(result, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByBookingIDs - rows error: %w", ErrScanRow, err)
	}

	return result, nil
}
