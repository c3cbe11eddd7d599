package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
	"github.com/m04kA/SMC-CourtBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-CourtBooking/pkg/pgerrors"
	"github.com/m04kA/SMC-CourtBooking/pkg/psqlbuilder"
)

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// ID генерируется на стороне сервиса. Если в контексте есть транзакция, используется она
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if booking.ID == "" {
		booking.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert("bookings").
		Columns("id", "court_id", "start_time", "end_time", "status").
		Values(booking.ID, booking.CourtID, booking.StartTime, booking.EndTime, booking.Status).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		if pgerrors.IsForeignKeyViolation(err) {
			return nil, ErrCourtNotFound
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// Update перезаписывает корт, интервал и статус бронирования
func (r *Repository) Update(ctx context.Context, booking *domain.Booking) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("court_id", booking.CourtID).
		Set("start_time", booking.StartTime).
		Set("end_time", booking.EndTime).
		Set("status", booking.Status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": booking.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if pgerrors.IsForeignKeyViolation(err) {
			return ErrCourtNotFound
		}
		return fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// Delete удаляет бронирование вместе с ответами пользователей (ON DELETE CASCADE)
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// FindOverlapping возвращает ID бронирований корта, пересекающихся с кандидатом
// Условие полуоткрытых интервалов: start_time < candidate.end AND end_time > candidate.start
// Бронирование с ID == ExcludeID не учитывается (обновление самого себя)
//
// Внутри транзакции строки блокируются (FOR UPDATE), чтобы параллельная запись ждала коммита
func (r *Repository) FindOverlapping(ctx context.Context, candidate domain.OverlapCandidate) ([]string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id").
		From("bookings").
		Where(squirrel.Eq{"court_id": candidate.CourtID}).
		Where(squirrel.Lt{"start_time": candidate.EndTime}).
		Where(squirrel.Gt{"end_time": candidate.StartTime})

	if candidate.ExcludeID != "" {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": candidate.ExcludeID})
	}

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindOverlapping - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: FindOverlapping - scan id: %w", ErrScanRow, err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: FindOverlapping - rows error: %w", ErrScanRow, err)
	}

	return ids, nil
}

// List получает бронирования вместе с названием корта, отсортированные по времени начала
//
// Примеры использования:
//
// 1. Все бронирования (календарь администратора):
//    filter := domain.BookingsFilter{}
//
// 2. Предстоящие бронирования начиная с сегодняшнего дня:
//    today := time.Now().UTC().Truncate(24 * time.Hour)
//    filter := domain.BookingsFilter{From: &today}
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.BookingWithCourt, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"b.id",
		"b.court_id",
		"b.start_time",
		"b.end_time",
		"b.status",
		"b.created_at",
		"b.updated_at",
		"c.name",
	).
		From("bookings b").
		Join("courts c ON c.id = b.court_id")

	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"b.start_time": *filter.From})
	}

	query, args, err := selectBuilder.OrderBy("b.start_time ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookingsWithCourt(rows)
}

// scanBookingsWithCourt сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookingsWithCourt(rows *sql.Rows) ([]*domain.BookingWithCourt, error) {
	bookings := make([]*domain.BookingWithCourt, 0)

	for rows.Next() {
		var booking domain.BookingWithCourt
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&booking.ID,
			&booking.CourtID,
			&booking.StartTime,
			&booking.EndTime,
			&booking.Status,
			&createdAt,
			&updatedAt,
			&booking.CourtName,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookingsWithCourt - scan row: %w", ErrScanRow, err)
		}

		booking.CreatedAt = createdAt.Time
		booking.UpdatedAt = updatedAt.Time

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookingsWithCourt - rows error: %w", ErrScanRow, err)
	}

	return bookings, nil
}
