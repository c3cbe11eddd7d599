package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
	"github.com/m04kA/SMC-CourtBooking/internal/infra/cache/views"
	bookingRepo "github.com/m04kA/SMC-CourtBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-CourtBooking/pkg/pgerrors"
)

const operation = "create_booking"

// UseCase use case для создания бронирования администратором
type UseCase struct {
	bookingRepo BookingRepository
	overlap     OverlapChecker
	access      AccessChecker
	txManager   TransactionManager
	invalidator ViewInvalidator
	conflicts   ConflictRecorder
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	overlap OverlapChecker,
	access AccessChecker,
	txManager TransactionManager,
	invalidator ViewInvalidator,
	conflicts ConflictRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		overlap:     overlap,
		access:      access,
		txManager:   txManager,
		invalidator: invalidator,
		conflicts:   conflicts,
		logger:      logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка пересечений и запись выполняются в одной сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Проверяем права администратора
	userID, err := uc.access.RequireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: admin=%s, court=%s, start=%s, end=%s",
		userID, req.CourtID, req.StartTime.Format(domain.TimeFormat), req.EndTime.Format(domain.TimeFormat))

	// 2. Валидация входных данных
	status, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	// 3. Проверяем пересечения и сохраняем в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Ищем пересекающиеся бронирования на этом корте
		hasOverlap, err := uc.overlap.HasOverlap(txCtx, domain.OverlapCandidate{
			CourtID:   req.CourtID,
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: overlap check failed for court=%s: %v", req.CourtID, err)
			return fmt.Errorf("%w: overlap check: %w", ErrInternal, err)
		}

		if hasOverlap {
			uc.logger.Warn("CreateBooking: court=%s already booked between %s and %s",
				req.CourtID, req.StartTime.Format(domain.TimeFormat), req.EndTime.Format(domain.TimeFormat))
			uc.conflicts.ObserveOverlapConflict(operation)
			return ErrOverlap
		}

		// 3.2. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
			CourtID:   req.CourtID,
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
			Status:    status,
		})
		if err != nil {
			if errors.Is(err, bookingRepo.ErrCourtNotFound) {
				uc.logger.Warn("CreateBooking: court=%s not found", req.CourtID)
				return ErrCourtNotFound
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrOverlap) || errors.Is(err, ErrCourtNotFound) || errors.Is(err, ErrInternal) {
			return nil, err
		}
		if pgerrors.IsSerializationFailure(err) {
			// Конкурентная запись на тот же корт, повтор не выполняется
			uc.logger.Warn("CreateBooking: concurrent write on court=%s rejected: %v", req.CourtID, err)
		} else {
			uc.logger.Error("CreateBooking: transaction failed: %v", err)
		}
		return nil, fmt.Errorf("%w: transaction: %w", ErrInternal, err)
	}

	// 4. Сбрасываем представления календаря администратора и списка бронирований
	if err := uc.invalidator.Invalidate(ctx, views.Admin, views.Bookings); err != nil {
		uc.logger.Warn("CreateBooking: failed to invalidate views: %v", err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s", result.ID)

	return &Response{
		ID:        result.ID,
		CourtID:   result.CourtID,
		StartTime: result.StartTime,
		EndTime:   result.EndTime,
		Status:    string(result.Status),
		CreatedAt: result.CreatedAt,
		UpdatedAt: result.UpdatedAt,
	}, nil
}
