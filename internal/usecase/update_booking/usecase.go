package update_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
	"github.com/m04kA/SMC-CourtBooking/internal/infra/cache/views"
	bookingRepo "github.com/m04kA/SMC-CourtBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-CourtBooking/pkg/pgerrors"
)

const operation = "update_booking"

// UseCase use case для изменения бронирования администратором
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

// Execute выполняет use case изменения бронирования
// Само бронирование исключается из проверки пересечений
func (uc *UseCase) Execute(ctx context.Context, req *Request) error {
	// 1. ID обязателен, проверяется раньше прав доступа
	if req.ID == "" {
		uc.logger.Warn("UpdateBooking: booking ID is missing")
		return ErrMissingID
	}

	// 2. Проверяем права администратора
	userID, err := uc.access.RequireAdmin(ctx)
	if err != nil {
		return err
	}

	if !domain.IsValidID(req.ID) {
		uc.logger.Warn("UpdateBooking: malformed booking ID=%q", req.ID)
		return ErrBookingNotFound
	}

	uc.logger.Info("UpdateBooking: admin=%s, booking=%s, court=%s, start=%s, end=%s",
		userID, req.ID, req.CourtID, req.StartTime.Format(domain.TimeFormat), req.EndTime.Format(domain.TimeFormat))

	// 3. Валидация полей
	status, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("UpdateBooking: validation failed: %v", err)
		return err
	}

	// 4. Проверяем пересечения и обновляем в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		hasOverlap, err := uc.overlap.HasOverlap(txCtx, domain.OverlapCandidate{
			CourtID:   req.CourtID,
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
			ExcludeID: req.ID,
		})
		if err != nil {
			uc.logger.Error("UpdateBooking: overlap check failed for court=%s: %v", req.CourtID, err)
			return fmt.Errorf("%w: overlap check: %w", ErrInternal, err)
		}

		if hasOverlap {
			uc.logger.Warn("UpdateBooking: court=%s already booked between %s and %s",
				req.CourtID, req.StartTime.Format(domain.TimeFormat), req.EndTime.Format(domain.TimeFormat))
			uc.conflicts.ObserveOverlapConflict(operation)
			return ErrOverlap
		}

		err = uc.bookingRepo.Update(txCtx, &domain.Booking{
			ID:        req.ID,
			CourtID:   req.CourtID,
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
			Status:    status,
		})
		switch {
		case err == nil:
			return nil
		case errors.Is(err, bookingRepo.ErrBookingNotFound):
			uc.logger.Warn("UpdateBooking: booking=%s not found", req.ID)
			return ErrBookingNotFound
		case errors.Is(err, bookingRepo.ErrCourtNotFound):
			uc.logger.Warn("UpdateBooking: court=%s not found", req.CourtID)
			return ErrCourtNotFound
		default:
			uc.logger.Error("UpdateBooking: failed to update booking=%s: %v", req.ID, err)
			return fmt.Errorf("%w: failed to update booking: %w", ErrInternal, err)
		}
	})
	if err != nil {
		if isKnown(err) {
			return err
		}
		if pgerrors.IsSerializationFailure(err) {
			// Конкурентная запись на тот же корт, повтор не выполняется
			uc.logger.Warn("UpdateBooking: concurrent write on court=%s rejected: %v", req.CourtID, err)
		} else {
			uc.logger.Error("UpdateBooking: transaction failed: %v", err)
		}
		return fmt.Errorf("%w: transaction: %w", ErrInternal, err)
	}

	// 5. Сбрасываем представления
	if err := uc.invalidator.Invalidate(ctx, views.Admin, views.Bookings); err != nil {
		uc.logger.Warn("UpdateBooking: failed to invalidate views: %v", err)
	}

	uc.logger.Info("UpdateBooking: successfully updated booking id=%s", req.ID)
	return nil
}

func isKnown(err error) bool {
	return errors.Is(err, ErrOverlap) ||
		errors.Is(err, ErrBookingNotFound) ||
		errors.Is(err, ErrCourtNotFound) ||
		errors.Is(err, ErrInternal)
}
