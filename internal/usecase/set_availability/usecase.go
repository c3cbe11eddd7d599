package set_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
	"github.com/m04kA/SMC-CourtBooking/internal/infra/cache/views"
	availabilityRepo "github.com/m04kA/SMC-CourtBooking/internal/infra/storage/availability"
)

// UseCase use case для ответа пользователя о вероятности участия в бронировании
type UseCase struct {
	availabilityRepo AvailabilityRepository
	access           AccessChecker
	invalidator      ViewInvalidator
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	availabilityRepo AvailabilityRepository,
	access AccessChecker,
	invalidator ViewInvalidator,
	logger Logger,
) *UseCase {
	return &UseCase{
		availabilityRepo: availabilityRepo,
		access:           access,
		invalidator:      invalidator,
		logger:           logger,
	}
}

// Execute сохраняет ответ пользователя, заменяя предыдущий ответ на то же бронирование
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Определяем пользователя
	userID, err := uc.access.RequireUser(ctx)
	if err != nil {
		return nil, err
	}

	// 2. Валидация
	if req.BookingID == "" {
		return nil, ErrMissingBookingID
	}
	if !domain.IsValidID(req.BookingID) {
		return nil, ErrBookingNotFound
	}

	if err := validateProbability(req.Probability); err != nil {
		uc.logger.Warn("SetAvailability: user=%s, booking=%s, invalid probability=%v", userID, req.BookingID, req.Probability)
		return nil, err
	}

	availability := &domain.Availability{
		BookingID:   req.BookingID,
		UserID:      userID,
		Probability: roundProbability(req.Probability),
	}

	uc.logger.Info("SetAvailability: user=%s, booking=%s, probability=%d",
		userID, availability.BookingID, availability.Probability)

	// 3. Сохраняем ответ, ключ (booking_id, user_id)
	if err := uc.availabilityRepo.Upsert(ctx, availability); err != nil {
		if errors.Is(err, availabilityRepo.ErrBookingNotFound) {
			uc.logger.Warn("SetAvailability: booking=%s not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		if errors.Is(err, availabilityRepo.ErrUserNotFound) {
			uc.logger.Warn("SetAvailability: user=%s is not registered", userID)
			return nil, ErrUnknownUser
		}
		uc.logger.Error("SetAvailability: failed to save response for booking=%s: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to save response: %w", ErrInternal, err)
	}

	// 4. Сбрасываем список бронирований
	if err := uc.invalidator.Invalidate(ctx, views.Bookings); err != nil {
		uc.logger.Warn("SetAvailability: failed to invalidate views: %v", err)
	}

	return &Response{
		BookingID:   availability.BookingID,
		UserID:      availability.UserID,
		Probability: availability.Probability,
	}, nil
}
