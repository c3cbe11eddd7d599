package get_upcoming_bookings

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
	"github.com/m04kA/SMC-CourtBooking/internal/infra/cache/views"
)

// UseCase use case для получения предстоящих бронирований со статистикой ответов
type UseCase struct {
	bookingRepo      BookingRepository
	availabilityRepo AvailabilityRepository
	access           AccessChecker
	cache            ViewCache
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	availabilityRepo AvailabilityRepository,
	access AccessChecker,
	cache ViewCache,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		availabilityRepo: availabilityRepo,
		access:           access,
		cache:            cache,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute возвращает бронирования, начинающиеся с начала текущего дня, по возрастанию времени начала
// Статистика пересчитывается при каждом построении представления
func (uc *UseCase) Execute(ctx context.Context, _ *Request) (*Response, error) {
	// 1. Определяем пользователя
	userID, err := uc.access.RequireUser(ctx)
	if err != nil {
		return nil, err
	}

	// 2. Начало текущего дня
	from := startOfDay(uc.timeProvider.Now())
	scope := userID + ":" + from.Format(domain.DateFormat)

	// 3. Пробуем взять представление из кэша
	var cached Response
	hit, version, err := uc.cache.Get(ctx, views.Bookings, scope, &cached)
	if err != nil {
		uc.logger.Warn("GetUpcomingBookings: view cache read failed: %v", err)
	}
	if hit {
		return &cached, nil
	}

	uc.logger.Info("GetUpcomingBookings: user=%s, from=%s", userID, from.Format(domain.DateFormat))

	// 4. Получаем бронирования вместе с названиями кортов
	bookings, err := uc.bookingRepo.List(ctx, domain.BookingsFilter{From: &from})
	if err != nil {
		uc.logger.Error("GetUpcomingBookings: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %w", ErrInternal, err)
	}

	// 5. Получаем ответы по всем бронированиям одним запросом
	ids := make([]string, 0, len(bookings))
	for _, b := range bookings {
		ids = append(ids, b.ID)
	}

	availabilities, err := uc.availabilityRepo.ListByBookingIDs(ctx, ids)
	if err != nil {
		uc.logger.Error("GetUpcomingBookings: failed to list responses: %v", err)
		return nil, fmt.Errorf("%w: failed to list responses: %w", ErrInternal, err)
	}

	// 6. Собираем представление и считаем статистику по каждому слоту
	grouped := groupByBooking(availabilities)
	response := &Response{
		From:     from,
		Bookings: make([]Booking, 0, len(bookings)),
	}
	for _, b := range bookings {
		response.Bookings = append(response.Bookings, buildBooking(b, grouped[b.ID], userID))
	}

	if err := uc.cache.Set(ctx, views.Bookings, scope, version, response); err != nil {
		uc.logger.Warn("GetUpcomingBookings: view cache write failed: %v", err)
	}

	uc.logger.Info("GetUpcomingBookings: returned %d bookings for user=%s", len(response.Bookings), userID)
	return response, nil
}
