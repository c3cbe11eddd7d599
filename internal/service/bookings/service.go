package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
	"github.com/m04kA/SMC-CourtBooking/internal/infra/cache/views"
	bookingRepo "github.com/m04kA/SMC-CourtBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-CourtBooking/internal/service/bookings/models"
)

const scopeAll = "all"

// Service сервис для работы с бронированиями из календаря администратора
type Service struct {
	bookingRepo BookingRepository
	courtRepo   CourtRepository
	access      AccessChecker
	cache       ViewCache
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	courtRepo CourtRepository,
	access AccessChecker,
	cache ViewCache,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		courtRepo:   courtRepo,
		access:      access,
		cache:       cache,
		logger:      logger,
	}
}

// Delete удаляет бронирование вместе с ответами пользователей
func (s *Service) Delete(ctx context.Context, id string) error {
	userID, err := s.access.RequireAdmin(ctx)
	if err != nil {
		return err
	}

	if id == "" {
		return ErrMissingID
	}
	if !domain.IsValidID(id) {
		return ErrBookingNotFound
	}

	s.logger.Info("Delete: admin=%s deleting booking id=%s", userID, id)

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%s not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %w", ErrInternal, err)
	}

	if err := s.cache.Invalidate(ctx, views.Admin, views.Bookings); err != nil {
		s.logger.Warn("Delete: failed to invalidate views: %v", err)
	}

	s.logger.Info("Delete: successfully deleted booking id=%s", id)
	return nil
}

// GetSchedule возвращает все корты и все бронирования для календаря администратора
func (s *Service) GetSchedule(ctx context.Context) (*models.ScheduleResponse, error) {
	userID, err := s.access.RequireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	var cached models.ScheduleResponse
	hit, version, err := s.cache.Get(ctx, views.Admin, scopeAll, &cached)
	if err != nil {
		s.logger.Warn("GetSchedule: view cache read failed: %v", err)
	}
	if hit {
		return &cached, nil
	}

	s.logger.Info("GetSchedule: loading schedule for admin=%s", userID)

	courts, err := s.courtRepo.List(ctx)
	if err != nil {
		s.logger.Error("GetSchedule: failed to list courts: %v", err)
		return nil, fmt.Errorf("%w: GetSchedule - list courts: %w", ErrInternal, err)
	}

	bookings, err := s.bookingRepo.List(ctx, domain.BookingsFilter{})
	if err != nil {
		s.logger.Error("GetSchedule: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: GetSchedule - list bookings: %w", ErrInternal, err)
	}

	response := models.FromDomainSchedule(courts, bookings)
	if err := s.cache.Set(ctx, views.Admin, scopeAll, version, response); err != nil {
		s.logger.Warn("GetSchedule: view cache write failed: %v", err)
	}

	s.logger.Info("GetSchedule: %d courts, %d bookings", len(response.Courts), len(response.Bookings))
	return response, nil
}
