package courts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
	"github.com/m04kA/SMC-CourtBooking/internal/infra/cache/views"
	courtRepo "github.com/m04kA/SMC-CourtBooking/internal/infra/storage/court"
	"github.com/m04kA/SMC-CourtBooking/internal/service/courts/models"
)

const scopeAll = "all"

// Service сервис управления кортами. Все операции доступны только администратору
type Service struct {
	courtRepo CourtRepository
	access    AccessChecker
	cache     ViewCache
	logger    Logger
}

// NewService создает новый экземпляр сервиса кортов
func NewService(courtRepo CourtRepository, access AccessChecker, cache ViewCache, logger Logger) *Service {
	return &Service{
		courtRepo: courtRepo,
		access:    access,
		cache:     cache,
		logger:    logger,
	}
}

// Create создает корт с уникальным названием
func (s *Service) Create(ctx context.Context, name string) (*models.CourtResponse, error) {
	userID, err := s.access.RequireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	s.logger.Info("Create: admin=%s creating court name=%q", userID, name)

	court, err := s.courtRepo.Create(ctx, &domain.Court{Name: name})
	if err != nil {
		if errors.Is(err, courtRepo.ErrDuplicateName) {
			s.logger.Warn("Create: court name=%q already exists", name)
			return nil, ErrDuplicateName
		}
		s.logger.Error("Create: repository error for name=%q: %v", name, err)
		return nil, fmt.Errorf("%w: Create - repository error: %w", ErrInternal, err)
	}

	s.invalidate(ctx, "Create")

	s.logger.Info("Create: successfully created court id=%s", court.ID)
	response := models.FromDomainCourt(court)
	return &response, nil
}

// Update переименовывает корт
func (s *Service) Update(ctx context.Context, id, name string) error {
	userID, err := s.access.RequireAdmin(ctx)
	if err != nil {
		return err
	}

	if id == "" {
		return ErrMissingID
	}
	if !domain.IsValidID(id) {
		return ErrCourtNotFound
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}

	s.logger.Info("Update: admin=%s renaming court id=%s to %q", userID, id, name)

	if err := s.courtRepo.Update(ctx, &domain.Court{ID: id, Name: name}); err != nil {
		switch {
		case errors.Is(err, courtRepo.ErrDuplicateName):
			s.logger.Warn("Update: court name=%q already exists", name)
			return ErrDuplicateName
		case errors.Is(err, courtRepo.ErrCourtNotFound):
			s.logger.Warn("Update: court id=%s not found", id)
			return ErrCourtNotFound
		}
		s.logger.Error("Update: repository error for court id=%s: %v", id, err)
		return fmt.Errorf("%w: Update - repository error: %w", ErrInternal, err)
	}

	// Название корта входит в список бронирований игроков
	s.invalidate(ctx, "Update", views.Bookings)

	s.logger.Info("Update: successfully updated court id=%s", id)
	return nil
}

// Delete удаляет корт вместе с его бронированиями
func (s *Service) Delete(ctx context.Context, id string) error {
	userID, err := s.access.RequireAdmin(ctx)
	if err != nil {
		return err
	}

	if id == "" {
		return ErrMissingID
	}
	if !domain.IsValidID(id) {
		return ErrCourtNotFound
	}

	s.logger.Info("Delete: admin=%s deleting court id=%s", userID, id)

	if err := s.courtRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			s.logger.Warn("Delete: court id=%s not found", id)
			return ErrCourtNotFound
		}
		s.logger.Error("Delete: repository error for court id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %w", ErrInternal, err)
	}

	// Вместе с кортом каскадно удалились его бронирования
	s.invalidate(ctx, "Delete", views.Bookings)

	s.logger.Info("Delete: successfully deleted court id=%s", id)
	return nil
}

// List возвращает корты, отсортированные по названию
func (s *Service) List(ctx context.Context) ([]models.CourtResponse, error) {
	if _, err := s.access.RequireAdmin(ctx); err != nil {
		return nil, err
	}

	var cached []models.CourtResponse
	hit, version, err := s.cache.Get(ctx, views.AdminCourts, scopeAll, &cached)
	if err != nil {
		s.logger.Warn("List: view cache read failed: %v", err)
	}
	if hit {
		return cached, nil
	}

	courts, err := s.courtRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %w", ErrInternal, err)
	}

	response := models.FromDomainCourtList(courts)
	if err := s.cache.Set(ctx, views.AdminCourts, scopeAll, version, response); err != nil {
		s.logger.Warn("List: view cache write failed: %v", err)
	}

	return response, nil
}

// invalidate сбрасывает представления со списком кортов. Ошибка сброса не отменяет изменение
func (s *Service) invalidate(ctx context.Context, op string, extra ...string) {
	affected := append([]string{views.AdminCourts, views.Admin}, extra...)
	if err := s.cache.Invalidate(ctx, affected...); err != nil {
		s.logger.Warn("%s: failed to invalidate views %v: %v", op, affected, err)
	}
}
