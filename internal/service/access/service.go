package access

import (
	"context"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
	"github.com/m04kA/SMC-CourtBooking/pkg/authtoken"
)

// Checker проверяет, кто выполняет действие
// Роль читается из БД при каждом вызове и нигде не кэшируется
type Checker struct {
	userRepo UserRepository
	logger   Logger
}

// NewChecker создает новый экземпляр проверки доступа
func NewChecker(userRepo UserRepository, logger Logger) *Checker {
	return &Checker{
		userRepo: userRepo,
		logger:   logger,
	}
}

// RequireUser возвращает идентификатор текущего пользователя
func (c *Checker) RequireUser(ctx context.Context) (string, error) {
	userID, ok := authtoken.UserIDFromContext(ctx)
	if !ok {
		return "", ErrUnauthenticated
	}

	// Пользователи платформы идентифицируются UUID
	if !domain.IsValidID(userID) {
		c.logger.Warn("RequireUser: malformed subject=%q", userID)
		return "", ErrUnauthenticated
	}

	return userID, nil
}

// RequireAdmin возвращает идентификатор текущего пользователя, если он администратор
// Ошибка чтения роли трактуется как отказ в доступе
func (c *Checker) RequireAdmin(ctx context.Context) (string, error) {
	userID, err := c.RequireUser(ctx)
	if err != nil {
		return "", err
	}

	role, err := c.userRepo.GetRole(ctx, userID)
	if err != nil {
		c.logger.Warn("RequireAdmin: failed to load role for user=%s: %v", userID, err)
		return "", ErrAdminRequired
	}

	if !role.IsAdmin() {
		c.logger.Warn("RequireAdmin: user=%s has role=%s", userID, role)
		return "", ErrAdminRequired
	}

	return userID, nil
}
