package create_court

import (
	"context"

	"github.com/m04kA/SMC-CourtBooking/internal/service/courts/models"
)

type CourtService interface {
	Create(ctx context.Context, name string) (*models.CourtResponse, error)
}

type AccessChecker interface {
	RequireAdmin(ctx context.Context) (string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
