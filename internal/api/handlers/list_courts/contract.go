package list_courts

import (
	"context"

	"github.com/m04kA/SMC-CourtBooking/internal/service/courts/models"
)

type CourtService interface {
	List(ctx context.Context) ([]models.CourtResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
