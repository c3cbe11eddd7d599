package get_upcoming_bookings

import (
	"context"

	getUpcoming "github.com/m04kA/SMC-CourtBooking/internal/usecase/get_upcoming_bookings"
)

type GetUpcomingBookingsUseCase interface {
	Execute(ctx context.Context, req *getUpcoming.Request) (*getUpcoming.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
