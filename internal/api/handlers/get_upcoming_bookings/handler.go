package get_upcoming_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CourtBooking/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBooking/internal/service/access"
	getUpcoming "github.com/m04kA/SMC-CourtBooking/internal/usecase/get_upcoming_bookings"
)

const msgSignInRequired = "You must be signed in to perform this action."

type Handler struct {
	useCase GetUpcomingBookingsUseCase
	logger  Logger
}

func NewHandler(useCase GetUpcomingBookingsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/upcoming
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context(), &getUpcoming.Request{})
	if err != nil {
		if errors.Is(err, access.ErrUnauthenticated) {
			handlers.RespondUnauthorized(w, msgSignInRequired)
			return
		}
		h.logger.Error("GET /bookings/upcoming - Failed to load bookings: %v", err)
		handlers.RespondUpstream(w, err)
		return
	}

	handlers.RespondSuccess(w, http.StatusOK, result)
}
