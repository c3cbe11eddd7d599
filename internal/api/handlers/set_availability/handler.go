package set_availability

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtBooking/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBooking/internal/service/access"
	setAvailability "github.com/m04kA/SMC-CourtBooking/internal/usecase/set_availability"
)

const (
	msgSignInRequired     = "You must be signed in to set your availability."
	msgBookingRequired    = "A booking is required."
	msgInvalidProbability = "Probability must be between 0 and 100."
	msgBookingNotFound    = "Booking not found."
	msgUnknownUser        = "Your account is not registered for court bookings."
)

type Handler struct {
	useCase SetAvailabilityUseCase
	access  AccessChecker
	logger  Logger
}

func NewHandler(useCase SetAvailabilityUseCase, access AccessChecker, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		access:  access,
		logger:  logger,
	}
}

// Handle PUT /api/v1/bookings/{bookingId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := strings.TrimSpace(mux.Vars(r)["bookingId"])

	// Пользователь определяется до разбора тела
	if _, err := h.access.RequireUser(r.Context()); err != nil {
		h.logger.Warn("PUT /bookings/{id}/availability - Unauthenticated: %v", err)
		handlers.RespondUnauthorized(w, msgSignInRequired)
		return
	}

	var req SetAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/{id}/availability - Invalid request body: %v", err)
		handlers.RespondInvalidBody(w)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(bookingID))
	if err != nil {
		switch {
		case errors.Is(err, access.ErrUnauthenticated):
			handlers.RespondUnauthorized(w, msgSignInRequired)

		case errors.Is(err, setAvailability.ErrMissingBookingID):
			handlers.RespondBadRequest(w, msgBookingRequired)

		case errors.Is(err, setAvailability.ErrInvalidProbability):
			handlers.RespondBadRequest(w, msgInvalidProbability)

		case errors.Is(err, setAvailability.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, setAvailability.ErrUnknownUser):
			handlers.RespondForbidden(w, msgUnknownUser)

		default:
			h.logger.Error("PUT /bookings/{id}/availability - Failed to save: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondUpstream(w, err)
		}
		return
	}

	h.logger.Info("PUT /bookings/{id}/availability - Saved: booking_id=%s, user_id=%s, probability=%d",
		result.BookingID, result.UserID, result.Probability)
	handlers.RespondSuccess(w, http.StatusOK, FromUseCaseResponse(result))
}
