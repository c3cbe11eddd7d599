package delete_booking

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtBooking/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBooking/internal/service/access"
	"github.com/m04kA/SMC-CourtBooking/internal/service/bookings"
)

const (
	msgSignInRequired  = "You must be signed in to perform this action."
	msgAdminRequired   = "Admin access required."
	msgIDRequired      = "A booking ID is required."
	msgBookingNotFound = "Booking not found."
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/admin/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := strings.TrimSpace(mux.Vars(r)["bookingId"])

	if err := h.service.Delete(r.Context(), bookingID); err != nil {
		switch {
		case errors.Is(err, access.ErrUnauthenticated):
			handlers.RespondUnauthorized(w, msgSignInRequired)

		case errors.Is(err, access.ErrAdminRequired):
			handlers.RespondForbidden(w, msgAdminRequired)

		case errors.Is(err, bookings.ErrMissingID):
			handlers.RespondBadRequest(w, msgIDRequired)

		case errors.Is(err, bookings.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgBookingNotFound)

		default:
			h.logger.Error("DELETE /admin/bookings/{id} - Failed to delete booking: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondUpstream(w, err)
		}
		return
	}

	h.logger.Info("DELETE /admin/bookings/{id} - Booking deleted: booking_id=%s", bookingID)
	handlers.RespondSuccess(w, http.StatusOK, nil)
}
