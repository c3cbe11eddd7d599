package update_booking

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtBooking/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBooking/internal/service/access"
	updateBooking "github.com/m04kA/SMC-CourtBooking/internal/usecase/update_booking"
)

const (
	msgInvalidTime      = "Start time and end time must be valid ISO 8601 timestamps."
	msgIDRequired       = "A booking ID is required to update a booking."
	msgSignInRequired   = "You must be signed in to perform this action."
	msgAdminRequired    = "Admin access required."
	msgCourtIDRequired  = "Court ID is required."
	msgInvalidTimeRange = "Start time must be before end time."
	msgInvalidStatus    = "Status must be one of pending, confirmed or cancelled."
	msgOverlap          = "This court already has a booking in the selected time range."
	msgBookingNotFound  = "Booking not found."
	msgCourtNotFound    = "Court not found."
)

type Handler struct {
	useCase UpdateBookingUseCase
	access  AccessChecker
	logger  Logger
}

func NewHandler(useCase UpdateBookingUseCase, access AccessChecker, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		access:  access,
		logger:  logger,
	}
}

// Handle PUT /api/v1/admin/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := strings.TrimSpace(mux.Vars(r)["bookingId"])
	if bookingID == "" {
		handlers.RespondBadRequest(w, msgIDRequired)
		return
	}

	if _, err := h.access.RequireAdmin(r.Context()); err != nil {
		h.logger.Warn("PUT /admin/bookings/{id} - Access denied: booking_id=%s, error=%v", bookingID, err)
		respondAccessDenied(w, err)
		return
	}

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/bookings/{id} - Invalid request body: %v", err)
		handlers.RespondInvalidBody(w)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(bookingID)
	if err != nil {
		h.logger.Warn("PUT /admin/bookings/{id} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	if err := h.useCase.Execute(r.Context(), useCaseReq); err != nil {
		switch {
		case errors.Is(err, updateBooking.ErrMissingID):
			handlers.RespondBadRequest(w, msgIDRequired)

		case errors.Is(err, access.ErrUnauthenticated):
			handlers.RespondUnauthorized(w, msgSignInRequired)

		case errors.Is(err, access.ErrAdminRequired):
			handlers.RespondForbidden(w, msgAdminRequired)

		case errors.Is(err, updateBooking.ErrMissingCourtID):
			handlers.RespondBadRequest(w, msgCourtIDRequired)

		case errors.Is(err, updateBooking.ErrInvalidTimeRange):
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, updateBooking.ErrInvalidStatus):
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, updateBooking.ErrOverlap):
			h.logger.Warn("PUT /admin/bookings/{id} - Overlap: booking_id=%s, court_id=%s", bookingID, req.CourtID)
			handlers.RespondConflict(w, msgOverlap)

		case errors.Is(err, updateBooking.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, updateBooking.ErrCourtNotFound):
			handlers.RespondNotFound(w, msgCourtNotFound)

		default:
			h.logger.Error("PUT /admin/bookings/{id} - Failed to update booking: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondUpstream(w, err)
		}
		return
	}

	h.logger.Info("PUT /admin/bookings/{id} - Booking updated successfully: booking_id=%s", bookingID)
	handlers.RespondSuccess(w, http.StatusOK, nil)
}

func respondAccessDenied(w http.ResponseWriter, err error) {
	if errors.Is(err, access.ErrAdminRequired) {
		handlers.RespondForbidden(w, msgAdminRequired)
		return
	}
	handlers.RespondUnauthorized(w, msgSignInRequired)
}
