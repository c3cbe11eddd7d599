package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CourtBooking/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBooking/internal/service/access"
	createBooking "github.com/m04kA/SMC-CourtBooking/internal/usecase/create_booking"
)

const (
	msgInvalidTime      = "Start time and end time must be valid ISO 8601 timestamps."
	msgSignInRequired   = "You must be signed in to perform this action."
	msgAdminRequired    = "Admin access required."
	msgCourtIDRequired  = "Court ID is required."
	msgInvalidTimeRange = "Start time must be before end time."
	msgInvalidStatus    = "Status must be one of pending, confirmed or cancelled."
	msgOverlap          = "This court already has a booking in the selected time range."
	msgCourtNotFound    = "Court not found."
)

type Handler struct {
	useCase CreateBookingUseCase
	access  AccessChecker
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, access AccessChecker, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		access:  access,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Права проверяются до разбора тела
	if _, err := h.access.RequireAdmin(r.Context()); err != nil {
		h.logger.Warn("POST /admin/bookings - Access denied: %v", err)
		respondAccessDenied(w, err)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/bookings - Invalid request body: %v", err)
		handlers.RespondInvalidBody(w)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /admin/bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, access.ErrUnauthenticated):
			handlers.RespondUnauthorized(w, msgSignInRequired)

		case errors.Is(err, access.ErrAdminRequired):
			handlers.RespondForbidden(w, msgAdminRequired)

		case errors.Is(err, createBooking.ErrMissingCourtID):
			handlers.RespondBadRequest(w, msgCourtIDRequired)

		case errors.Is(err, createBooking.ErrInvalidTimeRange):
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, createBooking.ErrInvalidStatus):
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, createBooking.ErrOverlap):
			h.logger.Warn("POST /admin/bookings - Overlap: court_id=%s", req.CourtID)
			handlers.RespondConflict(w, msgOverlap)

		case errors.Is(err, createBooking.ErrCourtNotFound):
			handlers.RespondNotFound(w, msgCourtNotFound)

		default:
			h.logger.Error("POST /admin/bookings - Failed to create booking: court_id=%s, error=%v", req.CourtID, err)
			handlers.RespondUpstream(w, err)
		}
		return
	}

	h.logger.Info("POST /admin/bookings - Booking created successfully: booking_id=%s, court_id=%s", result.ID, result.CourtID)
	handlers.RespondSuccess(w, http.StatusCreated, FromUseCaseResponse(result))
}

func respondAccessDenied(w http.ResponseWriter, err error) {
	if errors.Is(err, access.ErrAdminRequired) {
		handlers.RespondForbidden(w, msgAdminRequired)
		return
	}
	handlers.RespondUnauthorized(w, msgSignInRequired)
}
