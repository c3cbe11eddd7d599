package get_admin_schedule

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CourtBooking/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBooking/internal/service/access"
)

const (
	msgSignInRequired = "You must be signed in to perform this action."
	msgAdminRequired  = "Admin access required."
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

// Handle GET /api/v1/admin/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	schedule, err := h.service.GetSchedule(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, access.ErrUnauthenticated):
			handlers.RespondUnauthorized(w, msgSignInRequired)

		case errors.Is(err, access.ErrAdminRequired):
			handlers.RespondForbidden(w, msgAdminRequired)

		default:
			h.logger.Error("GET /admin/schedule - Failed to load schedule: %v", err)
			handlers.RespondUpstream(w, err)
		}
		return
	}

	handlers.RespondSuccess(w, http.StatusOK, schedule)
}
