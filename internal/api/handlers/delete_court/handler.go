package delete_court

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtBooking/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBooking/internal/service/access"
	"github.com/m04kA/SMC-CourtBooking/internal/service/courts"
)

const (
	msgSignInRequired = "You must be signed in to perform this action."
	msgAdminRequired  = "Admin access required."
	msgIDRequired     = "Court ID is required."
	msgCourtNotFound  = "Court not found."
)

type Handler struct {
	service CourtService
	logger  Logger
}

func NewHandler(service CourtService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/admin/courts/{courtId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	courtID := strings.TrimSpace(mux.Vars(r)["courtId"])

	if err := h.service.Delete(r.Context(), courtID); err != nil {
		switch {
		case errors.Is(err, access.ErrUnauthenticated):
			handlers.RespondUnauthorized(w, msgSignInRequired)

		case errors.Is(err, access.ErrAdminRequired):
			handlers.RespondForbidden(w, msgAdminRequired)

		case errors.Is(err, courts.ErrMissingID):
			handlers.RespondBadRequest(w, msgIDRequired)

		case errors.Is(err, courts.ErrCourtNotFound):
			handlers.RespondNotFound(w, msgCourtNotFound)

		default:
			h.logger.Error("DELETE /admin/courts/{id} - Failed to delete court: court_id=%s, error=%v", courtID, err)
			handlers.RespondUpstream(w, err)
		}
		return
	}

	h.logger.Info("DELETE /admin/courts/{id} - Court deleted: court_id=%s", courtID)
	handlers.RespondSuccess(w, http.StatusOK, nil)
}
