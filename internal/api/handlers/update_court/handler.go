package update_court

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
	msgNameRequired   = "Court name is required."
	msgDuplicateName  = "A court with this name already exists."
	msgCourtNotFound  = "Court not found."
)

type Handler struct {
	service CourtService
	access  AccessChecker
	logger  Logger
}

func NewHandler(service CourtService, access AccessChecker, logger Logger) *Handler {
	return &Handler{
		service: service,
		access:  access,
		logger:  logger,
	}
}

// Handle PUT /api/v1/admin/courts/{courtId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	courtID := strings.TrimSpace(mux.Vars(r)["courtId"])

	if _, err := h.access.RequireAdmin(r.Context()); err != nil {
		h.logger.Warn("PUT /admin/courts/{id} - Access denied: %v", err)
		if errors.Is(err, access.ErrAdminRequired) {
			handlers.RespondForbidden(w, msgAdminRequired)
		} else {
			handlers.RespondUnauthorized(w, msgSignInRequired)
		}
		return
	}

	var req UpdateCourtRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/courts/{id} - Invalid request body: %v", err)
		handlers.RespondInvalidBody(w)
		return
	}

	if err := h.service.Update(r.Context(), courtID, req.Name); err != nil {
		switch {
		case errors.Is(err, access.ErrUnauthenticated):
			handlers.RespondUnauthorized(w, msgSignInRequired)

		case errors.Is(err, access.ErrAdminRequired):
			handlers.RespondForbidden(w, msgAdminRequired)

		case errors.Is(err, courts.ErrMissingID):
			handlers.RespondBadRequest(w, msgIDRequired)

		case errors.Is(err, courts.ErrEmptyName):
			handlers.RespondBadRequest(w, msgNameRequired)

		case errors.Is(err, courts.ErrDuplicateName):
			handlers.RespondConflict(w, msgDuplicateName)

		case errors.Is(err, courts.ErrCourtNotFound):
			handlers.RespondNotFound(w, msgCourtNotFound)

		default:
			h.logger.Error("PUT /admin/courts/{id} - Failed to update court: court_id=%s, error=%v", courtID, err)
			handlers.RespondUpstream(w, err)
		}
		return
	}

	h.logger.Info("PUT /admin/courts/{id} - Court updated: court_id=%s", courtID)
	handlers.RespondSuccess(w, http.StatusOK, nil)
}
