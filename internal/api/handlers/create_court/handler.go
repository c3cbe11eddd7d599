package create_court

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CourtBooking/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBooking/internal/service/access"
	"github.com/m04kA/SMC-CourtBooking/internal/service/courts"
)

const (
	msgSignInRequired = "You must be signed in to perform this action."
	msgAdminRequired  = "Admin access required."
	msgNameRequired   = "Court name is required."
	msgDuplicateName  = "A court with this name already exists."
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

// Handle POST /api/v1/admin/courts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if _, err := h.access.RequireAdmin(r.Context()); err != nil {
		h.logger.Warn("POST /admin/courts - Access denied: %v", err)
		if errors.Is(err, access.ErrAdminRequired) {
			handlers.RespondForbidden(w, msgAdminRequired)
		} else {
			handlers.RespondUnauthorized(w, msgSignInRequired)
		}
		return
	}

	var req CreateCourtRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/courts - Invalid request body: %v", err)
		handlers.RespondInvalidBody(w)
		return
	}

	court, err := h.service.Create(r.Context(), req.Name)
	if err != nil {
		switch {
		case errors.Is(err, access.ErrUnauthenticated):
			handlers.RespondUnauthorized(w, msgSignInRequired)

		case errors.Is(err, access.ErrAdminRequired):
			handlers.RespondForbidden(w, msgAdminRequired)

		case errors.Is(err, courts.ErrEmptyName):
			handlers.RespondBadRequest(w, msgNameRequired)

		case errors.Is(err, courts.ErrDuplicateName):
			handlers.RespondConflict(w, msgDuplicateName)

		default:
			h.logger.Error("POST /admin/courts - Failed to create court: %v", err)
			handlers.RespondUpstream(w, err)
		}
		return
	}

	h.logger.Info("POST /admin/courts - Court created: court_id=%s", court.ID)
	handlers.RespondSuccess(w, http.StatusCreated, court)
}
