package health

import (
	"context"
	"net/http"
	"time"

	"github.com/m04kA/SMC-CourtBooking/internal/api/handlers"
)

const pingTimeout = 2 * time.Second

// Pinger зависимость, доступность которой проверяется
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	db Pinger
}

func NewHandler(db Pinger) *Handler {
	return &Handler{db: db}
}

// Handle GET /health
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		handlers.RespondError(w, http.StatusServiceUnavailable, err.Error())
		return
	}

	handlers.RespondSuccess(w, http.StatusOK, nil)
}
