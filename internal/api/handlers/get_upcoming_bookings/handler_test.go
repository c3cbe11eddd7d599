package get_upcoming_bookings

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBooking/internal/service/access"
	getUpcoming "github.com/m04kA/SMC-CourtBooking/internal/usecase/get_upcoming_bookings"
	"github.com/m04kA/SMC-CourtBooking/pkg/logger"
)

type fakeUseCase struct {
	resp *getUpcoming.Response
	err  error
}

func (f fakeUseCase) Execute(context.Context, *getUpcoming.Request) (*getUpcoming.Response, error) {
	return f.resp, f.err
}

func TestHandle(t *testing.T) {
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	uc := fakeUseCase{resp: &getUpcoming.Response{
		From: from,
		Bookings: []getUpcoming.Booking{{
			ID:        "b-1",
			CourtName: "Alpha",
			Responses: []getUpcoming.Answer{{UserID: "user-1", Probability: 80}},
			Stats:     getUpcoming.Stats{ResponseCount: 1, AvailableCount: 1, AverageProbability: 80},
		}},
	}}
	rec := httptest.NewRecorder()

	NewHandler(uc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/bookings/upcoming", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool                 `json:"success"`
		Data    getUpcoming.Response `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	require.Len(t, body.Data.Bookings, 1)
	assert.Equal(t, 80, body.Data.Bookings[0].Stats.AverageProbability)
}

func TestHandle_Errors(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(fakeUseCase{err: access.ErrUnauthenticated}, logger.NewNop()).
		Handle(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	NewHandler(fakeUseCase{err: fmt.Errorf("%w: %w", getUpcoming.ErrInternal, fmt.Errorf("JWT expired"))}, logger.NewNop()).
		Handle(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"JWT expired"}`, rec.Body.String())
}
