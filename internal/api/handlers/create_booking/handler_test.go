package create_booking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBooking/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBooking/internal/service/access"
	createBooking "github.com/m04kA/SMC-CourtBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-CourtBooking/pkg/logger"
)

type fakeUseCase struct {
	got  *createBooking.Request
	resp *createBooking.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.got = req
	return f.resp, f.err
}

type stubAccess struct {
	err error
}

func (s stubAccess) RequireAdmin(context.Context) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return "admin-1", nil
}

const validBody = `{"courtId":"court-1","startTime":"2024-03-01T18:00:00Z","endTime":"2024-03-01T19:00:00Z"}`

func serve(t *testing.T, uc *fakeUseCase, body string) (*httptest.ResponseRecorder, handlers.ActionResult) {
	t.Helper()
	return serveAs(t, uc, stubAccess{}, body)
}

func serveAs(t *testing.T, uc *fakeUseCase, acc stubAccess, body string) (*httptest.ResponseRecorder, handlers.ActionResult) {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/bookings", strings.NewReader(body))

	NewHandler(uc, acc, logger.NewNop()).Handle(rec, req)

	var result handlers.ActionResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	return rec, result
}

func TestHandle_Created(t *testing.T) {
	start := time.Date(2024, 3, 1, 18, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{resp: &createBooking.Response{
		ID: "b-1", CourtID: "court-1", StartTime: start, EndTime: start.Add(time.Hour), Status: "pending",
	}}

	rec, result := serve(t, uc, validBody)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, result.Success)
	assert.Equal(t, "court-1", uc.got.CourtID)
	assert.True(t, uc.got.StartTime.Equal(start))

	data := result.Data.(map[string]interface{})
	assert.Equal(t, "b-1", data["id"])
	assert.Equal(t, "2024-03-01T18:00:00Z", data["startTime"])
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"unauthenticated", access.ErrUnauthenticated, http.StatusUnauthorized, "You must be signed in to perform this action."},
		{"not admin", access.ErrAdminRequired, http.StatusForbidden, "Admin access required."},
		{"overlap", createBooking.ErrOverlap, http.StatusConflict, "This court already has a booking in the selected time range."},
		{"time range", createBooking.ErrInvalidTimeRange, http.StatusBadRequest, "Start time must be before end time."},
		{"court missing", createBooking.ErrMissingCourtID, http.StatusBadRequest, "Court ID is required."},
		{"court not found", createBooking.ErrCourtNotFound, http.StatusNotFound, "Court not found."},
		{
			"upstream",
			fmt.Errorf("%w: failed to create booking: %w", createBooking.ErrInternal, fmt.Errorf("new row violates check constraint")),
			http.StatusBadGateway,
			"new row violates check constraint",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, result := serve(t, &fakeUseCase{err: tt.err}, validBody)

			assert.Equal(t, tt.status, rec.Code)
			assert.False(t, result.Success)
			assert.Equal(t, tt.message, result.Error)
		})
	}
}

func TestHandle_MalformedInstantNeverReachesUseCase(t *testing.T) {
	uc := &fakeUseCase{}

	rec, result := serve(t, uc, `{"courtId":"court-1","startTime":"tomorrow","endTime":"2024-03-01T19:00:00Z"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, msgInvalidTime, result.Error)
	assert.Nil(t, uc.got)
}

func TestHandle_AccessCheckedBeforeBody(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		body    string
		status  int
		message string
	}{
		{"anonymous with broken body", access.ErrUnauthenticated, `{"courtId":`, http.StatusUnauthorized, "You must be signed in to perform this action."},
		{"player with bad instant", access.ErrAdminRequired, `{"courtId":"court-1","startTime":"tomorrow"}`, http.StatusForbidden, "Admin access required."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{}

			rec, result := serveAs(t, uc, stubAccess{err: tt.err}, tt.body)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.message, result.Error)
			assert.Nil(t, uc.got)
		})
	}
}
