package delete_court

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-CourtBooking/internal/service/access"
	"github.com/m04kA/SMC-CourtBooking/internal/service/courts"
	"github.com/m04kA/SMC-CourtBooking/pkg/logger"
)

type fakeService struct {
	id  string
	err error
}

func (f *fakeService) Delete(_ context.Context, id string) error {
	f.id = id
	return f.err
}

func serve(svc *fakeService) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/admin/courts/{courtId}", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodDelete)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/admin/courts/court-1", nil))
	return rec
}

func TestHandle_Deleted(t *testing.T) {
	svc := &fakeService{}

	rec := serve(svc)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "court-1", svc.id)
}

func TestHandle_NotFound(t *testing.T) {
	rec := serve(&fakeService{err: courts.ErrCourtNotFound})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"Court not found."}`, rec.Body.String())
}

func TestHandle_AccessErrors(t *testing.T) {
	tests := []struct {
		err    error
		status int
		body   string
	}{
		{access.ErrAdminRequired, http.StatusForbidden, `{"success":false,"error":"Admin access required."}`},
		{access.ErrUnauthenticated, http.StatusUnauthorized, `{"success":false,"error":"You must be signed in to perform this action."}`},
	}

	for _, tt := range tests {
		rec := serve(&fakeService{err: tt.err})

		assert.Equal(t, tt.status, rec.Code)
		assert.JSONEq(t, tt.body, rec.Body.String())
	}
}
