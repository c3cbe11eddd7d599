package create_court

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-CourtBooking/internal/service/access"
	"github.com/m04kA/SMC-CourtBooking/internal/service/courts"
	"github.com/m04kA/SMC-CourtBooking/internal/service/courts/models"
	"github.com/m04kA/SMC-CourtBooking/pkg/logger"
)

type fakeService struct {
	name string
	err  error
}

func (f *fakeService) Create(_ context.Context, name string) (*models.CourtResponse, error) {
	f.name = name
	if f.err != nil {
		return nil, f.err
	}
	return &models.CourtResponse{ID: "court-1", Name: name, CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}, nil
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

func serve(svc *fakeService, body string) *httptest.ResponseRecorder {
	return serveAs(svc, stubAccess{}, body)
}

func serveAs(svc *fakeService, acc stubAccess, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(svc, acc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/admin/courts", strings.NewReader(body)))
	return rec
}

func TestHandle_Created(t *testing.T) {
	rec := serve(&fakeService{}, `{"name":"Center"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"success":true,"data":{"id":"court-1","name":"Center","createdAt":"2024-01-01T00:00:00Z"}}`, rec.Body.String())
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		err    error
		status int
		body   string
	}{
		{courts.ErrDuplicateName, http.StatusConflict, `{"success":false,"error":"A court with this name already exists."}`},
		{courts.ErrEmptyName, http.StatusBadRequest, `{"success":false,"error":"Court name is required."}`},
		{access.ErrAdminRequired, http.StatusForbidden, `{"success":false,"error":"Admin access required."}`},
	}

	for _, tt := range tests {
		rec := serve(&fakeService{err: tt.err}, `{"name":"Center"}`)

		assert.Equal(t, tt.status, rec.Code)
		assert.JSONEq(t, tt.body, rec.Body.String())
	}
}

func TestHandle_InvalidBody(t *testing.T) {
	svc := &fakeService{}

	rec := serve(svc, `name=Center`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, svc.name)
}

func TestHandle_NonAdminRejectedBeforeBody(t *testing.T) {
	svc := &fakeService{}

	rec := serveAs(svc, stubAccess{err: access.ErrAdminRequired}, `name=Center`)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"Admin access required."}`, rec.Body.String())
	assert.Empty(t, svc.name)
}
