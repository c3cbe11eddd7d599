package get_admin_schedule

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-CourtBooking/internal/service/access"
	"github.com/m04kA/SMC-CourtBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-CourtBooking/pkg/logger"
)

type fakeService struct {
	schedule *models.ScheduleResponse
	err      error
}

func (f *fakeService) GetSchedule(context.Context) (*models.ScheduleResponse, error) {
	return f.schedule, f.err
}

func serve(svc *fakeService) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/schedule", nil))
	return rec
}

func TestHandle_ReturnsSchedule(t *testing.T) {
	rec := serve(&fakeService{schedule: &models.ScheduleResponse{}})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
	assert.Contains(t, rec.Body.String(), `"data"`)
}

func TestHandle_AccessErrors(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, serve(&fakeService{err: access.ErrUnauthenticated}).Code)
	assert.Equal(t, http.StatusForbidden, serve(&fakeService{err: access.ErrAdminRequired}).Code)
}
