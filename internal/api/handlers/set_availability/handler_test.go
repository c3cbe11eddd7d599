package set_availability

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBooking/internal/service/access"
	setAvailability "github.com/m04kA/SMC-CourtBooking/internal/usecase/set_availability"
	"github.com/m04kA/SMC-CourtBooking/pkg/logger"
)

type fakeUseCase struct {
	got  *setAvailability.Request
	resp *setAvailability.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *setAvailability.Request) (*setAvailability.Response, error) {
	f.got = req
	return f.resp, f.err
}

type stubAccess struct {
	err error
}

func (s stubAccess) RequireUser(context.Context) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return "user-1", nil
}

func serve(uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	return serveAs(uc, stubAccess{}, body)
}

func serveAs(uc *fakeUseCase, acc stubAccess, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/bookings/{bookingId}/availability", NewHandler(uc, acc, logger.NewNop()).Handle)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/v1/bookings/b-1/availability", strings.NewReader(body)))
	return rec
}

func TestHandle_Saved(t *testing.T) {
	uc := &fakeUseCase{resp: &setAvailability.Response{BookingID: "b-1", UserID: "user-1", Probability: 75}}

	rec := serve(uc, `{"probability":74.6}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"data":{"bookingId":"b-1","userId":"user-1","probability":75}}`, rec.Body.String())
	require.NotNil(t, uc.got)
	assert.Equal(t, "b-1", uc.got.BookingID)
	assert.Equal(t, 74.6, uc.got.Probability)
}

func TestHandle_MissingProbabilityIsNaN(t *testing.T) {
	uc := &fakeUseCase{err: setAvailability.ErrInvalidProbability}

	rec := serve(uc, `{}`)

	assert.True(t, math.IsNaN(uc.got.Probability))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"Probability must be between 0 and 100."}`, rec.Body.String())
}

func TestHandle_Unauthenticated(t *testing.T) {
	rec := serve(&fakeUseCase{err: access.ErrUnauthenticated}, `{"probability":10}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"You must be signed in to set your availability."}`, rec.Body.String())
}

func TestHandle_AnonymousRejectedBeforeBody(t *testing.T) {
	uc := &fakeUseCase{}

	rec := serveAs(uc, stubAccess{err: access.ErrUnauthenticated}, `not json`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"You must be signed in to set your availability."}`, rec.Body.String())
	assert.Nil(t, uc.got)
}

func TestHandle_UnregisteredUser(t *testing.T) {
	rec := serve(&fakeUseCase{err: setAvailability.ErrUnknownUser}, `{"probability":10}`)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"Your account is not registered for court bookings."}`, rec.Body.String())
}
