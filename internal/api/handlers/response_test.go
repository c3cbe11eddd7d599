package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	errSentinel = errors.New("usecase: internal error")
	errRepo     = errors.New("repository: failed to execute query")
)

func TestRootCause(t *testing.T) {
	pqErr := &pq.Error{Code: "42P01", Message: "relation \"bookings\" does not exist"}

	wrapped := fmt.Errorf("%w: Create - repository error: %w", errSentinel,
		fmt.Errorf("%w: Create - execute insert: %w", errRepo, pqErr))

	assert.Same(t, pqErr, RootCause(wrapped))
	assert.Equal(t, errSentinel, RootCause(errSentinel))
	assert.Nil(t, RootCause(nil))
}

func TestRespondUpstream(t *testing.T) {
	rec := httptest.NewRecorder()
	cause := errors.New("permission denied for table bookings")

	RespondUpstream(rec, fmt.Errorf("%w: %w", errSentinel, cause))

	assert.Equal(t, http.StatusBadGateway, rec.Code)

	var body ActionResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "permission denied for table bookings", body.Error)
}

func TestRespondSuccess_OmitsEmptyData(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondSuccess(rec, http.StatusOK, nil)

	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestDecodeJSON(t *testing.T) {
	var dest struct {
		Name string `json:"name"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"A"}`))
	require.NoError(t, DecodeJSON(req, &dest))
	assert.Equal(t, "A", dest.Name)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"unknown":1}`))
	assert.Error(t, DecodeJSON(req, &dest))

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`))
	assert.Error(t, DecodeJSON(req, &dest))
}
