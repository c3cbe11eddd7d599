package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) PingContext(ctx context.Context) error { return f(ctx) }

func TestHandle(t *testing.T) {
	ok := NewHandler(pingerFunc(func(context.Context) error { return nil }))
	rec := httptest.NewRecorder()
	ok.Handle(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())

	down := NewHandler(pingerFunc(func(context.Context) error { return errors.New("dial tcp: connection refused") }))
	rec = httptest.NewRecorder()
	down.Handle(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"dial tcp: connection refused"}`, rec.Body.String())
}
