package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "authcore/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRequestID(t *testing.T, header string) (string, *slog.Logger) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var scoped *slog.Logger
	mw := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	err := mw.Process(func(c echo.Context) error {
		scoped = deliverycontext.GetLogger(c.Request().Context())

		return nil
	})(c)
	require.NoError(t, err)

	return rec.Header().Get(deliverycontext.HeaderXRequestID), scoped
}

func TestRequestIDMiddleware_ReusesClientID(t *testing.T) {
	id, scoped := runRequestID(t, "edge-7f3a.1")

	assert.Equal(t, "edge-7f3a.1", id)
	assert.NotNil(t, scoped)
}

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "missing", header: ""},
		{name: "too long", header: strings.Repeat("a", maxRequestIDLength+1)},
		{name: "log injection", header: "abc\nlevel=ERROR"},
		{name: "spaces", header: "a b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, _ := runRequestID(t, tt.header)

			_, err := uuid.Parse(id)
			assert.NoError(t, err)
		})
	}
}
