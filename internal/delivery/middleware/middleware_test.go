package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"personapi/config"
	deliverycontext "personapi/internal/delivery/context"
	domainerrors "personapi/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		reuse    bool
	}{
		{name: "reuses client id", incoming: "req-123", reuse: true},
		{name: "generates when missing", incoming: ""},
		{name: "replaces oversized id", incoming: strings.Repeat("x", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			m := NewRequestIDMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)))

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seenCtxID string
			err := m.Process(func(c echo.Context) error {
				seenCtxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				deliverycontext.GetLoggerOrDefault(c.Request().Context(), nil).Info("inside")

				return nil
			})(c)
			require.NoError(t, err)

			requestID := rec.Header().Get(deliverycontext.HeaderXRequestID)
			require.NotEmpty(t, requestID)
			assert.Equal(t, requestID, deliverycontext.GetRequestID(c))
			assert.Equal(t, requestID, seenCtxID)
			assert.Contains(t, buf.String(), `"request_id":"`+requestID+`"`)
			if tt.reuse {
				assert.Equal(t, tt.incoming, requestID)
			} else {
				assert.NotEqual(t, tt.incoming, requestID)
			}
		})
	}
}

func TestLoggerMiddleware_LogsServerErrorsOutsideDebug(t *testing.T) {
	var buf bytes.Buffer
	m := NewLoggerMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)), &config.Config{})

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/persons", nil), httptest.NewRecorder())

	err := m.Handle(func(echo.Context) error { return nil })(c)
	require.NoError(t, err)
	assert.Empty(t, buf.String())

	fault := domainerrors.NewDatabaseExecuteError(assert.AnError, "failed to find persons")
	err = m.Handle(func(echo.Context) error { return fault })(c)
	assert.Equal(t, fault, err)
	assert.Contains(t, buf.String(), `"status":500`)
	assert.Contains(t, buf.String(), `"level":"ERROR"`)
}

func TestLoggerMiddleware_DebugLogsEveryRequest(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = true
	m := NewLoggerMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)), cfg)

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/persons/person/7", nil), httptest.NewRecorder())

	err := m.Handle(func(echo.Context) error {
		return domainerrors.ErrPersonNotFound
	})(c)

	assert.Error(t, err)
	assert.Contains(t, buf.String(), `"status":404`)
	assert.Contains(t, buf.String(), `"level":"WARN"`)
}
