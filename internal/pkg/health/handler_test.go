package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterHealthEndpoints_Liveness(t *testing.T) {
	e := echo.New()
	RegisterHealthEndpoints(e, "nebengjek-navigation", "1.2.3", NewService())

	for _, path := range []string{"/health", "/healthz"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, "OK", rec.Body.String(), path)
	}
}

func TestPing(t *testing.T) {
	e := echo.New()
	RegisterHealthEndpoints(e, "nebengjek-navigation", "1.2.3", NewService())

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var info BuildInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, "nebengjek-navigation", info.ServiceName)
	assert.Equal(t, "1.2.3", info.Version)
	assert.False(t, info.ServerTime.IsZero())
}

func TestReady(t *testing.T) {
	tests := []struct {
		name       string
		redisErr   error
		wantStatus int
		wantState  string
	}{
		{name: "all healthy", wantStatus: http.StatusOK, wantState: "healthy"},
		{name: "redis down", redisErr: errors.New("dial tcp: refused"), wantStatus: http.StatusServiceUnavailable, wantState: "unhealthy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService()
			svc.AddChecker("postgres", CheckerFunc(func(ctx context.Context) error { return nil }))
			svc.AddChecker("redis", CheckerFunc(func(ctx context.Context) error { return tt.redisErr }))

			e := echo.New()
			RegisterHealthEndpoints(e, "nav", "", svc)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			var report Report
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
			assert.Equal(t, tt.wantState, report.Status)
			assert.Equal(t, "healthy", report.Dependencies["postgres"].Status)
		})
	}
}
