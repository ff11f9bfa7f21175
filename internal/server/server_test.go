package server

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/tinyhouse/internal/domain"
	"github.com/nfrund/tinyhouse/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPErrorHandler_WithStackTrace(t *testing.T) {
	e := echo.New()

	// Capture log output.
	var logBuffer bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logBuffer, &slog.HandlerOptions{AddSource: true}))
	originalLogger := slog.Default()
	slog.SetDefault(logger)
	defer slog.SetDefault(originalLogger)

	setupErrorHandling(e)

	e.GET("/test-unhandled-error", func(c echo.Context) error {
		return errors.New("a deliberate unhandled error occurred")
	})

	req := httptest.NewRequest(http.MethodGet, "/test-unhandled-error", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code, "Expected a 500 Internal Server Error response")

	logOutput := logBuffer.String()
	assert.Contains(t, logOutput, "Internal Server Error (Unhandled)", "Log message should indicate an unhandled error")
	assert.Contains(t, logOutput, "error=\"a deliberate unhandled error occurred\"", "Log should contain the original error message")
	assert.Contains(t, logOutput, "stack_trace=", "Log must contain the stack_trace field")
	assert.Contains(t, logOutput, "runtime/debug/stack.go", "Stack trace should originate from the debug package")
	assert.Contains(t, logOutput, "internal/server/server_test.go", "Stack trace should point back to this test file")
}

func TestHTTPErrorHandler_HTTPError(t *testing.T) {
	e := echo.New()
	setupErrorHandling(e)
	e.GET("/forbidden", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusForbidden, "nope")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/forbidden", nil))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "nope", rec.Body.String())
}

// emptyRepo knows a single user with no listings.
type emptyRepo struct{}

func (emptyRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	if id != "bob" {
		return nil, domain.ErrNotFound
	}
	return &domain.User{ID: "bob", Name: "Bob Okafor"}, nil
}

func (emptyRepo) ListListings(ctx context.Context, hostID string, limit, page int) (*domain.ListingsPage, error) {
	return &domain.ListingsPage{}, nil
}

func (emptyRepo) ListBookings(ctx context.Context, tenantID string, limit, page int) (*domain.BookingsPage, error) {
	return &domain.BookingsPage{}, nil
}

func (emptyRepo) SetWallet(ctx context.Context, id string, walletID *string) (*domain.User, error) {
	return &domain.User{ID: id, HasWallet: walletID != nil}, nil
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	s, err := Build(context.Background(), &testutils.StubConfig{}, Deps{
		Users:        emptyRepo{},
		AuthorizeURL: "https://connect.example/oauth/authorize",
	})
	require.NoError(t, err)
	return s
}

func TestServer_Routes(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name     string
		target   string
		wantCode int
		wantBody string
	}{
		{"home", "/", http.StatusOK, "Find a place to stay"},
		{"health", "/health", http.StatusOK, `"database":"disabled"`},
		{"stylesheet", "/static/css/app.css", http.StatusOK, ".app-header"},
		{"user shell", "/user/bob", http.StatusOK, `hx-trigger="load"`},
		{"user content", "/user/bob/content", http.StatusOK, "Bob Okafor"},
		{"unknown user", "/user/ghost/content", http.StatusOK, "This user may not exist"},
		{"bad cursor", "/user/bob?listings_page=0", http.StatusBadRequest, "invalid page request"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			s.E.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
			assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
		})
	}
}

func TestServer_Metrics(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.E.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/user/bob/content", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	s.E.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `tinyhouse_user_page_renders_total{outcome="success"} 1`)
	assert.True(t, strings.Contains(body, "tinyhouse_requests_total"), "echo request metrics are exported")
}

func TestServer_Shutdown(t *testing.T) {
	s := newTestServer(t)
	assert.NoError(t, s.Shutdown(context.Background()))
}
