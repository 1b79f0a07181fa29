package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/suggestion-box/pkg/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func okHandler(status int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte("ok"))
	})
}

func TestTrimSlash(t *testing.T) {
	handler := middleware.TrimSlash()(okHandler(http.StatusOK))

	tests := []struct {
		name         string
		method       string
		target       string
		wantStatus   int
		wantLocation string
	}{
		{"root preserved", http.MethodGet, "/", http.StatusOK, ""},
		{"no slash", http.MethodGet, "/suggest", http.StatusOK, ""},
		{"trailing slash", http.MethodGet, "/suggest/", http.StatusMovedPermanently, "/suggest"},
		{"repeated slashes", http.MethodGet, "/report//", http.StatusMovedPermanently, "/report"},
		{"query preserved", http.MethodGet, "/report/?submitted=1", http.StatusMovedPermanently, "/report?submitted=1"},
		{"post keeps method", http.MethodPost, "/suggest/", http.StatusPermanentRedirect, "/suggest"},
		{"leading double slash stays local", http.MethodGet, "//evil.example/", http.StatusMovedPermanently, "/evil.example"},
		{"leading backslash stays local", http.MethodGet, "/%5Cevil.example/", http.StatusMovedPermanently, "/evil.example"},
		{"only slashes", http.MethodGet, "///", http.StatusMovedPermanently, "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, nil))

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if loc := rec.Header().Get("Location"); loc != tt.wantLocation {
				t.Errorf("Location = %q, want %q", loc, tt.wantLocation)
			}
		})
	}
}

func TestTrimSlash_Subtrees(t *testing.T) {
	handler := middleware.TrimSlash("/dist/", "/box/dist/")(okHandler(http.StatusOK))

	tests := []struct {
		target       string
		wantStatus   int
		wantLocation string
	}{
		{"/dist/", http.StatusOK, ""},
		{"/dist/css/", http.StatusOK, ""},
		{"/box/dist/", http.StatusOK, ""},
		{"/distant/", http.StatusMovedPermanently, "/distant"},
		{"/suggest/", http.StatusMovedPermanently, "/suggest"},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if loc := rec.Header().Get("Location"); loc != tt.wantLocation {
				t.Errorf("Location = %q, want %q", loc, tt.wantLocation)
			}
		})
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	var ctxID string
	handler := middleware.Logger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = middleware.RequestID(r.Context())
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte("created"))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/suggest", nil))

	if rec.Code != http.StatusCreated || rec.Body.String() != "created" {
		t.Errorf("response = %d %q, want 201 created", rec.Code, rec.Body.String())
	}

	id := rec.Header().Get(middleware.RequestIDHeader)
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("%s = %q is not a UUID", middleware.RequestIDHeader, id)
	}
	if ctxID != id {
		t.Errorf("RequestID(ctx) = %q, want %q", ctxID, id)
	}

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["status"] != float64(http.StatusCreated) {
		t.Errorf("logged status = %v, want 201", entry["status"])
	}
	if entry["path"] != "/suggest" || entry["request_id"] != id {
		t.Errorf("entry = %v", entry)
	}
}

func TestLogger_RequestIDPropagation(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	handler := middleware.Logger(logger)(okHandler(http.StatusOK))

	incoming := uuid.NewString()

	tests := []struct {
		name   string
		header string
		reuse  bool
	}{
		{"valid id reused", incoming, true},
		{"invalid id replaced", "not-a-uuid", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(middleware.RequestIDHeader, tt.header)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			got := rec.Header().Get(middleware.RequestIDHeader)
			if (got == tt.header) != tt.reuse {
				t.Errorf("%s = %q, reuse = %v", middleware.RequestIDHeader, got, tt.reuse)
			}
		})
	}
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := middleware.NewMetrics(reg, "test")

	handler := m.Middleware()(okHandler(http.StatusNotFound))
	for i := 0; i < 3; i++ {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))
	}

	m.CountView("home")
	m.CountView("home")

	count, err := testutil.GatherAndCount(reg, "test_http_requests_total")
	if err != nil {
		t.Fatalf("GatherAndCount() error = %v", err)
	}
	if count != 1 {
		t.Errorf("series = %d, want 1", count)
	}

	expected := `
# HELP test_views_rendered_total Total views rendered by route name.
# TYPE test_views_rendered_total counter
test_views_rendered_total{route="home"} 2
`
	if err := testutil.GatherAndCompare(reg, bytes.NewBufferString(expected), "test_views_rendered_total"); err != nil {
		t.Error(err)
	}

	requests := `
# HELP test_http_requests_total Total HTTP requests by method and status code.
# TYPE test_http_requests_total counter
test_http_requests_total{code="404",method="GET"} 3
`
	if err := testutil.GatherAndCompare(reg, bytes.NewBufferString(requests), "test_http_requests_total"); err != nil {
		t.Error(err)
	}
}
