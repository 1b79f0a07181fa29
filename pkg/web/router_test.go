package web_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/suggestion-box/pkg/web"
)

func serve(h http.Handler, method, target string) (*http.Response, string) {
	req := httptest.NewRequest(method, target, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	resp := w.Result()
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp, string(body)
}

func TestRouter_Routes(t *testing.T) {
	r := web.NewRouter()
	r.HandleFunc("GET /one", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("one"))
	})
	r.Handle("POST /submit", http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte("submitted"))
	}))

	tests := []struct {
		method     string
		path       string
		wantStatus int
		wantBody   string
	}{
		{http.MethodGet, "/one", http.StatusOK, "one"},
		{http.MethodPost, "/submit", http.StatusCreated, "submitted"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			resp, body := serve(r, tt.method, tt.path)
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			if body != tt.wantBody {
				t.Errorf("body = %q, want %q", body, tt.wantBody)
			}
		})
	}
}

func TestRouter_WithoutFallback(t *testing.T) {
	r := web.NewRouter()
	r.HandleFunc("GET /exists", func(w http.ResponseWriter, req *http.Request) {})

	resp, _ := serve(r, http.MethodGet, "/nonexistent")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusNotFound)
	}
}

func TestRouter_Fallback(t *testing.T) {
	r := web.NewRouter()
	r.HandleFunc("GET /exists", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("exists"))
	})

	fallbackCalls := 0
	r.SetFallback(func(w http.ResponseWriter, req *http.Request) {
		fallbackCalls++
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("custom 404"))
	})

	resp, body := serve(r, http.MethodGet, "/nonexistent")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusNotFound)
	}
	if body != "custom 404" {
		t.Errorf("body = %q, want %q", body, "custom 404")
	}

	_, body = serve(r, http.MethodGet, "/exists")
	if body != "exists" {
		t.Errorf("body = %q, want %q", body, "exists")
	}

	if fallbackCalls != 1 {
		t.Errorf("fallback calls = %d, want 1", fallbackCalls)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	r := web.NewRouter()
	r.HandleFunc("GET /form", func(w http.ResponseWriter, req *http.Request) {})
	r.HandleFunc("POST /form", func(w http.ResponseWriter, req *http.Request) {})

	fallbackCalls := 0
	r.SetFallback(func(w http.ResponseWriter, req *http.Request) {
		fallbackCalls++
		w.WriteHeader(http.StatusNotFound)
	})

	tests := []struct {
		method     string
		path       string
		wantStatus int
		wantAllow  bool
	}{
		{http.MethodPut, "/form", http.StatusMethodNotAllowed, true},
		{http.MethodDelete, "/form", http.StatusMethodNotAllowed, true},
		{http.MethodPut, "/missing", http.StatusNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			resp, _ := serve(r, tt.method, tt.path)
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			if allow := resp.Header.Get("Allow"); (allow != "") != tt.wantAllow {
				t.Errorf("Allow = %q, want present %v", allow, tt.wantAllow)
			}
		})
	}

	if fallbackCalls != 1 {
		t.Errorf("fallback calls = %d, want 1", fallbackCalls)
	}
}
