package web_test

import (
	"embed"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/suggestion-box/pkg/web"
)

//go:embed testdata/layouts/*
var layoutFS embed.FS

//go:embed testdata/views/*
var viewFS embed.FS

const layoutGlob = "testdata/layouts/*.html"

func newTemplateSet(t *testing.T, basePath string, views ...string) *web.TemplateSet {
	t.Helper()
	ts, err := web.NewTemplateSet(layoutFS, viewFS, layoutGlob, "testdata/views", basePath, views)
	if err != nil {
		t.Fatalf("NewTemplateSet() error = %v", err)
	}
	return ts
}

func TestNewTemplateSet(t *testing.T) {
	ts := newTemplateSet(t, "/app", "home.html", "about.html", "home.html")

	for _, v := range []string{"home.html", "about.html"} {
		if !ts.Has(v) {
			t.Errorf("Has(%q) = false, want true", v)
		}
	}
	if ts.Has("404.html") {
		t.Error("Has(404.html) = true for a view that was not requested")
	}
	if ts.BasePath() != "/app" {
		t.Errorf("BasePath() = %q, want /app", ts.BasePath())
	}
}

func TestNewTemplateSet_Errors(t *testing.T) {
	tests := []struct {
		name       string
		layoutGlob string
		viewSubdir string
		views      []string
	}{
		{"invalid layout glob", "nonexistent/*.html", "testdata/views", []string{"home.html"}},
		{"invalid view subdir", layoutGlob, "nonexistent", []string{"home.html"}},
		{"missing view", layoutGlob, "testdata/views", []string{"nonexistent.html"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := web.NewTemplateSet(layoutFS, viewFS, tt.layoutGlob, tt.viewSubdir, "/app", tt.views)
			if err == nil {
				t.Error("NewTemplateSet() should return error")
			}
		})
	}
}

func TestTemplateSet_Render(t *testing.T) {
	ts := newTemplateSet(t, "/app", "home.html")

	w := httptest.NewRecorder()
	data := web.ViewData{Title: "Test", Name: "home", BasePath: "/app"}

	if err := ts.Render(w, http.StatusAccepted, "test.html", "home.html", data); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if w.Code != http.StatusAccepted {
		t.Errorf("status = %d, want %d", w.Code, http.StatusAccepted)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("Content-Type = %q, want text/html; charset=utf-8", ct)
	}

	body := w.Body.String()
	for _, want := range []string{"<!DOCTYPE html>", "<title>Test</title>", "Home Page", `data-basepath="/app"`, `data-view="home"`, `href="/app/static/app.css"`} {
		if !strings.Contains(body, want) {
			t.Errorf("response does not contain %q", want)
		}
	}
}

func TestJoinPath(t *testing.T) {
	tests := []struct {
		base, path, want string
	}{
		{"/", "/", "/"},
		{"/", "/suggest", "/suggest"},
		{"", "/report", "/report"},
		{"/app", "/", "/app"},
		{"/app", "/suggest", "/app/suggest"},
		{"/app/", "/dist/app.css", "/app/dist/app.css"},
	}

	for _, tt := range tests {
		if got := web.JoinPath(tt.base, tt.path); got != tt.want {
			t.Errorf("JoinPath(%q, %q) = %q, want %q", tt.base, tt.path, got, tt.want)
		}
	}
}

func TestTemplateSet_RenderNotFound(t *testing.T) {
	ts := newTemplateSet(t, "/app", "home.html")

	err := ts.Render(httptest.NewRecorder(), http.StatusOK, "test.html", "nonexistent.html", web.ViewData{})
	if !errors.Is(err, web.ErrViewNotFound) {
		t.Errorf("Render() error = %v, want %v", err, web.ErrViewNotFound)
	}
}

func TestTemplateSet_RenderExecuteErrorWritesNothing(t *testing.T) {
	ts := newTemplateSet(t, "/app", "broken.html")

	w := httptest.NewRecorder()
	if err := ts.Render(w, http.StatusOK, "test.html", "broken.html", web.ViewData{}); err == nil {
		t.Fatal("Render() should return error")
	}

	if w.Body.Len() != 0 {
		t.Errorf("body = %q, want empty", w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "" {
		t.Errorf("Content-Type = %q, want unset", ct)
	}
}
