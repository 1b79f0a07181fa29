// Package web provides infrastructure for serving server-rendered views.
// Views are parsed once at startup against a shared set of layouts and are
// served by a Navigator that resolves request paths through a routes.Table.
package web

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
)

// NavLink describes a single navigation target rendered by layouts.
type NavLink struct {
	Name   string
	Title  string
	URL    string
	Active bool
}

// ViewData contains the data passed to view templates during rendering.
// BasePath enables portable URL generation in templates via {{ .BasePath }}.
type ViewData struct {
	Title    string
	Name     string
	BasePath string
	Nav      []NavLink
	Data     any
}

// TemplateSet holds pre-parsed view templates and a base path for URL generation.
// Each view is parsed into its own clone of the layouts so that views can
// define the same block names without colliding.
type TemplateSet struct {
	views    map[string]*template.Template
	basePath string
}

// NewTemplateSet parses the layouts matched by layoutGlob and clones them for
// every view in views. Templates can call {{ url "/path" }} for base-path
// qualified URLs. A view that is missing or fails to parse is returned
// as an error, so misconfigured views surface at startup.
func NewTemplateSet(layoutFS, viewFS fs.FS, layoutGlob, viewSubdir, basePath string, views []string) (*TemplateSet, error) {
	funcs := template.FuncMap{
		"url": func(path string) string { return JoinPath(basePath, path) },
	}

	layouts, err := template.New("layouts").Funcs(funcs).ParseFS(layoutFS, layoutGlob)
	if err != nil {
		return nil, fmt.Errorf("parse layouts: %w", err)
	}

	viewSub, err := fs.Sub(viewFS, viewSubdir)
	if err != nil {
		return nil, fmt.Errorf("view dir %s: %w", viewSubdir, err)
	}

	parsed := make(map[string]*template.Template, len(views))
	for _, v := range views {
		if _, ok := parsed[v]; ok {
			continue
		}
		t, err := layouts.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layouts for %s: %w", v, err)
		}
		if _, err := t.ParseFS(viewSub, v); err != nil {
			return nil, fmt.Errorf("parse view %s: %w", v, err)
		}
		parsed[v] = t
	}

	return &TemplateSet{
		views:    parsed,
		basePath: basePath,
	}, nil
}

// JoinPath prefixes path with basePath. The root of a mounted base path is
// the base path itself, so "/" under "/app" is "/app".
func JoinPath(basePath, path string) string {
	base := strings.TrimSuffix(basePath, "/")
	if base != "" && path == "/" {
		return base
	}
	return base + path
}

// BasePath returns the prefix used for URL generation.
func (ts *TemplateSet) BasePath() string {
	return ts.basePath
}

// Has reports whether the view was parsed into the set.
func (ts *TemplateSet) Has(view string) bool {
	_, ok := ts.views[view]
	return ok
}

// Render executes the named layout for the view and writes the result with
// the given status. Output is buffered so a failed execution writes nothing.
func (ts *TemplateSet) Render(w http.ResponseWriter, status int, layout, view string, data ViewData) error {
	t, ok := ts.views[view]
	if !ok {
		return fmt.Errorf("%w: %s", ErrViewNotFound, view)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, layout, data); err != nil {
		return fmt.Errorf("execute %s: %w", view, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
