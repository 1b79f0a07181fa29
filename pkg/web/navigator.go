package web

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/JaimeStill/suggestion-box/pkg/routes"
)

// DataFunc supplies view-specific data for a request.
type DataFunc func(r *http.Request) any

// Navigator is the routes.Controller for server-rendered views. It accepts a
// single routes.Table, serves each entry's view on GET, and resolves route
// names to URLs.
//
// Configuration (Bind, OnView, SetNotFound) happens before Register.
// After Register the Navigator is read-only and safe for concurrent use.
type Navigator struct {
	views    *TemplateSet
	layout   string
	router   *Router
	table    *routes.Table
	binds    map[string]DataFunc
	onView   func(routes.Entry)
	notFound string
	nfTitle  string
}

// NewNavigator creates a Navigator rendering views inside the named layout.
func NewNavigator(views *TemplateSet, layout string) *Navigator {
	return &Navigator{
		views:  views,
		layout: layout,
		router: NewRouter(),
		binds:  make(map[string]DataFunc),
	}
}

// Bind attaches a data provider to the named route.
func (n *Navigator) Bind(name string, fn DataFunc) error {
	if n.table != nil {
		return routes.ErrFinalized
	}
	n.binds[name] = fn
	return nil
}

// OnView registers a hook invoked each time a route's view is served.
func (n *Navigator) OnView(fn func(routes.Entry)) {
	n.onView = fn
}

// SetNotFound renders view with a 404 status for paths that match no route.
func (n *Navigator) SetNotFound(view, title string) error {
	if !n.views.Has(view) {
		return fmt.Errorf("%w: %s", ErrViewNotFound, view)
	}
	n.notFound = view
	n.nfTitle = title
	n.router.SetFallback(n.serveNotFound)
	return nil
}

// Register installs the table. Every entry's view must exist in the
// TemplateSet and every bound name must exist in the table.
func (n *Navigator) Register(table *routes.Table) error {
	if n == nil {
		return routes.ErrNoController
	}
	if n.table != nil {
		return routes.ErrFinalized
	}
	if table == nil {
		return routes.ErrNoTable
	}

	for _, e := range table.Entries() {
		if !n.views.Has(e.View) {
			return fmt.Errorf("route %s: %w: %s", e.Name, ErrViewNotFound, e.View)
		}
	}
	for name := range n.binds {
		if _, ok := table.Named(name); !ok {
			return fmt.Errorf("bind: %w: %s", ErrUnknownRoute, name)
		}
	}

	for _, e := range table.Entries() {
		n.router.HandleFunc(pattern(e.Path), n.viewHandler(e))
	}

	n.table = table
	return nil
}

// Table returns the installed table, or nil before Register.
func (n *Navigator) Table() *routes.Table {
	return n.table
}

// Resolve returns the entry registered for path.
func (n *Navigator) Resolve(path string) (routes.Entry, bool) {
	if n.table == nil {
		return routes.Entry{}, false
	}
	return n.table.Lookup(path)
}

// URL returns the base-path qualified URL of the named route.
func (n *Navigator) URL(name string) (string, error) {
	if n.table == nil {
		return "", fmt.Errorf("%w: %s", ErrUnknownRoute, name)
	}
	e, ok := n.table.Named(name)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownRoute, name)
	}
	return n.join(e.Path), nil
}

// Render renders the named route's view with the given status and data.
func (n *Navigator) Render(w http.ResponseWriter, status int, name string, data any) error {
	if n.table == nil {
		return fmt.Errorf("%w: %s", ErrUnknownRoute, name)
	}
	e, ok := n.table.Named(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownRoute, name)
	}
	return n.views.Render(w, status, n.layout, e.View, n.viewData(e, data))
}

// Router exposes the underlying router for routes that are not views.
func (n *Navigator) Router() *Router {
	return n.router
}

func (n *Navigator) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	n.router.ServeHTTP(w, r)
}

func (n *Navigator) viewHandler(e routes.Entry) http.HandlerFunc {
	bind := n.binds[e.Name]
	return func(w http.ResponseWriter, r *http.Request) {
		var data any
		if bind != nil {
			data = bind(r)
		}
		if n.onView != nil {
			n.onView(e)
		}
		if err := n.views.Render(w, http.StatusOK, n.layout, e.View, n.viewData(e, data)); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

func (n *Navigator) serveNotFound(w http.ResponseWriter, r *http.Request) {
	data := ViewData{
		Title:    n.nfTitle,
		BasePath: n.views.BasePath(),
		Nav:      n.nav(""),
	}
	if err := n.views.Render(w, http.StatusNotFound, n.layout, n.notFound, data); err != nil {
		http.NotFound(w, r)
	}
}

func (n *Navigator) viewData(e routes.Entry, data any) ViewData {
	return ViewData{
		Title:    e.Label(),
		Name:     e.Name,
		BasePath: n.views.BasePath(),
		Nav:      n.nav(e.Name),
		Data:     data,
	}
}

func (n *Navigator) nav(active string) []NavLink {
	if n.table == nil {
		return nil
	}
	entries := n.table.Entries()
	links := make([]NavLink, 0, len(entries))
	for _, e := range entries {
		links = append(links, NavLink{
			Name:   e.Name,
			Title:  e.Label(),
			URL:    n.join(e.Path),
			Active: e.Name == active,
		})
	}
	return links
}

func (n *Navigator) join(path string) string {
	return JoinPath(n.views.BasePath(), path)
}

// pattern converts a literal route path into a GET ServeMux pattern.
// Paths ending in a slash match only themselves, not their subtree.
func pattern(path string) string {
	if strings.HasSuffix(path, "/") {
		return "GET " + path + "{$}"
	}
	return "GET " + path
}
