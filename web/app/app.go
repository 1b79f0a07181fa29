// Package app provides the web application module: the route table for its
// views, embedded templates and assets, and the form endpoints.
package app

import (
	"embed"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/suggestion-box/internal/config"
	"github.com/JaimeStill/suggestion-box/internal/submissions"
	"github.com/JaimeStill/suggestion-box/pkg/middleware"
	"github.com/JaimeStill/suggestion-box/pkg/module"
	"github.com/JaimeStill/suggestion-box/pkg/routes"
	"github.com/JaimeStill/suggestion-box/pkg/web"
)

//go:embed dist/*
var distFS embed.FS

//go:embed public/*
var publicFS embed.FS

//go:embed server/layouts/*
var layoutFS embed.FS

//go:embed server/views/*
var viewFS embed.FS

const layout = "app.html"

const distPrefix = "/dist/"

const (
	notFoundView  = "404.html"
	notFoundTitle = "Not Found"
)

var publicFiles = []string{
	"robots.txt",
	"site.webmanifest",
}

var table = []routes.Entry{
	{Path: "/", Name: "home", View: "home.html", Title: "Home"},
	{Path: "/suggest", Name: "suggest", View: "suggest.html", Title: "Suggest"},
	{Path: "/report", Name: "report", View: "report.html", Title: "Report"},
}

// Subtrees returns the base-path qualified prefixes the module serves as
// directory subtrees, which must keep their trailing slash.
func Subtrees(basePath string) []string {
	return []string{web.JoinPath(basePath, distPrefix)}
}

// Routes builds the application route table.
func Routes() (*routes.Table, error) {
	return routes.New(table...)
}

// NewModule parses the views named by the route table, installs the table
// into a Navigator, and returns the module mounted at cfg.BasePath.
// Metrics may be nil.
func NewModule(
	cfg *config.AppConfig,
	subs submissions.System,
	metrics *middleware.Metrics,
	logger *slog.Logger,
) (*module.Module, error) {
	nav, err := newNavigator(cfg, subs, metrics, logger)
	if err != nil {
		return nil, err
	}

	m := module.New(cfg.BasePath, nav)
	m.Use(middleware.Logger(logger))
	return m, nil
}

func newNavigator(
	cfg *config.AppConfig,
	subs submissions.System,
	metrics *middleware.Metrics,
	logger *slog.Logger,
) (*web.Navigator, error) {
	rt, err := Routes()
	if err != nil {
		return nil, fmt.Errorf("build routes: %w", err)
	}

	views := append(rt.Views(), notFoundView)
	ts, err := web.NewTemplateSet(
		layoutFS,
		viewFS,
		"server/layouts/*.html",
		"server/views",
		cfg.BasePath,
		views,
	)
	if err != nil {
		return nil, fmt.Errorf("parse views: %w", err)
	}

	nav := web.NewNavigator(ts, layout)
	if err := nav.SetNotFound(notFoundView, notFoundTitle); err != nil {
		return nil, err
	}

	fh := newForms(nav, subs, cfg.MaxFormSizeBytes(), logger)
	for _, f := range fh.kinds {
		if err := nav.Bind(f.route, fh.viewData(f)); err != nil {
			return nil, err
		}
	}

	if metrics != nil {
		nav.OnView(func(e routes.Entry) {
			metrics.CountView(e.Name)
		})
	}

	if err := routes.Install(rt, nav); err != nil {
		return nil, err
	}

	r := nav.Router()
	for _, f := range fh.kinds {
		r.HandleFunc("POST "+f.path, fh.submit(f))
	}

	r.HandleFunc("GET "+distPrefix, web.DistServer(distFS, "dist", distPrefix))
	for _, route := range web.PublicFileRoutes(publicFS, "public", publicFiles...) {
		r.HandleFunc(route.Method+" "+route.Pattern, route.Handler)
	}

	return nav, nil
}
