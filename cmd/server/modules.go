package main

import (
	"net/http"

	"github.com/JaimeStill/suggestion-box/internal/config"
	"github.com/JaimeStill/suggestion-box/internal/infrastructure"
	"github.com/JaimeStill/suggestion-box/internal/submissions"
	"github.com/JaimeStill/suggestion-box/pkg/middleware"
	"github.com/JaimeStill/suggestion-box/pkg/module"
	"github.com/JaimeStill/suggestion-box/web/app"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Modules struct {
	App *module.Module
}

func NewModules(infra *infrastructure.Infrastructure, cfg *config.Config) (*Modules, error) {
	subs := submissions.New(infra.Database.Connection(), infra.Logger)

	appModule, err := app.NewModule(&cfg.App, subs, infra.Metrics, infra.Logger)
	if err != nil {
		return nil, err
	}

	return &Modules{App: appModule}, nil
}

func (m *Modules) Mount(router *module.Router) {
	router.Mount(m.App)
}

func buildRouter(infra *infrastructure.Infrastructure, metrics *config.MetricsConfig) *module.Router {
	router := module.NewRouter()

	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	router.HandleNative("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if !infra.Lifecycle.Ready() {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("NOT READY"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("READY"))
	})

	if metrics.Enabled {
		handler := promhttp.HandlerFor(infra.Registry, promhttp.HandlerOpts{Registry: infra.Registry})
		router.HandleNative("GET "+metrics.Path, handler.ServeHTTP)
	}

	return router
}

// wrap applies the middleware that must see the full request path.
func wrap(h http.Handler, infra *infrastructure.Infrastructure, cfg *config.AppConfig) http.Handler {
	h = infra.Metrics.Middleware()(h)
	return middleware.TrimSlash(app.Subtrees(cfg.BasePath)...)(h)
}
