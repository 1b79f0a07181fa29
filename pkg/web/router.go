package web

import "net/http"

var methods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}

// Router wraps http.ServeMux with an optional fallback handler that is
// invoked for requests no registered pattern matches under any method.
// A path registered only for other methods still gets the mux's 405.
type Router struct {
	mux      *http.ServeMux
	fallback http.HandlerFunc
}

func NewRouter() *Router {
	return &Router{mux: http.NewServeMux()}
}

func (r *Router) Handle(pattern string, handler http.Handler) {
	r.mux.Handle(pattern, handler)
}

func (r *Router) HandleFunc(pattern string, handler http.HandlerFunc) {
	r.mux.HandleFunc(pattern, handler)
}

// SetFallback sets the handler used when no pattern matches.
func (r *Router) SetFallback(handler http.HandlerFunc) {
	r.fallback = handler
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if r.fallback != nil {
		if _, pattern := r.mux.Handler(req); pattern == "" && !r.matchesOtherMethod(req) {
			r.fallback(w, req)
			return
		}
	}
	r.mux.ServeHTTP(w, req)
}

func (r *Router) matchesOtherMethod(req *http.Request) bool {
	for _, method := range methods {
		if method == req.Method {
			continue
		}
		alt := *req
		alt.Method = method
		if _, pattern := r.mux.Handler(&alt); pattern != "" {
			return true
		}
	}
	return false
}
