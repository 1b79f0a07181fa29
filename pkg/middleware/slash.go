// Package middleware provides composable http.Handler middleware.
package middleware

import (
	"net/http"
	"path"
	"strings"
)

// TrimSlash redirects requests with a trailing slash to the canonical path
// without it. The root path is left alone, as is anything under one of the
// subtree prefixes (each ending in "/"), which a ServeMux subtree pattern
// would otherwise redirect straight back.
func TrimSlash(subtrees ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(r.URL.Path) <= 1 || !strings.HasSuffix(r.URL.Path, "/") || underSubtree(r.URL.Path, subtrees) {
				next.ServeHTTP(w, r)
				return
			}

			target := canonical(r.URL.Path)
			if r.URL.RawQuery != "" {
				target += "?" + r.URL.RawQuery
			}

			status := http.StatusMovedPermanently
			if r.Method != http.MethodGet && r.Method != http.MethodHead {
				status = http.StatusPermanentRedirect
			}
			http.Redirect(w, r, target, status)
		})
	}
}

// canonical strips trailing slashes and collapses any leading run of
// slashes or backslashes to a single slash, so the result is always a
// same-origin path.
func canonical(p string) string {
	p = strings.TrimRight(p, "/")
	p = strings.TrimLeft(p, `/\`)
	return path.Clean("/" + p)
}

func underSubtree(p string, subtrees []string) bool {
	for _, prefix := range subtrees {
		if strings.HasPrefix(p, prefix) {
			return true
		}
	}
	return false
}
