// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns the handler registered as the router's
// MethodNotAllowed handler via [chi.Mux.MethodNotAllowed].
//
// Chi answers 405 whenever a path matches a route but the method is not
// handled. Here such requests get the same 404 envelope as unknown paths,
// which hides the existence of the route from callers using another method.
//
// Routes are compared by their full pattern with [chi.Walk]; parameterised
// segments are not expanded. If the method turns out to be registered for
// the exact pattern, the request goes back through the router.
func (h *Handler) CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var methods []string
		_ = chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
			if route == r.URL.Path {
				methods = append(methods, method)
			}
			return nil
		})

		if !slices.Contains(methods, r.Method) {
			h.writeError(w, r, ErrRouteNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
