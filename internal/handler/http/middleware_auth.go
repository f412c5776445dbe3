package http

import (
	"net/http"

	"github.com/MKhiriev/go-campus-blog/internal/logger"
	"github.com/MKhiriev/go-campus-blog/internal/service"
	"github.com/MKhiriev/go-campus-blog/internal/utils"
	"github.com/MKhiriev/go-campus-blog/models"
	"github.com/go-chi/chi/v5"
)

// protect lets a request through only with a valid bearer session token
// of an existing user whose password did not change after the token was
// issued. The resolved user is stored in the request context.
func (h *Handler) protect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			h.writeError(w, r, service.ErrUnauthenticated)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.Authenticate(ctx, tokenString)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		ctx = logger.FromContext(ctx).WithUserID(user.ID).WithContext(ctx)
		next.ServeHTTP(w, r.WithContext(utils.WithUser(ctx, user)))
	})
}

// restrictToAdmin must run after protect.
func (h *Handler) restrictToAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := utils.UserFromContext(r.Context())
		if !ok {
			h.writeError(w, r, service.ErrUnauthenticated)
			return
		}

		if err := h.services.AccessService.RequireAdmin(r.Context(), user); err != nil {
			h.writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// restrictToOwner allows only the owner of the resource named by the "id"
// URL parameter. It must run after protect.
func (h *Handler) restrictToOwner(kind models.ResourceKind) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := utils.UserFromContext(r.Context())
			if !ok {
				h.writeError(w, r, service.ErrUnauthenticated)
				return
			}

			err := h.services.AccessService.AuthorizeOwner(r.Context(), kind, chi.URLParam(r, "id"), user)
			if err != nil {
				h.writeError(w, r, err)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
