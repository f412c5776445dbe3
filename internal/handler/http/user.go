package http

import (
	"net/http"

	"github.com/MKhiriev/go-campus-blog/internal/service"
	"github.com/MKhiriev/go-campus-blog/internal/utils"
	"github.com/MKhiriev/go-campus-blog/models"
)

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.UserFromContext(r.Context())
	if !ok {
		h.writeError(w, r, service.ErrUnauthenticated)
		return
	}

	profile, err := h.services.UserService.Profile(r.Context(), user.ID, pageParam(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeData(w, profile, http.StatusOK)
}

// getEditProfile returns the editable view of the current user, already
// loaded by protect.
func (h *Handler) getEditProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.UserFromContext(r.Context())
	if !ok {
		h.writeError(w, r, service.ErrUnauthenticated)
		return
	}

	writeData(w, user.Public(), http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.UserFromContext(r.Context())
	if !ok {
		h.writeError(w, r, service.ErrUnauthenticated)
		return
	}

	var update models.ProfileUpdate
	if err := utils.ReadJSON(w, r, &update); err != nil {
		h.writeError(w, r, err)
		return
	}

	updated, err := h.services.UserService.UpdateProfile(r.Context(), user.ID, update)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeData(w, updated.Public(), http.StatusOK)
}

func (h *Handler) deleteMe(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.UserFromContext(r.Context())
	if !ok {
		h.writeError(w, r, service.ErrUnauthenticated)
		return
	}

	if err := h.services.UserService.Deactivate(r.Context(), user.ID); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
