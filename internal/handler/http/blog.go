package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-campus-blog/internal/app"
	"github.com/MKhiriev/go-campus-blog/internal/service"
	"github.com/MKhiriev/go-campus-blog/internal/utils"
	"github.com/MKhiriev/go-campus-blog/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) searchBlogs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, err := h.services.BlogService.Search(r.Context(), models.BlogQuery{
		Branch:   q.Get("branch"),
		Semester: q.Get("semester"),
		Subject:  q.Get("subject"),
		Search:   q.Get("search"),
		Sort:     q.Get("sort"),
		Page:     pageParam(r),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeData(w, page, http.StatusOK)
}

func (h *Handler) getLatestBlogs(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.services.BlogService.Latest(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeData(w, blogs, http.StatusOK)
}

func (h *Handler) getRandomBlogs(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.services.BlogService.Random(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeData(w, blogs, http.StatusOK)
}

func (h *Handler) getBlogBySlug(w http.ResponseWriter, r *http.Request) {
	blog, err := h.services.BlogService.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeData(w, blog, http.StatusOK)
}

func (h *Handler) createBlog(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.UserFromContext(r.Context())
	if !ok {
		h.writeError(w, r, service.ErrUnauthenticated)
		return
	}

	var input models.BlogInput
	if err := utils.ReadJSON(w, r, &input); err != nil {
		h.writeError(w, r, err)
		return
	}

	blog, err := h.services.BlogService.Create(r.Context(), user.ID, input)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeData(w, blog, http.StatusCreated)
}

func (h *Handler) updateBlog(w http.ResponseWriter, r *http.Request) {
	var update models.BlogUpdate
	if err := utils.ReadJSON(w, r, &update); err != nil {
		h.writeError(w, r, err)
		return
	}

	blog, err := h.services.BlogService.Update(r.Context(), chi.URLParam(r, "id"), update)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeData(w, blog, http.StatusOK)
}

func (h *Handler) deleteBlog(w http.ResponseWriter, r *http.Request) {
	if err := h.services.BlogService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getLikes(w http.ResponseWriter, r *http.Request) {
	likes, err := h.services.BlogService.Likes(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeData(w, models.Likes{Likes: likes, Count: len(likes)}, http.StatusOK)
}

func (h *Handler) toggleLike(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.UserFromContext(r.Context())
	if !ok {
		h.writeError(w, r, service.ErrUnauthenticated)
		return
	}

	likes, err := h.services.BlogService.ToggleLike(r.Context(), chi.URLParam(r, "id"), user.ID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeData(w, models.Likes{Likes: likes, Count: len(likes)}, http.StatusOK)
}

func (h *Handler) getUnreviewedBlogs(w http.ResponseWriter, r *http.Request) {
	admin, ok := utils.UserFromContext(r.Context())
	if !ok {
		h.writeError(w, r, service.ErrUnauthenticated)
		return
	}

	page, err := h.services.BlogService.Unreviewed(r.Context(), admin, pageParam(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeData(w, page, http.StatusOK)
}

func (h *Handler) reviewBlog(w http.ResponseWriter, r *http.Request) {
	if err := h.services.BlogService.Review(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, err)
		return
	}

	writeMessage(w, app.MsgBlogReviewed)
}

// pageParam reads ?page=, falling back to 1 for missing or invalid values.
func pageParam(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
