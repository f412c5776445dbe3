package http

import (
	"net/http"

	"github.com/MKhiriev/go-campus-blog/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5, "application/json", "text/plain"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/api/version", h.getServerVersion)
	router.Get("/api/version/build", h.getBuildInfo)

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(h.withRateLimit)

		r.Route("/users", func(r chi.Router) {
			r.Post("/signup", h.signup)
			r.Post("/resendSignupToken", h.resendSignupToken)
			r.Post("/confirmSignup/{token}", h.confirmSignup)
			r.Post("/login", h.login)
			r.Post("/forgotPassword", h.forgotPassword)
			r.Patch("/resetPassword/{token}", h.resetPassword)

			// routes with authorization
			r.Group(func(r chi.Router) {
				r.Use(h.protect)
				r.Get("/profile", h.getProfile)
				r.Get("/editProfile", h.getEditProfile)
				r.Patch("/editProfile", h.updateProfile)
				r.Delete("/deleteMe", h.deleteMe)
			})
		})

		r.Route("/blogs", func(r chi.Router) {
			r.Get("/", h.searchBlogs)
			r.Get("/latest", h.getLatestBlogs)
			r.Get("/random", h.getRandomBlogs)
			r.Get("/slug/{slug}", h.getBlogBySlug)
			r.Get("/like/{id}", h.getLikes)

			r.Group(func(r chi.Router) {
				r.Use(h.protect)
				r.Post("/", h.createBlog)
				r.Patch("/like/{id}", h.toggleLike)
				r.With(h.restrictToOwner(models.KindBlog)).Patch("/{id}", h.updateBlog)
				r.With(h.restrictToOwner(models.KindBlog)).Delete("/{id}", h.deleteBlog)

				r.Group(func(r chi.Router) {
					r.Use(h.restrictToAdmin)
					r.Get("/admin", h.getUnreviewedBlogs)
					r.Patch("/admin/{id}", h.reviewBlog)
				})
			})
		})
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		h.writeError(w, r, ErrRouteNotFound)
	})
	router.MethodNotAllowed(h.CheckHTTPMethod(router))

	return router
}
