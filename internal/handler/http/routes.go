package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withCORS)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/signup", h.signUp)
		r.Post("/api/auth/signin", h.signIn)
		r.Post("/api/auth/google", h.googleAuth)
		r.Get("/api/auth/signout", h.signOut)
		r.Post("/api/auth/signout", h.signOut)
		r.Get("/api/version", h.getServerVersion)
	})

	// identity-scoped routes: a valid session cookie whose subject matches
	// the {id} path parameter
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.With(h.requireOwner).Post("/api/user/update/{id}", h.updateUser)
		r.With(h.requireOwner).Delete("/api/user/delete/{id}", h.deleteUser)
		r.With(h.requireOwner).Post("/api/user/avatar/{id}", h.uploadAvatar)
	})

	return router
}
