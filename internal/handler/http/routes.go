package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
		r.Post("/api/user/recover", h.recover)
	})

	// routes requiring a valid bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api/credentials", func(r chi.Router) {
			r.Get("/", h.listCredentials)
			r.Post("/", h.createCredential)
			r.Get("/{credentialID}", h.getCredential)
			r.Put("/{credentialID}", h.updateCredential)
			r.Delete("/{credentialID}", h.deleteCredential)

			r.Post("/import", h.importCredentials)
			r.Get("/export", h.exportCredentials)
		})
	})

	return router
}
