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

	// routes without authorization
	router.Route("/public", func(r chi.Router) {
		r.Post("/cadastro", h.register)
		r.Post("/login", h.login)
		r.Get("/listar-usuarios-publico", h.listPublicUsers)
	})

	// routes behind the bearer-token gate
	router.Route("/private", func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/listar-usuarios", h.listUsers)
		r.Get("/usuario/{id}", h.getUserByID)
		r.Put("/usuario/{id}", h.updateUser)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
