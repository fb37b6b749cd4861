package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/photogear/camera-catalog/models"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.welcome)

		r.Post("/users/register", h.register)
		r.Post("/users/token", h.token)

		r.Get("/brands", h.listBrands)
		r.Get("/brands/{id}", h.getBrand)
		r.Get("/cameras", h.listCameras)
		r.Get("/cameras/{id}", h.getCamera)
		r.Get("/lenses", h.listLenses)
		r.Get("/lenses/{id}", h.getLens)
	})

	// routes for any authenticated user
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/users/me", h.me)
	})

	// routes restricted to administrators
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Use(h.requireRole(models.RoleAdmin))

		r.Post("/brands", h.createBrand)
		r.Put("/brands/{id}", h.updateBrand)
		r.Delete("/brands/{id}", h.deleteBrand)

		r.Post("/cameras", h.createCamera)
		r.Put("/cameras/{id}", h.updateCamera)
		r.Delete("/cameras/{id}", h.deleteCamera)

		r.Post("/lenses", h.createLens)
		r.Put("/lenses/{id}", h.updateLens)
		r.Delete("/lenses/{id}", h.deleteLens)

		r.Get("/users", h.listUsers)
		r.Post("/users", h.createUser)
		r.Get("/users/{id}", h.getUser)
		r.Put("/users/{id}", h.updateUser)
		r.Delete("/users/{id}", h.deleteUser)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
