package routers

import (
	"konsulin-admin-console/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachSpecializationRoutes(router chi.Router, specializationController *controllers.SpecializationController) {
	router.Get("/", specializationController.List)
	router.Post("/{id}/toggle-active", specializationController.ToggleActive)
	router.Get("/{id}/delete", specializationController.ConfirmDelete)
	router.Post("/{id}/delete", specializationController.Delete)
}
