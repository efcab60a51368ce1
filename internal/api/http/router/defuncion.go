package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/saludmaterna/maternidad_backend/internal/api/http/handler"
	"github.com/saludmaterna/maternidad_backend/pkg/authorize"
)

func (r *Router) registerDefuncionRoutes(api fiber.Router, h *handler.DefuncionHandler, authRequired fiber.Handler, perm permFunc) {
	defunciones := api.Group("/defunciones", authRequired)
	defunciones.Post("/", perm(authorize.ResourceDefuncion, authorize.ActionCreate), h.Create)
	defunciones.Get("/", perm(authorize.ResourceDefuncion, authorize.ActionList), h.List)
	defunciones.Get("/:id", perm(authorize.ResourceDefuncion, authorize.ActionRead), h.Get)
	defunciones.Delete("/:id", perm(authorize.ResourceDefuncion, authorize.ActionDelete), h.Delete)
}
