package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/saludmaterna/maternidad_backend/internal/api/http/handler"
	"github.com/saludmaterna/maternidad_backend/pkg/authorize"
)

func (r *Router) registerDiagnosticoRoutes(api fiber.Router, h *handler.DiagnosticoHandler, authRequired fiber.Handler, perm permFunc) {
	diagnosticos := api.Group("/diagnosticos", authRequired)
	diagnosticos.Post("/", perm(authorize.ResourceDiagnostico, authorize.ActionCreate), h.Create)
	diagnosticos.Get("/", perm(authorize.ResourceDiagnostico, authorize.ActionList), h.Search)
	diagnosticos.Get("/:id", perm(authorize.ResourceDiagnostico, authorize.ActionRead), h.Get)
}
