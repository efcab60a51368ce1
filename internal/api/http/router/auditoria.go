package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/saludmaterna/maternidad_backend/internal/api/http/handler"
	"github.com/saludmaterna/maternidad_backend/pkg/authorize"
)

func (r *Router) registerAuditoriaRoutes(api fiber.Router, h *handler.AuditoriaHandler, authRequired fiber.Handler, perm permFunc) {
	auditoria := api.Group("/auditoria", authRequired)
	auditoria.Get("/", perm(authorize.ResourceAuditoria, authorize.ActionList), h.List)
}
