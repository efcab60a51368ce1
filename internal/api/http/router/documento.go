package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/saludmaterna/maternidad_backend/internal/api/http/handler"
	"github.com/saludmaterna/maternidad_backend/pkg/authorize"
)

func (r *Router) registerDocumentoRoutes(api fiber.Router, h *handler.DocumentoHandler, authRequired fiber.Handler, perm permFunc) {
	documentos := api.Group("/documentos", authRequired)
	documentos.Get("/:id", perm(authorize.ResourceDocumento, authorize.ActionRead), h.Get)
	documentos.Delete("/:id", perm(authorize.ResourceDocumento, authorize.ActionDelete), h.Delete)
}
