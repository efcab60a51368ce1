package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/saludmaterna/maternidad_backend/internal/api/http/handler"
	"github.com/saludmaterna/maternidad_backend/pkg/authorize"
)

func (r *Router) registerPartoRoutes(api fiber.Router, h *handler.PartoHandler, diagH *handler.DiagnosticoHandler, docH *handler.DocumentoHandler, authRequired fiber.Handler, perm permFunc) {
	partos := api.Group("/partos", authRequired)
	partos.Get("/", perm(authorize.ResourceParto, authorize.ActionList), h.List)
	partos.Get("/:id", perm(authorize.ResourceParto, authorize.ActionRead), h.Get)
	partos.Patch("/:id", perm(authorize.ResourceParto, authorize.ActionUpdate), h.Update)

	partos.Post("/:id/recien-nacidos", perm(authorize.ResourceRecienNacido, authorize.ActionCreate), h.CreateRecienNacido)
	partos.Get("/:id/recien-nacidos", perm(authorize.ResourceRecienNacido, authorize.ActionList), h.ListRecienNacidos)

	partos.Post("/:id/diagnosticos/:diagnosticoId", perm(authorize.ResourceDiagnostico, authorize.ActionCreate), diagH.Link)
	partos.Delete("/:id/diagnosticos/:diagnosticoId", perm(authorize.ResourceDiagnostico, authorize.ActionDelete), diagH.Unlink)
	partos.Get("/:id/diagnosticos", perm(authorize.ResourceDiagnostico, authorize.ActionList), diagH.ListByParto)

	partos.Post("/:id/documentos", perm(authorize.ResourceDocumento, authorize.ActionCreate), docH.Create)
	partos.Get("/:id/documentos", perm(authorize.ResourceDocumento, authorize.ActionList), docH.ListByParto)

	recienNacidos := api.Group("/recien-nacidos", authRequired)
	recienNacidos.Get("/:id", perm(authorize.ResourceRecienNacido, authorize.ActionRead), h.GetRecienNacido)
}
