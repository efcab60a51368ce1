package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/saludmaterna/maternidad_backend/internal/api/http/handler"
	"github.com/saludmaterna/maternidad_backend/pkg/authorize"
)

func (r *Router) registerMadreRoutes(api fiber.Router, h *handler.MadreHandler, partoH *handler.PartoHandler, authRequired fiber.Handler, perm permFunc) {
	madres := api.Group("/madres", authRequired)
	madres.Post("/", perm(authorize.ResourceMadre, authorize.ActionCreate), h.Create)
	madres.Get("/", perm(authorize.ResourceMadre, authorize.ActionList), h.List)
	madres.Get("/buscar", perm(authorize.ResourceMadre, authorize.ActionRead), h.BuscarPorRut)
	madres.Get("/:id", perm(authorize.ResourceMadre, authorize.ActionRead), h.Get)
	madres.Patch("/:id", perm(authorize.ResourceMadre, authorize.ActionUpdate), h.Update)
	madres.Delete("/:id", perm(authorize.ResourceMadre, authorize.ActionDelete), h.Delete)

	madres.Post("/:id/partos", perm(authorize.ResourceParto, authorize.ActionCreate), partoH.Create)
	madres.Get("/:id/partos", perm(authorize.ResourceParto, authorize.ActionList), partoH.ListByMadre)
}
