package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/saludmaterna/maternidad_backend/internal/api/http/handler"
	"github.com/saludmaterna/maternidad_backend/pkg/authorize"
)

type permFunc func(authorize.Resource, authorize.Action) fiber.Handler

func (r *Router) registerUsuarioRoutes(api fiber.Router, h *handler.UsuarioHandler, authRequired fiber.Handler, perm permFunc) {
	roles := api.Group("/roles", authRequired)
	roles.Post("/", perm(authorize.ResourceRol, authorize.ActionCreate), h.CreateRol)
	roles.Get("/", perm(authorize.ResourceRol, authorize.ActionList), h.ListRoles)

	usuarios := api.Group("/usuarios", authRequired)
	usuarios.Post("/", perm(authorize.ResourceUsuario, authorize.ActionCreate), h.Create)
	usuarios.Get("/", perm(authorize.ResourceUsuario, authorize.ActionList), h.List)
	usuarios.Get("/:id", perm(authorize.ResourceUsuario, authorize.ActionRead), h.Get)
	usuarios.Patch("/:id", perm(authorize.ResourceUsuario, authorize.ActionUpdate), h.Update)
	usuarios.Delete("/:id", perm(authorize.ResourceUsuario, authorize.ActionDelete), h.Deactivate)
}
