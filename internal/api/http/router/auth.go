package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/saludmaterna/maternidad_backend/internal/api/http/handler"
)

func (r *Router) registerAuthRoutes(api fiber.Router, h *handler.AuthHandler, authRequired fiber.Handler) {
	group := api.Group("/auth")
	group.Post("/login", h.Login)
	group.Post("/refresh", h.Refresh)
	group.Post("/logout", authRequired, h.Logout)
	group.Post("/change-password", authRequired, h.ChangePassword)
}
