package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/bookora/bookora_backend/internal/api/http/handler"
)

func (r *Router) registerAuthRoutes(api fiber.Router, h *handler.AuthHandler, authRequired fiber.Handler) {
	api.Post("/users/register", h.Register)

	group := api.Group("/auth")
	group.Post("/login", h.Login)
	group.Post("/refresh", h.Refresh)
	group.Post("/logout", authRequired, h.Logout)
	group.Get("/me", authRequired, h.Me)
}
