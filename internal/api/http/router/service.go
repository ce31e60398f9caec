package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/bookora/bookora_backend/internal/api/http/handler"
)

func (r *Router) registerServiceRoutes(api fiber.Router, h *handler.ServiceHandler, authRequired fiber.Handler) {
	group := api.Group("/services", authRequired)
	group.Post("/", h.Create)
	group.Get("/", h.List)
	group.Get("/:id", h.Get)
	group.Patch("/:id", h.Update)
	group.Delete("/:id", h.Delete)
}
