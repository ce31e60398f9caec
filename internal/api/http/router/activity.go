package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/bookora/bookora_backend/internal/api/http/handler"
)

func (r *Router) registerActivityRoutes(api fiber.Router, h *handler.ActivityHandler, authRequired fiber.Handler) {
	api.Get("/activity", authRequired, h.List)
}
