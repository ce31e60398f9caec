package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/bookora/bookora_backend/internal/api/http/handler"
)

func (r *Router) registerAppointmentRoutes(api fiber.Router, h *handler.AppointmentHandler, authRequired fiber.Handler) {
	api.Get("/availability", authRequired, h.Availability)

	group := api.Group("/appointments", authRequired)
	group.Post("/", h.Create)
	group.Get("/", h.List)

	// Static segment must be registered before the :id routes.
	group.Get("/queue", h.Queue)

	group.Get("/:id", h.Get)
	group.Patch("/:id", h.Update)
	group.Delete("/:id", h.Delete)
	group.Post("/:id/complete", h.Complete)
	group.Post("/:id/cancel", h.Cancel)
	group.Post("/:id/no-show", h.NoShow)
}
