package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/bookora/bookora_backend/internal/service/activity"
	pasetotoken "github.com/bookora/bookora_backend/pkg/paseto"
)

type ActivityHandler struct {
	svc activity.Service
}

func NewActivityHandler(svc activity.Service) *ActivityHandler {
	return &ActivityHandler{svc: svc}
}

// GET /api/v1/activity
func (h *ActivityHandler) List(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var q struct {
		Limit int `query:"limit"`
	}
	if err := c.Bind().Query(&q); err != nil {
		return badRequest(c, "invalid query parameters")
	}

	list, err := h.svc.List(c.Context(), claims.UserID, q.Limit)
	if err != nil {
		return internalError(c)
	}

	return ok(c, list)
}
