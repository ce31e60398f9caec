package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/bookora/bookora_backend/internal/service/catalog"
	pasetotoken "github.com/bookora/bookora_backend/pkg/paseto"
)

type ServiceHandler struct {
	svc catalog.Service
}

func NewServiceHandler(svc catalog.Service) *ServiceHandler {
	return &ServiceHandler{svc: svc}
}

// POST /api/v1/services
func (h *ServiceHandler) Create(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		Name            string `json:"name"`
		DurationMinutes int    `json:"duration_minutes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	svc, err := h.svc.Create(c.Context(), claims.UserID, catalog.CreateRequest{
		Name:            body.Name,
		DurationMinutes: body.DurationMinutes,
	})
	if err != nil {
		return mapCatalogError(c, err)
	}

	return created(c, svc)
}

// GET /api/v1/services
func (h *ServiceHandler) List(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	list, err := h.svc.List(c.Context(), claims.UserID)
	if err != nil {
		return mapCatalogError(c, err)
	}

	return ok(c, list)
}

// GET /api/v1/services/:id
func (h *ServiceHandler) Get(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid service id")
	}

	svc, err := h.svc.GetByID(c.Context(), claims.UserID, id)
	if err != nil {
		return mapCatalogError(c, err)
	}

	return ok(c, svc)
}

// PATCH /api/v1/services/:id
func (h *ServiceHandler) Update(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid service id")
	}

	var body struct {
		Name            *string `json:"name"`
		DurationMinutes *int    `json:"duration_minutes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	svc, err := h.svc.Update(c.Context(), claims.UserID, id, catalog.UpdateRequest{
		Name:            body.Name,
		DurationMinutes: body.DurationMinutes,
	})
	if err != nil {
		return mapCatalogError(c, err)
	}

	return ok(c, svc)
}

// DELETE /api/v1/services/:id
func (h *ServiceHandler) Delete(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid service id")
	}

	if err := h.svc.Delete(c.Context(), claims.UserID, id); err != nil {
		return mapCatalogError(c, err)
	}

	return noContent(c)
}

func mapCatalogError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, catalog.ErrNameTaken):
		return conflict(c, err.Error())
	case errors.Is(err, catalog.ErrInvalidDuration),
		errors.Is(err, catalog.ErrMissingName):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}
