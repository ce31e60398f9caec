package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/bookora/bookora_backend/internal/service/staff"
	pasetotoken "github.com/bookora/bookora_backend/pkg/paseto"
)

type StaffHandler struct {
	svc staff.Service
}

func NewStaffHandler(svc staff.Service) *StaffHandler {
	return &StaffHandler{svc: svc}
}

// POST /api/v1/staff
func (h *StaffHandler) Create(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		Name          string `json:"name"`
		ServiceType   string `json:"service_type"`
		DailyCapacity int    `json:"daily_capacity"`
		Status        string `json:"status"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	st, err := h.svc.Create(c.Context(), claims.UserID, staff.CreateRequest{
		Name:          body.Name,
		ServiceType:   body.ServiceType,
		DailyCapacity: body.DailyCapacity,
		Status:        body.Status,
	})
	if err != nil {
		return mapStaffError(c, err)
	}

	return created(c, st)
}

// GET /api/v1/staff
func (h *StaffHandler) List(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	list, err := h.svc.List(c.Context(), claims.UserID)
	if err != nil {
		return mapStaffError(c, err)
	}

	return ok(c, list)
}

// GET /api/v1/staff/:id
func (h *StaffHandler) Get(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid staff id")
	}

	st, err := h.svc.GetByID(c.Context(), claims.UserID, id)
	if err != nil {
		return mapStaffError(c, err)
	}

	return ok(c, st)
}

// PATCH /api/v1/staff/:id
func (h *StaffHandler) Update(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid staff id")
	}

	var body struct {
		Name          *string `json:"name"`
		ServiceType   *string `json:"service_type"`
		DailyCapacity *int    `json:"daily_capacity"`
		Status        *string `json:"status"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	st, err := h.svc.Update(c.Context(), claims.UserID, id, staff.UpdateRequest{
		Name:          body.Name,
		ServiceType:   body.ServiceType,
		DailyCapacity: body.DailyCapacity,
		Status:        body.Status,
	})
	if err != nil {
		return mapStaffError(c, err)
	}

	return ok(c, st)
}

// DELETE /api/v1/staff/:id
func (h *StaffHandler) Delete(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid staff id")
	}

	if err := h.svc.Delete(c.Context(), claims.UserID, id); err != nil {
		return mapStaffError(c, err)
	}

	return noContent(c)
}

func mapStaffError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, staff.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, staff.ErrNameTaken):
		return conflict(c, err.Error())
	case errors.Is(err, staff.ErrInvalidCapacity),
		errors.Is(err, staff.ErrInvalidStatus),
		errors.Is(err, staff.ErrMissingFields):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}
