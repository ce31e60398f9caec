package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/bookora/bookora_backend/internal/model"
	"github.com/bookora/bookora_backend/internal/service/booking"
	pasetotoken "github.com/bookora/bookora_backend/pkg/paseto"
)

const dayLayout = "2006-01-02"

type AppointmentHandler struct {
	svc booking.Service
}

func NewAppointmentHandler(svc booking.Service) *AppointmentHandler {
	return &AppointmentHandler{svc: svc}
}

// POST /api/v1/appointments
func (h *AppointmentHandler) Create(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		CustomerName string `json:"customer_name"`
		Service      string `json:"service"`
		Staff        string `json:"staff"`
		Day          string `json:"day"`
		StartTime    string `json:"start_time"`
		EndTime      string `json:"end_time"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := booking.AssignRequest{
		CustomerName: body.CustomerName,
		Service:      body.Service,
		Staff:        body.Staff,
		StartTime:    body.StartTime,
		EndTime:      body.EndTime,
	}
	if body.Day != "" {
		day, err := time.Parse(dayLayout, body.Day)
		if err != nil {
			return badRequest(c, "invalid day, expected YYYY-MM-DD")
		}
		req.Day = &day
	}

	out, err := h.svc.Assign(c.Context(), claims.UserID, req)
	if err != nil {
		return mapBookingError(c, err)
	}

	return created(c, out)
}

// GET /api/v1/appointments
func (h *AppointmentHandler) List(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var q struct {
		Day    string `query:"day"`
		Status string `query:"status"`
	}
	if err := c.Bind().Query(&q); err != nil {
		return badRequest(c, "invalid query parameters")
	}

	var f booking.ListFilter
	if q.Day != "" {
		day, err := time.Parse(dayLayout, q.Day)
		if err != nil {
			return badRequest(c, "invalid day, expected YYYY-MM-DD")
		}
		f.Day = &day
	}
	if q.Status != "" {
		st := model.AppointmentStatus(q.Status)
		if !st.Valid() {
			return badRequest(c, "invalid status")
		}
		f.Status = &st
	}

	list, err := h.svc.List(c.Context(), claims.UserID, f)
	if err != nil {
		return mapBookingError(c, err)
	}

	return ok(c, list)
}

// GET /api/v1/appointments/queue
func (h *AppointmentHandler) Queue(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	list, err := h.svc.WaitingQueue(c.Context(), claims.UserID)
	if err != nil {
		return mapBookingError(c, err)
	}

	return ok(c, list)
}

// GET /api/v1/appointments/:id
func (h *AppointmentHandler) Get(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	appt, err := h.svc.GetByID(c.Context(), claims.UserID, id)
	if err != nil {
		return mapBookingError(c, err)
	}

	return ok(c, appt)
}

// PATCH /api/v1/appointments/:id
func (h *AppointmentHandler) Update(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	var body struct {
		CustomerName *string `json:"customer_name"`
		Staff        *string `json:"staff"`
		StartTime    *string `json:"start_time"`
		EndTime      *string `json:"end_time"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	appt, err := h.svc.Update(c.Context(), claims.UserID, id, booking.UpdateRequest{
		CustomerName: body.CustomerName,
		Staff:        body.Staff,
		StartTime:    body.StartTime,
		EndTime:      body.EndTime,
	})
	if err != nil {
		return mapBookingError(c, err)
	}

	return ok(c, appt)
}

// DELETE /api/v1/appointments/:id
func (h *AppointmentHandler) Delete(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	if err := h.svc.Delete(c.Context(), claims.UserID, id); err != nil {
		return mapBookingError(c, err)
	}

	return noContent(c)
}

// POST /api/v1/appointments/:id/complete
func (h *AppointmentHandler) Complete(c fiber.Ctx) error {
	return h.transition(c, model.StatusCompleted)
}

// POST /api/v1/appointments/:id/cancel
func (h *AppointmentHandler) Cancel(c fiber.Ctx) error {
	return h.transition(c, model.StatusCancelled)
}

// POST /api/v1/appointments/:id/no-show
func (h *AppointmentHandler) NoShow(c fiber.Ctx) error {
	return h.transition(c, model.StatusNoShow)
}

func (h *AppointmentHandler) transition(c fiber.Ctx, to model.AppointmentStatus) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	appt, promo, err := h.svc.Transition(c.Context(), claims.UserID, id, to)
	if err != nil {
		return mapBookingError(c, err)
	}

	resp := fiber.Map{"appointment": appt}
	if promo != nil {
		resp["promoted"] = fiber.Map{
			"appointment": promo.Appointment,
			"staff_name":  promo.StaffName,
		}
	}
	return ok(c, resp)
}

// GET /api/v1/availability
func (h *AppointmentHandler) Availability(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var q struct {
		Staff string `query:"staff"`
		Day   string `query:"day"`
	}
	if err := c.Bind().Query(&q); err != nil {
		return badRequest(c, "invalid query parameters")
	}
	if q.Staff == "" {
		return badRequest(c, "staff is required")
	}

	day := time.Now()
	if q.Day != "" {
		d, err := time.Parse(dayLayout, q.Day)
		if err != nil {
			return badRequest(c, "invalid day, expected YYYY-MM-DD")
		}
		day = d
	}

	report, err := h.svc.Load(c.Context(), claims.UserID, q.Staff, day)
	if err != nil {
		return mapBookingError(c, err)
	}

	return ok(c, report)
}

// ---------------------------------------------------------------------------
// Error mapping
// ---------------------------------------------------------------------------

func mapBookingError(c fiber.Ctx, err error) error {
	var vErr *booking.ValidationError
	if errors.As(err, &vErr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":          vErr.Error(),
			"missing_fields": vErr.Fields,
		})
	}

	var cErr *booking.ConflictError
	if errors.As(err, &cErr) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error":                   cErr.Error(),
			"conflicting_appointment": cErr.Existing,
		})
	}

	switch {
	case errors.Is(err, booking.ErrInvalidTimeFormat),
		errors.Is(err, booking.ErrInvalidTimeRange),
		errors.Is(err, booking.ErrInvalidStatus):
		return badRequest(c, err.Error())
	case errors.Is(err, booking.ErrStaffNotFound),
		errors.Is(err, booking.ErrServiceNotFound),
		errors.Is(err, booking.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, booking.ErrAlreadyFinal),
		errors.Is(err, booking.ErrStaffUnavailable):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}
