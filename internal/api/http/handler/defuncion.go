package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/saludmaterna/maternidad_backend/internal/service/defuncion"
)

type DefuncionHandler struct {
	svc   defuncion.Service
	views *Views
}

func NewDefuncionHandler(svc defuncion.Service, views *Views) *DefuncionHandler {
	return &DefuncionHandler{svc: svc, views: views}
}

func mapDefuncionError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, defuncion.ErrDefuncionNotFound),
		errors.Is(err, defuncion.ErrMadreNotFound),
		errors.Is(err, defuncion.ErrRecienNacidoNotFound),
		errors.Is(err, defuncion.ErrCausaNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, defuncion.ErrSujetoInvalido):
		return badRequest(c, err.Error())
	case errors.Is(err, defuncion.ErrDefuncionRegistrada):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /defunciones
func (h *DefuncionHandler) Create(c fiber.Ctx) error {
	var body struct {
		MadreID          *uuid.UUID `json:"madre_id"`
		RecienNacidoID   *uuid.UUID `json:"recien_nacido_id"`
		FechaDefuncion   time.Time  `json:"fecha_defuncion"`
		CausaDefuncionID uuid.UUID  `json:"causa_defuncion_id"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "cuerpo de la solicitud inválido")
	}
	if body.FechaDefuncion.IsZero() {
		return badRequest(c, "fecha_defuncion es requerida")
	}

	var sujeto defuncion.Sujeto
	switch {
	case body.MadreID != nil && body.RecienNacidoID == nil:
		sujeto = defuncion.SujetoMadre(*body.MadreID)
	case body.RecienNacidoID != nil && body.MadreID == nil:
		sujeto = defuncion.SujetoRecienNacido(*body.RecienNacidoID)
	default:
		return badRequest(c, defuncion.ErrSujetoInvalido.Error())
	}

	d, err := h.svc.Create(c.Context(), defuncion.CreateRequest{
		Sujeto:           sujeto,
		FechaDefuncion:   body.FechaDefuncion,
		CausaDefuncionID: body.CausaDefuncionID,
	})
	if err != nil {
		return mapDefuncionError(c, err)
	}

	return created(c, h.views.Defuncion(d))
}

// GET /defunciones/:id
func (h *DefuncionHandler) Get(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "id inválido")
	}

	d, err := h.svc.GetByID(c.Context(), id)
	if err != nil {
		return mapDefuncionError(c, err)
	}

	return ok(c, h.views.Defuncion(d))
}

// GET /defunciones
func (h *DefuncionHandler) List(c fiber.Ctx) error {
	var q struct {
		Page    int `query:"page"`
		PerPage int `query:"per_page"`
	}
	if err := c.Bind().Query(&q); err != nil {
		return badRequest(c, "parámetros de consulta inválidos")
	}

	result, err := h.svc.List(c.Context(), defuncion.ListRequest{Page: q.Page, PerPage: q.PerPage})
	if err != nil {
		return mapDefuncionError(c, err)
	}

	return paginated(c, h.views.Defunciones(result.Data), result.Total, result.Page, result.PerPage, result.TotalPages)
}

// DELETE /defunciones/:id
func (h *DefuncionHandler) Delete(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "id inválido")
	}

	if err := h.svc.Delete(c.Context(), id); err != nil {
		return mapDefuncionError(c, err)
	}

	return noContent(c)
}
