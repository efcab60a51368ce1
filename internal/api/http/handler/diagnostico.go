package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/saludmaterna/maternidad_backend/internal/service/diagnostico"
)

type DiagnosticoHandler struct {
	svc   diagnostico.Service
	views *Views
}

func NewDiagnosticoHandler(svc diagnostico.Service, views *Views) *DiagnosticoHandler {
	return &DiagnosticoHandler{svc: svc, views: views}
}

func mapDiagnosticoError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, diagnostico.ErrDiagnosticoNotFound),
		errors.Is(err, diagnostico.ErrPartoNotFound),
		errors.Is(err, diagnostico.ErrVinculoNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, diagnostico.ErrCodigoRegistrado),
		errors.Is(err, diagnostico.ErrYaVinculado):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /diagnosticos
func (h *DiagnosticoHandler) Create(c fiber.Ctx) error {
	var body struct {
		Codigo      string `json:"codigo"`
		Descripcion string `json:"descripcion"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "cuerpo de la solicitud inválido")
	}
	if body.Codigo == "" || body.Descripcion == "" {
		return badRequest(c, "codigo y descripcion son requeridos")
	}

	d, err := h.svc.Create(c.Context(), diagnostico.CreateRequest{
		Codigo:      body.Codigo,
		Descripcion: body.Descripcion,
	})
	if err != nil {
		return mapDiagnosticoError(c, err)
	}

	return created(c, h.views.Diagnostico(d))
}

// GET /diagnosticos/:id
func (h *DiagnosticoHandler) Get(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "id inválido")
	}

	d, err := h.svc.GetByID(c.Context(), id)
	if err != nil {
		return mapDiagnosticoError(c, err)
	}

	return ok(c, h.views.Diagnostico(d))
}

// GET /diagnosticos?q=O82&limit=20
func (h *DiagnosticoHandler) Search(c fiber.Ctx) error {
	var q struct {
		Query string `query:"q"`
		Limit int    `query:"limit"`
	}
	if err := c.Bind().Query(&q); err != nil {
		return badRequest(c, "parámetros de consulta inválidos")
	}

	results, err := h.svc.Search(c.Context(), diagnostico.SearchRequest{
		Query: q.Query,
		Limit: q.Limit,
	})
	if err != nil {
		return mapDiagnosticoError(c, err)
	}

	return ok(c, h.views.Diagnosticos(results))
}

// ---------------------------------------------------------------------------
// Links
// ---------------------------------------------------------------------------

// POST /partos/:id/diagnosticos/:diagnosticoId
func (h *DiagnosticoHandler) Link(c fiber.Ctx) error {
	partoID, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "id inválido")
	}
	diagnosticoID, err := parseIDParam(c, "diagnosticoId")
	if err != nil {
		return badRequest(c, "diagnosticoId inválido")
	}

	if _, err := h.svc.Link(c.Context(), partoID, diagnosticoID); err != nil {
		// Linking the same diagnosis twice is a no-op for the caller.
		if errors.Is(err, diagnostico.ErrYaVinculado) {
			return ok(c, fiber.Map{"message": "diagnóstico ya vinculado"})
		}
		return mapDiagnosticoError(c, err)
	}

	return created(c, fiber.Map{"message": "diagnóstico vinculado"})
}

// DELETE /partos/:id/diagnosticos/:diagnosticoId
func (h *DiagnosticoHandler) Unlink(c fiber.Ctx) error {
	partoID, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "id inválido")
	}
	diagnosticoID, err := parseIDParam(c, "diagnosticoId")
	if err != nil {
		return badRequest(c, "diagnosticoId inválido")
	}

	if err := h.svc.Unlink(c.Context(), partoID, diagnosticoID); err != nil {
		return mapDiagnosticoError(c, err)
	}

	return noContent(c)
}

// GET /partos/:id/diagnosticos
func (h *DiagnosticoHandler) ListByParto(c fiber.Ctx) error {
	partoID, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "id inválido")
	}

	diags, err := h.svc.ListByParto(c.Context(), partoID)
	if err != nil {
		return mapDiagnosticoError(c, err)
	}

	return ok(c, h.views.Diagnosticos(diags))
}
