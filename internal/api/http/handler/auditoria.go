package handler

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/saludmaterna/maternidad_backend/internal/service/auditoria"
)

type AuditoriaHandler struct {
	svc   auditoria.Service
	views *Views
}

func NewAuditoriaHandler(svc auditoria.Service, views *Views) *AuditoriaHandler {
	return &AuditoriaHandler{svc: svc, views: views}
}

// GET /auditoria
func (h *AuditoriaHandler) List(c fiber.Ctx) error {
	var q struct {
		Page          int    `query:"page"`
		PerPage       int    `query:"per_page"`
		UsuarioID     string `query:"usuario_id"`
		TablaAfectada string `query:"tabla_afectada"`
		Desde         string `query:"desde"`
		Hasta         string `query:"hasta"`
	}
	if err := c.Bind().Query(&q); err != nil {
		return badRequest(c, "parámetros de consulta inválidos")
	}

	req := auditoria.ListRequest{Page: q.Page, PerPage: q.PerPage}

	if q.UsuarioID != "" {
		id, err := uuid.Parse(q.UsuarioID)
		if err != nil {
			return badRequest(c, "usuario_id inválido")
		}
		req.UsuarioID = &id
	}
	if q.TablaAfectada != "" {
		req.TablaAfectada = &q.TablaAfectada
	}
	if q.Desde != "" {
		t, err := time.Parse(time.RFC3339, q.Desde)
		if err != nil {
			return badRequest(c, "desde debe ser una fecha RFC3339")
		}
		req.Desde = &t
	}
	if q.Hasta != "" {
		t, err := time.Parse(time.RFC3339, q.Hasta)
		if err != nil {
			return badRequest(c, "hasta debe ser una fecha RFC3339")
		}
		req.Hasta = &t
	}

	result, err := h.svc.List(c.Context(), req)
	if err != nil {
		return internalError(c)
	}

	return paginated(c, h.views.Auditorias(result.Data), result.Total, result.Page, result.PerPage, result.TotalPages)
}
