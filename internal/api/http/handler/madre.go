package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/saludmaterna/maternidad_backend/internal/service/madre"
)

type MadreHandler struct {
	svc   madre.Service
	views *Views
}

func NewMadreHandler(svc madre.Service, views *Views) *MadreHandler {
	return &MadreHandler{svc: svc, views: views}
}

func mapMadreError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, madre.ErrMadreNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, madre.ErrFichaRegistrada), errors.Is(err, madre.ErrRutRegistrado):
		return conflict(c, err.Error())
	case errors.Is(err, madre.ErrRutInvalido), errors.Is(err, madre.ErrTelefonoInvalido):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /madres
func (h *MadreHandler) Create(c fiber.Ctx) error {
	var body struct {
		FichaClinicaID            string  `json:"ficha_clinica_id"`
		Rut                       string  `json:"rut"`
		Nombre                    string  `json:"nombre"`
		Telefono                  *string `json:"telefono"`
		FechaNacimiento           string  `json:"fecha_nacimiento"`
		Nacionalidad              *string `json:"nacionalidad"`
		PertenecePuebloOriginario bool    `json:"pertenece_pueblo_originario"`
		Prevision                 *string `json:"prevision"`
		AntecedentesMedicos       *string `json:"antecedentes_medicos"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "cuerpo de la solicitud inválido")
	}
	if body.FichaClinicaID == "" || body.Rut == "" || body.Nombre == "" {
		return badRequest(c, "ficha_clinica_id, rut y nombre son requeridos")
	}

	fechaNacimiento, err := time.Parse("2006-01-02", body.FechaNacimiento)
	if err != nil {
		return badRequest(c, "fecha_nacimiento debe tener formato YYYY-MM-DD")
	}

	m, err := h.svc.Create(c.Context(), madre.CreateRequest{
		FichaClinicaID:            body.FichaClinicaID,
		Rut:                       body.Rut,
		Nombre:                    body.Nombre,
		Telefono:                  body.Telefono,
		FechaNacimiento:           fechaNacimiento,
		Nacionalidad:              body.Nacionalidad,
		PertenecePuebloOriginario: body.PertenecePuebloOriginario,
		Prevision:                 body.Prevision,
		AntecedentesMedicos:       body.AntecedentesMedicos,
	})
	if err != nil {
		return mapMadreError(c, err)
	}

	return created(c, h.views.Madre(m))
}

// GET /madres/:id
func (h *MadreHandler) Get(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "id inválido")
	}

	m, err := h.svc.GetByID(c.Context(), id)
	if err != nil {
		return mapMadreError(c, err)
	}

	return ok(c, h.views.Madre(m))
}

// GET /madres/buscar?rut=12345678-5
func (h *MadreHandler) BuscarPorRut(c fiber.Ctx) error {
	rut := c.Query("rut")
	if rut == "" {
		return badRequest(c, "rut es requerido")
	}

	m, err := h.svc.BuscarPorRut(c.Context(), rut)
	if err != nil {
		return mapMadreError(c, err)
	}

	return ok(c, h.views.Madre(m))
}

// GET /madres
func (h *MadreHandler) List(c fiber.Ctx) error {
	var q struct {
		Page      int    `query:"page"`
		PerPage   int    `query:"per_page"`
		Prevision string `query:"prevision"`
	}
	if err := c.Bind().Query(&q); err != nil {
		return badRequest(c, "parámetros de consulta inválidos")
	}

	req := madre.ListRequest{Page: q.Page, PerPage: q.PerPage}
	if q.Prevision != "" {
		req.Prevision = &q.Prevision
	}

	result, err := h.svc.List(c.Context(), req)
	if err != nil {
		return mapMadreError(c, err)
	}

	return paginated(c, h.views.Madres(result.Data), result.Total, result.Page, result.PerPage, result.TotalPages)
}

// PATCH /madres/:id
func (h *MadreHandler) Update(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "id inválido")
	}

	var body struct {
		Nombre                    *string `json:"nombre"`
		Telefono                  *string `json:"telefono"`
		Nacionalidad              *string `json:"nacionalidad"`
		PertenecePuebloOriginario *bool   `json:"pertenece_pueblo_originario"`
		Prevision                 *string `json:"prevision"`
		AntecedentesMedicos       *string `json:"antecedentes_medicos"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "cuerpo de la solicitud inválido")
	}

	m, err := h.svc.Update(c.Context(), id, madre.UpdateRequest{
		Nombre:                    body.Nombre,
		Telefono:                  body.Telefono,
		Nacionalidad:              body.Nacionalidad,
		PertenecePuebloOriginario: body.PertenecePuebloOriginario,
		Prevision:                 body.Prevision,
		AntecedentesMedicos:       body.AntecedentesMedicos,
	})
	if err != nil {
		return mapMadreError(c, err)
	}

	return ok(c, h.views.Madre(m))
}

// DELETE /madres/:id
func (h *MadreHandler) Delete(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "id inválido")
	}

	if err := h.svc.Delete(c.Context(), id); err != nil {
		return mapMadreError(c, err)
	}

	return noContent(c)
}
