package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/saludmaterna/maternidad_backend/internal/service/parto"
)

type PartoHandler struct {
	svc   parto.Service
	views *Views
}

func NewPartoHandler(svc parto.Service, views *Views) *PartoHandler {
	return &PartoHandler{svc: svc, views: views}
}

func mapPartoError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, parto.ErrPartoNotFound),
		errors.Is(err, parto.ErrMadreNotFound),
		errors.Is(err, parto.ErrRecienNacidoNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, parto.ErrApgarFueraDeRango),
		errors.Is(err, parto.ErrPesoInvalido),
		errors.Is(err, parto.ErrTallaInvalida):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /madres/:id/partos
func (h *PartoHandler) Create(c fiber.Ctx) error {
	madreID, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "id inválido")
	}

	var body struct {
		FechaParto      time.Time      `json:"fecha_parto"`
		EdadGestacional *int           `json:"edad_gestacional"`
		TipoParto       string         `json:"tipo_parto"`
		Anestesia       *string        `json:"anestesia"`
		PartogramaData  map[string]any `json:"partograma_data"`
		EpicrisisData   map[string]any `json:"epicrisis_data"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "cuerpo de la solicitud inválido")
	}
	if body.TipoParto == "" {
		return badRequest(c, "tipo_parto es requerido")
	}
	if body.FechaParto.IsZero() {
		return badRequest(c, "fecha_parto es requerida")
	}

	p, err := h.svc.Create(c.Context(), parto.CreateRequest{
		MadreID:         madreID,
		FechaParto:      body.FechaParto,
		EdadGestacional: body.EdadGestacional,
		TipoParto:       body.TipoParto,
		Anestesia:       body.Anestesia,
		PartogramaData:  body.PartogramaData,
		EpicrisisData:   body.EpicrisisData,
	})
	if err != nil {
		return mapPartoError(c, err)
	}

	return created(c, h.views.Parto(p))
}

// GET /partos/:id
func (h *PartoHandler) Get(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "id inválido")
	}

	p, err := h.svc.GetByID(c.Context(), id)
	if err != nil {
		return mapPartoError(c, err)
	}

	return ok(c, h.views.Parto(p))
}

// GET /madres/:id/partos
func (h *PartoHandler) ListByMadre(c fiber.Ctx) error {
	madreID, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "id inválido")
	}

	partos, err := h.svc.ListByMadre(c.Context(), madreID)
	if err != nil {
		return mapPartoError(c, err)
	}

	return ok(c, h.views.Partos(partos))
}

// GET /partos
func (h *PartoHandler) List(c fiber.Ctx) error {
	var q struct {
		Page      int        `query:"page"`
		PerPage   int        `query:"per_page"`
		TipoParto string     `query:"tipo_parto"`
		Desde     *time.Time `query:"desde"`
		Hasta     *time.Time `query:"hasta"`
	}
	if err := c.Bind().Query(&q); err != nil {
		return badRequest(c, "parámetros de consulta inválidos")
	}

	req := parto.ListRequest{
		Page:    q.Page,
		PerPage: q.PerPage,
		Desde:   q.Desde,
		Hasta:   q.Hasta,
	}
	if q.TipoParto != "" {
		req.TipoParto = &q.TipoParto
	}

	result, err := h.svc.List(c.Context(), req)
	if err != nil {
		return mapPartoError(c, err)
	}

	return paginated(c, h.views.Partos(result.Data), result.Total, result.Page, result.PerPage, result.TotalPages)
}

// PATCH /partos/:id
func (h *PartoHandler) Update(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "id inválido")
	}

	// Only the clinical JSON payloads are mutable after registration.
	var body struct {
		PartogramaData map[string]any `json:"partograma_data"`
		EpicrisisData  map[string]any `json:"epicrisis_data"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "cuerpo de la solicitud inválido")
	}

	p, err := h.svc.Update(c.Context(), id, parto.UpdateRequest{
		PartogramaData: body.PartogramaData,
		EpicrisisData:  body.EpicrisisData,
	})
	if err != nil {
		return mapPartoError(c, err)
	}

	return ok(c, h.views.Parto(p))
}

// ---------------------------------------------------------------------------
// Recien nacidos
// ---------------------------------------------------------------------------

// POST /partos/:id/recien-nacidos
func (h *PartoHandler) CreateRecienNacido(c fiber.Ctx) error {
	partoID, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "id inválido")
	}

	var body struct {
		RutProvisorio       *string  `json:"rut_provisorio"`
		EstadoAlNacer       string   `json:"estado_al_nacer"`
		Sexo                *string  `json:"sexo"`
		PesoGramos          *int     `json:"peso_gramos"`
		TallaCm             *float64 `json:"talla_cm"`
		Apgar1Min           *int     `json:"apgar_1_min"`
		Apgar5Min           *int     `json:"apgar_5_min"`
		ProfilaxisVitK      bool     `json:"profilaxis_vit_k"`
		ProfilaxisOftalmica bool     `json:"profilaxis_oftalmica"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "cuerpo de la solicitud inválido")
	}
	if body.EstadoAlNacer == "" {
		return badRequest(c, "estado_al_nacer es requerido")
	}

	rn, err := h.svc.CreateRecienNacido(c.Context(), partoID, parto.CreateRecienNacidoRequest{
		RutProvisorio:       body.RutProvisorio,
		EstadoAlNacer:       body.EstadoAlNacer,
		Sexo:                body.Sexo,
		PesoGramos:          body.PesoGramos,
		TallaCm:             body.TallaCm,
		Apgar1Min:           body.Apgar1Min,
		Apgar5Min:           body.Apgar5Min,
		ProfilaxisVitK:      body.ProfilaxisVitK,
		ProfilaxisOftalmica: body.ProfilaxisOftalmica,
	})
	if err != nil {
		return mapPartoError(c, err)
	}

	return created(c, h.views.RecienNacido(rn))
}

// GET /recien-nacidos/:id
func (h *PartoHandler) GetRecienNacido(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "id inválido")
	}

	rn, err := h.svc.GetRecienNacido(c.Context(), id)
	if err != nil {
		return mapPartoError(c, err)
	}

	return ok(c, h.views.RecienNacido(rn))
}

// GET /partos/:id/recien-nacidos
func (h *PartoHandler) ListRecienNacidos(c fiber.Ctx) error {
	partoID, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "id inválido")
	}

	rns, err := h.svc.ListRecienNacidos(c.Context(), partoID)
	if err != nil {
		return mapPartoError(c, err)
	}

	return ok(c, h.views.RecienNacidos(rns))
}
