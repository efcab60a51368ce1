package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/saludmaterna/maternidad_backend/internal/service/usuario"
)

type UsuarioHandler struct {
	svc   usuario.Service
	views *Views
}

func NewUsuarioHandler(svc usuario.Service, views *Views) *UsuarioHandler {
	return &UsuarioHandler{svc: svc, views: views}
}

func mapUsuarioError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usuario.ErrUsuarioNotFound), errors.Is(err, usuario.ErrRolNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, usuario.ErrRolRegistrado),
		errors.Is(err, usuario.ErrUsernameEnUso),
		errors.Is(err, usuario.ErrEmailRegistrado),
		errors.Is(err, usuario.ErrRutRegistrado):
		return conflict(c, err.Error())
	case errors.Is(err, usuario.ErrRutInvalido):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

func parseIDParam(c fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Params(name))
}

// ---------------------------------------------------------------------------
// Roles
// ---------------------------------------------------------------------------

// POST /roles
func (h *UsuarioHandler) CreateRol(c fiber.Ctx) error {
	var body struct {
		Nombre      string  `json:"nombre"`
		Descripcion *string `json:"descripcion"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "cuerpo de la solicitud inválido")
	}
	if body.Nombre == "" {
		return badRequest(c, "nombre es requerido")
	}

	rol, err := h.svc.CreateRol(c.Context(), usuario.CreateRolRequest{
		Nombre:      body.Nombre,
		Descripcion: body.Descripcion,
	})
	if err != nil {
		return mapUsuarioError(c, err)
	}

	return created(c, h.views.Rol(rol))
}

// GET /roles
func (h *UsuarioHandler) ListRoles(c fiber.Ctx) error {
	roles, err := h.svc.ListRoles(c.Context())
	if err != nil {
		return mapUsuarioError(c, err)
	}
	return ok(c, h.views.Roles(roles))
}

// ---------------------------------------------------------------------------
// Usuarios
// ---------------------------------------------------------------------------

// POST /usuarios
func (h *UsuarioHandler) Create(c fiber.Ctx) error {
	var body struct {
		Rut            string    `json:"rut"`
		NombreCompleto string    `json:"nombre_completo"`
		Email          string    `json:"email"`
		Username       string    `json:"username"`
		RolID          uuid.UUID `json:"rol_id"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "cuerpo de la solicitud inválido")
	}
	if body.Rut == "" || body.NombreCompleto == "" || body.Email == "" || body.Username == "" {
		return badRequest(c, "rut, nombre_completo, email y username son requeridos")
	}

	u, err := h.svc.Create(c.Context(), usuario.CreateUsuarioRequest{
		Rut:            body.Rut,
		NombreCompleto: body.NombreCompleto,
		Email:          body.Email,
		Username:       body.Username,
		RolID:          body.RolID,
	})
	if err != nil {
		return mapUsuarioError(c, err)
	}

	return created(c, h.views.Usuario(u))
}

// GET /usuarios/:id
func (h *UsuarioHandler) Get(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "id inválido")
	}

	u, err := h.svc.GetByID(c.Context(), id)
	if err != nil {
		return mapUsuarioError(c, err)
	}

	return ok(c, h.views.Usuario(u))
}

// GET /usuarios
func (h *UsuarioHandler) List(c fiber.Ctx) error {
	var q struct {
		Page    int    `query:"page"`
		PerPage int    `query:"per_page"`
		RolID   string `query:"rol_id"`
		Activo  *bool  `query:"activo"`
	}
	if err := c.Bind().Query(&q); err != nil {
		return badRequest(c, "parámetros de consulta inválidos")
	}

	req := usuario.ListUsuariosRequest{
		Page:    q.Page,
		PerPage: q.PerPage,
		Activo:  q.Activo,
	}
	if q.RolID != "" {
		rolID, err := uuid.Parse(q.RolID)
		if err != nil {
			return badRequest(c, "rol_id inválido")
		}
		req.RolID = &rolID
	}

	result, err := h.svc.List(c.Context(), req)
	if err != nil {
		return mapUsuarioError(c, err)
	}

	return paginated(c, h.views.Usuarios(result.Data), result.Total, result.Page, result.PerPage, result.TotalPages)
}

// PATCH /usuarios/:id
func (h *UsuarioHandler) Update(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "id inválido")
	}

	var body struct {
		NombreCompleto *string `json:"nombre_completo"`
		Email          *string `json:"email"`
		RolID          *string `json:"rol_id"`
		Activo         *bool   `json:"activo"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "cuerpo de la solicitud inválido")
	}

	req := usuario.UpdateUsuarioRequest{
		NombreCompleto: body.NombreCompleto,
		Email:          body.Email,
		Activo:         body.Activo,
	}
	if body.RolID != nil {
		rolID, err := uuid.Parse(*body.RolID)
		if err != nil {
			return badRequest(c, "rol_id inválido")
		}
		req.RolID = &rolID
	}

	u, err := h.svc.Update(c.Context(), id, req)
	if err != nil {
		return mapUsuarioError(c, err)
	}

	return ok(c, h.views.Usuario(u))
}

// DELETE /usuarios/:id
func (h *UsuarioHandler) Deactivate(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "id inválido")
	}

	if err := h.svc.Deactivate(c.Context(), id); err != nil {
		return mapUsuarioError(c, err)
	}

	return noContent(c)
}
