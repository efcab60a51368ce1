package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/saludmaterna/maternidad_backend/internal/service/documento"
)

type DocumentoHandler struct {
	svc   documento.Service
	views *Views
}

func NewDocumentoHandler(svc documento.Service, views *Views) *DocumentoHandler {
	return &DocumentoHandler{svc: svc, views: views}
}

func mapDocumentoError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, documento.ErrDocumentoNotFound), errors.Is(err, documento.ErrPartoNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, documento.ErrObjetoRegistrado):
		return conflict(c, err.Error())
	case errors.Is(err, documento.ErrObjetoInvalido):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /partos/:id/documentos
func (h *DocumentoHandler) Create(c fiber.Ctx) error {
	partoID, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "id inválido")
	}

	var body struct {
		MongoDBObjectID string `json:"mongodb_object_id"`
		NombreArchivo   string `json:"nombre_archivo"`
		TipoDocumento   string `json:"tipo_documento"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "cuerpo de la solicitud inválido")
	}
	if body.MongoDBObjectID == "" || body.NombreArchivo == "" {
		return badRequest(c, "mongodb_object_id y nombre_archivo son requeridos")
	}

	d, err := h.svc.Create(c.Context(), documento.CreateRequest{
		PartoID:         partoID,
		MongoDBObjectID: body.MongoDBObjectID,
		NombreArchivo:   body.NombreArchivo,
		TipoDocumento:   body.TipoDocumento,
	})
	if err != nil {
		return mapDocumentoError(c, err)
	}

	return created(c, h.views.Documento(d))
}

// GET /documentos/:id
func (h *DocumentoHandler) Get(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "id inválido")
	}

	d, err := h.svc.GetByID(c.Context(), id)
	if err != nil {
		return mapDocumentoError(c, err)
	}

	return ok(c, h.views.Documento(d))
}

// GET /partos/:id/documentos
func (h *DocumentoHandler) ListByParto(c fiber.Ctx) error {
	partoID, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "id inválido")
	}

	docs, err := h.svc.ListByParto(c.Context(), partoID)
	if err != nil {
		return mapDocumentoError(c, err)
	}

	return ok(c, h.views.Documentos(docs))
}

// DELETE /documentos/:id
func (h *DocumentoHandler) Delete(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "id inválido")
	}

	if err := h.svc.Delete(c.Context(), id); err != nil {
		return mapDocumentoError(c, err)
	}

	return noContent(c)
}
