package documento

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/saludmaterna/maternidad_backend/internal/repo"
	entdoc "github.com/saludmaterna/maternidad_backend/internal/repo/documentoreferencia"
	entparto "github.com/saludmaterna/maternidad_backend/internal/repo/parto"
	"github.com/saludmaterna/maternidad_backend/internal/service/auditoria"
	"github.com/saludmaterna/maternidad_backend/pkg/reqctx"
)

// objectIDPattern matches a 24-char hex document-store object id.
var objectIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	PartoID         uuid.UUID
	MongoDBObjectID string
	NombreArchivo   string
	TipoDocumento   string
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*repo.DocumentoReferencia, error)
	GetByID(ctx context.Context, documentoID uuid.UUID) (*repo.DocumentoReferencia, error)
	ListByParto(ctx context.Context, partoID uuid.UUID) ([]*repo.DocumentoReferencia, error)
	Delete(ctx context.Context, documentoID uuid.UUID) error
}

type documentoService struct {
	db    *repo.Client
	audit auditoria.Recorder
}

func New(db *repo.Client, audit auditoria.Recorder) Service {
	return &documentoService{db: db, audit: audit}
}

func (s *documentoService) Create(ctx context.Context, req CreateRequest) (*repo.DocumentoReferencia, error) {
	objectID := strings.ToLower(strings.TrimSpace(req.MongoDBObjectID))
	if !objectIDPattern.MatchString(objectID) {
		return nil, ErrObjetoInvalido
	}

	partoExists, err := s.db.Parto.Query().
		Where(entparto.ID(req.PartoID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check parto: %w", err)
	}
	if !partoExists {
		return nil, ErrPartoNotFound
	}

	registered, err := s.db.DocumentoReferencia.Query().
		Where(entdoc.MongodbObjectID(objectID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check object id: %w", err)
	}
	if registered {
		return nil, ErrObjetoRegistrado
	}

	create := s.db.DocumentoReferencia.Create().
		SetPartoID(req.PartoID).
		SetMongodbObjectID(objectID).
		SetNombreArchivo(strings.TrimSpace(req.NombreArchivo))

	if req.TipoDocumento != "" {
		create = create.SetTipoDocumento(entdoc.TipoDocumento(req.TipoDocumento))
	}
	if id, ok := reqctx.UserIDFromContext(ctx); ok {
		create = create.SetUsuarioGeneracionID(id)
	}

	d, err := create.Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrObjetoRegistrado
		}
		return nil, fmt.Errorf("create documento: %w", err)
	}

	s.recordAudit(ctx, "REGISTRAR_DOCUMENTO", d.ID, map[string]any{
		"parto_id":       req.PartoID.String(),
		"nombre_archivo": d.NombreArchivo,
	})

	return d, nil
}

func (s *documentoService) GetByID(ctx context.Context, documentoID uuid.UUID) (*repo.DocumentoReferencia, error) {
	d, err := s.db.DocumentoReferencia.Query().
		Where(entdoc.ID(documentoID)).
		WithParto().
		WithUsuarioGeneracion().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrDocumentoNotFound
		}
		return nil, fmt.Errorf("get documento: %w", err)
	}
	return d, nil
}

func (s *documentoService) ListByParto(ctx context.Context, partoID uuid.UUID) ([]*repo.DocumentoReferencia, error) {
	partoExists, err := s.db.Parto.Query().
		Where(entparto.ID(partoID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check parto: %w", err)
	}
	if !partoExists {
		return nil, ErrPartoNotFound
	}

	docs, err := s.db.DocumentoReferencia.Query().
		Where(entdoc.PartoID(partoID)).
		WithParto().
		WithUsuarioGeneracion().
		Order(entdoc.ByCreatedAt(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list documentos: %w", err)
	}
	return docs, nil
}

func (s *documentoService) Delete(ctx context.Context, documentoID uuid.UUID) error {
	if err := s.db.DocumentoReferencia.DeleteOneID(documentoID).Exec(ctx); err != nil {
		if repo.IsNotFound(err) {
			return ErrDocumentoNotFound
		}
		return fmt.Errorf("delete documento: %w", err)
	}
	s.recordAudit(ctx, "ELIMINAR_DOCUMENTO", documentoID, nil)
	return nil
}

func (s *documentoService) recordAudit(ctx context.Context, accion string, registroID uuid.UUID, detalles map[string]any) {
	if s.audit == nil {
		return
	}
	var actor *uuid.UUID
	if id, ok := reqctx.UserIDFromContext(ctx); ok {
		actor = &id
	}
	s.audit.Record(ctx, auditoria.Entry{
		UsuarioID:     actor,
		Accion:        accion,
		TablaAfectada: "documentos_referencia",
		RegistroID:    &registroID,
		Detalles:      detalles,
	})
}
