package defuncion

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/saludmaterna/maternidad_backend/internal/repo"
	entdef "github.com/saludmaterna/maternidad_backend/internal/repo/defuncion"
	entmadre "github.com/saludmaterna/maternidad_backend/internal/repo/madre"
	entrn "github.com/saludmaterna/maternidad_backend/internal/repo/reciennacido"
	"github.com/saludmaterna/maternidad_backend/internal/service/auditoria"
	"github.com/saludmaterna/maternidad_backend/pkg/reqctx"
)

// ---------------------------------------------------------------------------
// Sujeto
// ---------------------------------------------------------------------------

// Sujeto identifies who the death record refers to. Exactly one of the two
// references is set; construct values through SujetoMadre or
// SujetoRecienNacido so malformed subjects cannot be represented by accident.
type Sujeto struct {
	madreID        *uuid.UUID
	recienNacidoID *uuid.UUID
}

func SujetoMadre(madreID uuid.UUID) Sujeto {
	return Sujeto{madreID: &madreID}
}

func SujetoRecienNacido(recienNacidoID uuid.UUID) Sujeto {
	return Sujeto{recienNacidoID: &recienNacidoID}
}

func (s Sujeto) valid() bool {
	return (s.madreID != nil) != (s.recienNacidoID != nil)
}

// MadreID returns the mother reference, if this subject is a mother.
func (s Sujeto) MadreID() (uuid.UUID, bool) {
	if s.madreID == nil {
		return uuid.UUID{}, false
	}
	return *s.madreID, true
}

// RecienNacidoID returns the newborn reference, if this subject is a newborn.
func (s Sujeto) RecienNacidoID() (uuid.UUID, bool) {
	if s.recienNacidoID == nil {
		return uuid.UUID{}, false
	}
	return *s.recienNacidoID, true
}

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	Sujeto          Sujeto
	FechaDefuncion  time.Time
	CausaDefuncionID uuid.UUID
}

type ListRequest struct {
	Page    int
	PerPage int
}

type PaginatedResult[T any] struct {
	Data       []T
	Total      int
	Page       int
	PerPage    int
	TotalPages int
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*repo.Defuncion, error)
	GetByID(ctx context.Context, defuncionID uuid.UUID) (*repo.Defuncion, error)
	List(ctx context.Context, req ListRequest) (*PaginatedResult[*repo.Defuncion], error)
	Delete(ctx context.Context, defuncionID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type defuncionService struct {
	db    *repo.Client
	audit auditoria.Recorder
}

func New(db *repo.Client, audit auditoria.Recorder) Service {
	return &defuncionService{db: db, audit: audit}
}

func (s *defuncionService) Create(ctx context.Context, req CreateRequest) (*repo.Defuncion, error) {
	if !req.Sujeto.valid() {
		return nil, ErrSujetoInvalido
	}

	if _, err := s.db.DiagnosticoCIE10.Get(ctx, req.CausaDefuncionID); err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrCausaNotFound
		}
		return nil, fmt.Errorf("get causa: %w", err)
	}

	create := s.db.Defuncion.Create().
		SetFechaDefuncion(req.FechaDefuncion).
		SetCausaDefuncionID(req.CausaDefuncionID)

	var (
		tablaSujeto string
		sujetoID    uuid.UUID
	)

	if madreID, ok := req.Sujeto.MadreID(); ok {
		exists, err := s.db.Madre.Query().Where(entmadre.ID(madreID)).Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("check madre: %w", err)
		}
		if !exists {
			return nil, ErrMadreNotFound
		}
		registered, err := s.db.Defuncion.Query().Where(entdef.MadreID(madreID)).Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("check defuncion madre: %w", err)
		}
		if registered {
			return nil, ErrDefuncionRegistrada
		}
		create = create.SetMadreID(madreID)
		tablaSujeto, sujetoID = "madres", madreID
	}

	if rnID, ok := req.Sujeto.RecienNacidoID(); ok {
		exists, err := s.db.RecienNacido.Query().Where(entrn.ID(rnID)).Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("check recien nacido: %w", err)
		}
		if !exists {
			return nil, ErrRecienNacidoNotFound
		}
		registered, err := s.db.Defuncion.Query().Where(entdef.RecienNacidoID(rnID)).Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("check defuncion recien nacido: %w", err)
		}
		if registered {
			return nil, ErrDefuncionRegistrada
		}
		create = create.SetRecienNacidoID(rnID)
		tablaSujeto, sujetoID = "recien_nacidos", rnID
	}

	if id, ok := reqctx.UserIDFromContext(ctx); ok {
		create = create.SetUsuarioRegistroID(id)
	}

	d, err := create.Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrDefuncionRegistrada
		}
		return nil, fmt.Errorf("create defuncion: %w", err)
	}

	s.recordAudit(ctx, "CREAR_DEFUNCION", d.ID, map[string]any{
		"sujeto_tabla": tablaSujeto,
		"sujeto_id":    sujetoID.String(),
	})

	return s.GetByID(ctx, d.ID)
}

func (s *defuncionService) GetByID(ctx context.Context, defuncionID uuid.UUID) (*repo.Defuncion, error) {
	d, err := s.db.Defuncion.Query().
		Where(entdef.ID(defuncionID)).
		WithCausaDefuncion().
		WithMadre().
		WithRecienNacido().
		WithUsuarioRegistro().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrDefuncionNotFound
		}
		return nil, fmt.Errorf("get defuncion: %w", err)
	}
	return d, nil
}

func (s *defuncionService) List(ctx context.Context, req ListRequest) (*PaginatedResult[*repo.Defuncion], error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	perPage := req.PerPage
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	q := s.db.Defuncion.Query()

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count defunciones: %w", err)
	}

	items, err := q.
		WithCausaDefuncion().
		WithMadre().
		WithRecienNacido().
		Order(entdef.ByFechaDefuncion(sql.OrderDesc())).
		Offset((page - 1) * perPage).
		Limit(perPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list defunciones: %w", err)
	}

	return &PaginatedResult[*repo.Defuncion]{
		Data:       items,
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: (total + perPage - 1) / perPage,
	}, nil
}

func (s *defuncionService) Delete(ctx context.Context, defuncionID uuid.UUID) error {
	if err := s.db.Defuncion.DeleteOneID(defuncionID).Exec(ctx); err != nil {
		if repo.IsNotFound(err) {
			return ErrDefuncionNotFound
		}
		return fmt.Errorf("delete defuncion: %w", err)
	}
	s.recordAudit(ctx, "ELIMINAR_DEFUNCION", defuncionID, nil)
	return nil
}

func (s *defuncionService) recordAudit(ctx context.Context, accion string, registroID uuid.UUID, detalles map[string]any) {
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
		TablaAfectada: "defunciones",
		RegistroID:    &registroID,
		Detalles:      detalles,
	})
}
