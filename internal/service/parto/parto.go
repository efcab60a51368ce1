package parto

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/saludmaterna/maternidad_backend/internal/repo"
	entmadre "github.com/saludmaterna/maternidad_backend/internal/repo/madre"
	entparto "github.com/saludmaterna/maternidad_backend/internal/repo/parto"
	entrn "github.com/saludmaterna/maternidad_backend/internal/repo/reciennacido"
	"github.com/saludmaterna/maternidad_backend/internal/service/auditoria"
	"github.com/saludmaterna/maternidad_backend/pkg/reqctx"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type PaginatedResult[T any] struct {
	Data       []T
	Total      int
	Page       int
	PerPage    int
	TotalPages int
}

type CreateRequest struct {
	MadreID         uuid.UUID
	FechaParto      time.Time
	EdadGestacional *int
	TipoParto       string
	Anestesia       *string
	PartogramaData  map[string]any
	EpicrisisData   map[string]any
}

// UpdateRequest covers the only mutable parts of a birth record: the
// structured partograma and epicrisis payloads. Everything else is fixed
// at registration time.
type UpdateRequest struct {
	PartogramaData map[string]any
	EpicrisisData  map[string]any
}

// CreateRecienNacidoRequest takes the vitals as pointers: a newborn may be
// registered before weight, height or Apgar scores are recorded.
type CreateRecienNacidoRequest struct {
	RutProvisorio       *string
	EstadoAlNacer       string
	Sexo                *string
	PesoGramos          *int
	TallaCm             *float64
	Apgar1Min           *int
	Apgar5Min           *int
	ProfilaxisVitK      bool
	ProfilaxisOftalmica bool
}

type ListRequest struct {
	Page    int
	PerPage int

	TipoParto *string
	Desde     *time.Time
	Hasta     *time.Time
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*repo.Parto, error)
	GetByID(ctx context.Context, partoID uuid.UUID) (*repo.Parto, error)
	ListByMadre(ctx context.Context, madreID uuid.UUID) ([]*repo.Parto, error)
	List(ctx context.Context, req ListRequest) (*PaginatedResult[*repo.Parto], error)
	Update(ctx context.Context, partoID uuid.UUID, req UpdateRequest) (*repo.Parto, error)

	// Recien nacidos
	CreateRecienNacido(ctx context.Context, partoID uuid.UUID, req CreateRecienNacidoRequest) (*repo.RecienNacido, error)
	GetRecienNacido(ctx context.Context, recienNacidoID uuid.UUID) (*repo.RecienNacido, error)
	ListRecienNacidos(ctx context.Context, partoID uuid.UUID) ([]*repo.RecienNacido, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type partoService struct {
	db    *repo.Client
	audit auditoria.Recorder
}

func New(db *repo.Client, audit auditoria.Recorder) Service {
	return &partoService{db: db, audit: audit}
}

func (s *partoService) Create(ctx context.Context, req CreateRequest) (*repo.Parto, error) {
	madreExists, err := s.db.Madre.Query().
		Where(entmadre.ID(req.MadreID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check madre: %w", err)
	}
	if !madreExists {
		return nil, ErrMadreNotFound
	}

	c := s.db.Parto.Create().
		SetMadreID(req.MadreID).
		SetFechaParto(req.FechaParto).
		SetTipoParto(entparto.TipoParto(req.TipoParto))

	if req.EdadGestacional != nil {
		c = c.SetEdadGestacional(*req.EdadGestacional)
	}
	if req.Anestesia != nil {
		c = c.SetAnestesia(entparto.Anestesia(*req.Anestesia))
	}
	if len(req.PartogramaData) > 0 {
		c = c.SetPartogramaData(req.PartogramaData)
	}
	if len(req.EpicrisisData) > 0 {
		c = c.SetEpicrisisData(req.EpicrisisData)
	}
	if actor, ok := reqctx.UserIDFromContext(ctx); ok {
		c = c.SetUsuarioRegistroID(actor)
	}

	p, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create parto: %w", err)
	}

	s.recordAudit(ctx, "CREAR_PARTO", "partos", p.ID, map[string]any{
		"madre_id":   req.MadreID.String(),
		"tipo_parto": req.TipoParto,
	})

	return p, nil
}

func (s *partoService) GetByID(ctx context.Context, partoID uuid.UUID) (*repo.Parto, error) {
	p, err := s.db.Parto.Query().
		Where(entparto.ID(partoID)).
		WithMadre().
		WithUsuarioRegistro().
		WithRecienNacidos().
		WithPartoDiagnosticos(func(q *repo.PartoDiagnosticoQuery) {
			q.WithDiagnostico()
		}).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPartoNotFound
		}
		return nil, fmt.Errorf("get parto: %w", err)
	}
	return p, nil
}

func (s *partoService) ListByMadre(ctx context.Context, madreID uuid.UUID) ([]*repo.Parto, error) {
	madreExists, err := s.db.Madre.Query().
		Where(entmadre.ID(madreID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check madre: %w", err)
	}
	if !madreExists {
		return nil, ErrMadreNotFound
	}

	partos, err := s.db.Parto.Query().
		Where(entparto.MadreID(madreID)).
		WithUsuarioRegistro().
		WithRecienNacidos().
		Order(entparto.ByFechaParto(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list partos: %w", err)
	}
	return partos, nil
}

func (s *partoService) List(ctx context.Context, req ListRequest) (*PaginatedResult[*repo.Parto], error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Parto.Query()

	if req.TipoParto != nil {
		q = q.Where(entparto.TipoPartoEQ(entparto.TipoParto(*req.TipoParto)))
	}
	if req.Desde != nil {
		q = q.Where(entparto.FechaPartoGTE(*req.Desde))
	}
	if req.Hasta != nil {
		q = q.Where(entparto.FechaPartoLTE(*req.Hasta))
	}

	q = q.Order(entparto.ByFechaParto(sql.OrderDesc()))

	total, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count partos: %w", err)
	}

	partos, err := q.WithMadre().WithUsuarioRegistro().Offset(offset).Limit(req.PerPage).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list partos: %w", err)
	}

	totalPages := (total + req.PerPage - 1) / req.PerPage
	return &PaginatedResult[*repo.Parto]{
		Data:       partos,
		Total:      total,
		Page:       req.Page,
		PerPage:    req.PerPage,
		TotalPages: totalPages,
	}, nil
}

func (s *partoService) Update(ctx context.Context, partoID uuid.UUID, req UpdateRequest) (*repo.Parto, error) {
	p, err := s.db.Parto.Get(ctx, partoID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPartoNotFound
		}
		return nil, fmt.Errorf("get parto: %w", err)
	}

	upd := s.db.Parto.UpdateOne(p)

	if req.PartogramaData != nil {
		upd = upd.SetPartogramaData(req.PartogramaData)
	}
	if req.EpicrisisData != nil {
		upd = upd.SetEpicrisisData(req.EpicrisisData)
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update parto: %w", err)
	}

	s.recordAudit(ctx, "ACTUALIZAR_PARTO", "partos", updated.ID, nil)
	return updated, nil
}

// ---------------------------------------------------------------------------
// Recien nacidos
// ---------------------------------------------------------------------------

func (s *partoService) CreateRecienNacido(ctx context.Context, partoID uuid.UUID, req CreateRecienNacidoRequest) (*repo.RecienNacido, error) {
	for _, apgar := range []*int{req.Apgar1Min, req.Apgar5Min} {
		if apgar != nil && (*apgar < 0 || *apgar > 10) {
			return nil, ErrApgarFueraDeRango
		}
	}
	if req.PesoGramos != nil && *req.PesoGramos <= 0 {
		return nil, ErrPesoInvalido
	}
	if req.TallaCm != nil && *req.TallaCm <= 0 {
		return nil, ErrTallaInvalida
	}

	partoExists, err := s.db.Parto.Query().
		Where(entparto.ID(partoID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check parto: %w", err)
	}
	if !partoExists {
		return nil, ErrPartoNotFound
	}

	c := s.db.RecienNacido.Create().
		SetPartoID(partoID).
		SetEstadoAlNacer(entrn.EstadoAlNacer(req.EstadoAlNacer)).
		SetNillablePesoGramos(req.PesoGramos).
		SetNillableTallaCm(req.TallaCm).
		SetNillableApgar1Min(req.Apgar1Min).
		SetNillableApgar5Min(req.Apgar5Min).
		SetProfilaxisVitK(req.ProfilaxisVitK).
		SetProfilaxisOftalmica(req.ProfilaxisOftalmica)

	if req.Sexo != nil {
		c = c.SetSexo(entrn.Sexo(*req.Sexo))
	}
	if req.RutProvisorio != nil {
		c = c.SetRutProvisorio(*req.RutProvisorio)
	}
	if actor, ok := reqctx.UserIDFromContext(ctx); ok {
		c = c.SetUsuarioRegistroID(actor)
	}

	rn, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create recien nacido: %w", err)
	}

	s.recordAudit(ctx, "CREAR_RECIEN_NACIDO", "recien_nacidos", rn.ID, map[string]any{
		"parto_id": partoID.String(),
		"estado":   req.EstadoAlNacer,
	})

	return rn, nil
}

func (s *partoService) GetRecienNacido(ctx context.Context, recienNacidoID uuid.UUID) (*repo.RecienNacido, error) {
	rn, err := s.db.RecienNacido.Query().
		Where(entrn.ID(recienNacidoID)).
		WithParto().
		WithUsuarioRegistro().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrRecienNacidoNotFound
		}
		return nil, fmt.Errorf("get recien nacido: %w", err)
	}
	return rn, nil
}

func (s *partoService) ListRecienNacidos(ctx context.Context, partoID uuid.UUID) ([]*repo.RecienNacido, error) {
	partoExists, err := s.db.Parto.Query().
		Where(entparto.ID(partoID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check parto: %w", err)
	}
	if !partoExists {
		return nil, ErrPartoNotFound
	}

	rns, err := s.db.RecienNacido.Query().
		Where(entrn.PartoID(partoID)).
		WithUsuarioRegistro().
		Order(entrn.ByCreatedAt(sql.OrderAsc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list recien nacidos: %w", err)
	}
	return rns, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *partoService) recordAudit(ctx context.Context, accion, tabla string, registroID uuid.UUID, detalles map[string]any) {
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
		TablaAfectada: tabla,
		RegistroID:    &registroID,
		Detalles:      detalles,
	})
}
