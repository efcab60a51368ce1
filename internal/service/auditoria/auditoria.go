package auditoria

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/saludmaterna/maternidad_backend/internal/repo"
	entlog "github.com/saludmaterna/maternidad_backend/internal/repo/logauditoria"
	"github.com/saludmaterna/maternidad_backend/pkg/reqctx"
)

// Entry is one audit trail row about to be written.
type Entry struct {
	UsuarioID     *uuid.UUID
	Accion        string
	TablaAfectada string
	RegistroID    *uuid.UUID
	Detalles      map[string]any
}

type ListRequest struct {
	Page    int
	PerPage int

	UsuarioID     *uuid.UUID
	TablaAfectada *string
	Desde         *time.Time
	Hasta         *time.Time
}

type PaginatedResult[T any] struct {
	Data       []T
	Total      int
	Page       int
	PerPage    int
	TotalPages int
}

// Recorder is the write-side contract other services depend on.
// Record is best-effort: a failed audit write never fails the operation
// that triggered it.
type Recorder interface {
	Record(ctx context.Context, e Entry)
}

type Service interface {
	Recorder

	List(ctx context.Context, req ListRequest) (*PaginatedResult[*repo.LogAuditoria], error)
}

type auditoriaService struct {
	db     *repo.Client
	logger *slog.Logger
}

func New(db *repo.Client, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &auditoriaService{db: db, logger: logger}
}

func (s *auditoriaService) Record(ctx context.Context, e Entry) {
	c := s.db.LogAuditoria.Create().
		SetAccion(e.Accion)

	if e.UsuarioID != nil {
		c = c.SetUsuarioID(*e.UsuarioID)
	}
	if e.TablaAfectada != "" {
		c = c.SetTablaAfectada(e.TablaAfectada)
	}
	if e.RegistroID != nil {
		c = c.SetRegistroID(*e.RegistroID)
	}
	if len(e.Detalles) > 0 {
		c = c.SetDetalles(e.Detalles)
	}
	if ip := reqctx.ClientIPFromContext(ctx); ip != "" {
		c = c.SetIPUsuario(ip)
	}

	if _, err := c.Save(ctx); err != nil {
		s.logger.Error("failed to write audit entry",
			"accion", e.Accion,
			"tabla", e.TablaAfectada,
			"error", err,
		)
	}
}

func (s *auditoriaService) List(ctx context.Context, req ListRequest) (*PaginatedResult[*repo.LogAuditoria], error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 50
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.LogAuditoria.Query()

	if req.UsuarioID != nil {
		q = q.Where(entlog.UsuarioID(*req.UsuarioID))
	}
	if req.TablaAfectada != nil {
		q = q.Where(entlog.TablaAfectada(*req.TablaAfectada))
	}
	if req.Desde != nil {
		q = q.Where(entlog.FechaAccionGTE(*req.Desde))
	}
	if req.Hasta != nil {
		q = q.Where(entlog.FechaAccionLTE(*req.Hasta))
	}

	q = q.Order(entlog.ByFechaAccion(sql.OrderDesc()))

	total, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count audit entries: %w", err)
	}

	entries, err := q.WithUsuario().Offset(offset).Limit(req.PerPage).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}

	totalPages := (total + req.PerPage - 1) / req.PerPage
	return &PaginatedResult[*repo.LogAuditoria]{
		Data:       entries,
		Total:      total,
		Page:       req.Page,
		PerPage:    req.PerPage,
		TotalPages: totalPages,
	}, nil
}
