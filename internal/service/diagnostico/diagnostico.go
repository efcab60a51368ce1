package diagnostico

import (
	"context"
	"fmt"
	"strings"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/saludmaterna/maternidad_backend/internal/repo"
	entdiag "github.com/saludmaterna/maternidad_backend/internal/repo/diagnosticocie10"
	entparto "github.com/saludmaterna/maternidad_backend/internal/repo/parto"
	entpd "github.com/saludmaterna/maternidad_backend/internal/repo/partodiagnostico"
	"github.com/saludmaterna/maternidad_backend/internal/service/auditoria"
	"github.com/saludmaterna/maternidad_backend/pkg/reqctx"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	Codigo      string
	Descripcion string
}

type SearchRequest struct {
	Query string
	Limit int
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// Catalogue
	Create(ctx context.Context, req CreateRequest) (*repo.DiagnosticoCIE10, error)
	GetByID(ctx context.Context, diagnosticoID uuid.UUID) (*repo.DiagnosticoCIE10, error)
	GetByCodigo(ctx context.Context, codigo string) (*repo.DiagnosticoCIE10, error)
	Search(ctx context.Context, req SearchRequest) ([]*repo.DiagnosticoCIE10, error)

	// Links. Link is idempotent: linking an already-linked pair returns
	// ErrYaVinculado, which callers can treat as a no-op conflict.
	Link(ctx context.Context, partoID, diagnosticoID uuid.UUID) (*repo.PartoDiagnostico, error)
	Unlink(ctx context.Context, partoID, diagnosticoID uuid.UUID) error
	ListByParto(ctx context.Context, partoID uuid.UUID) ([]*repo.DiagnosticoCIE10, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type diagnosticoService struct {
	db    *repo.Client
	audit auditoria.Recorder
}

func New(db *repo.Client, audit auditoria.Recorder) Service {
	return &diagnosticoService{db: db, audit: audit}
}

func (s *diagnosticoService) Create(ctx context.Context, req CreateRequest) (*repo.DiagnosticoCIE10, error) {
	codigo := strings.ToUpper(strings.TrimSpace(req.Codigo))

	exists, err := s.db.DiagnosticoCIE10.Query().
		Where(entdiag.Codigo(codigo)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check codigo: %w", err)
	}
	if exists {
		return nil, ErrCodigoRegistrado
	}

	d, err := s.db.DiagnosticoCIE10.Create().
		SetCodigo(codigo).
		SetDescripcion(strings.TrimSpace(req.Descripcion)).
		Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrCodigoRegistrado
		}
		return nil, fmt.Errorf("create diagnostico: %w", err)
	}

	s.recordAudit(ctx, "CREAR_DIAGNOSTICO", "diagnosticos_cie10", d.ID, map[string]any{"codigo": codigo})
	return d, nil
}

func (s *diagnosticoService) GetByID(ctx context.Context, diagnosticoID uuid.UUID) (*repo.DiagnosticoCIE10, error) {
	d, err := s.db.DiagnosticoCIE10.Get(ctx, diagnosticoID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrDiagnosticoNotFound
		}
		return nil, fmt.Errorf("get diagnostico: %w", err)
	}
	return d, nil
}

func (s *diagnosticoService) GetByCodigo(ctx context.Context, codigo string) (*repo.DiagnosticoCIE10, error) {
	d, err := s.db.DiagnosticoCIE10.Query().
		Where(entdiag.Codigo(strings.ToUpper(strings.TrimSpace(codigo)))).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrDiagnosticoNotFound
		}
		return nil, fmt.Errorf("get diagnostico by codigo: %w", err)
	}
	return d, nil
}

func (s *diagnosticoService) Search(ctx context.Context, req SearchRequest) ([]*repo.DiagnosticoCIE10, error) {
	query := strings.TrimSpace(req.Query)
	limit := req.Limit
	if limit < 1 || limit > 50 {
		limit = 20
	}

	q := s.db.DiagnosticoCIE10.Query()
	if query != "" {
		q = q.Where(entdiag.Or(
			entdiag.CodigoHasPrefix(strings.ToUpper(query)),
			entdiag.DescripcionContainsFold(query),
		))
	}

	results, err := q.Order(entdiag.ByCodigo(sql.OrderAsc())).Limit(limit).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("search diagnosticos: %w", err)
	}
	return results, nil
}

// ---------------------------------------------------------------------------
// Links
// ---------------------------------------------------------------------------

func (s *diagnosticoService) Link(ctx context.Context, partoID, diagnosticoID uuid.UUID) (*repo.PartoDiagnostico, error) {
	partoExists, err := s.db.Parto.Query().
		Where(entparto.ID(partoID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check parto: %w", err)
	}
	if !partoExists {
		return nil, ErrPartoNotFound
	}

	if _, err := s.GetByID(ctx, diagnosticoID); err != nil {
		return nil, err
	}

	linked, err := s.db.PartoDiagnostico.Query().
		Where(entpd.PartoID(partoID), entpd.DiagnosticoID(diagnosticoID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check link: %w", err)
	}
	if linked {
		return nil, ErrYaVinculado
	}

	link, err := s.db.PartoDiagnostico.Create().
		SetPartoID(partoID).
		SetDiagnosticoID(diagnosticoID).
		Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrYaVinculado
		}
		return nil, fmt.Errorf("link diagnostico: %w", err)
	}

	s.recordAudit(ctx, "VINCULAR_DIAGNOSTICO", "parto_diagnosticos", link.ID, map[string]any{
		"parto_id":       partoID.String(),
		"diagnostico_id": diagnosticoID.String(),
	})

	return link, nil
}

func (s *diagnosticoService) Unlink(ctx context.Context, partoID, diagnosticoID uuid.UUID) error {
	n, err := s.db.PartoDiagnostico.Delete().
		Where(entpd.PartoID(partoID), entpd.DiagnosticoID(diagnosticoID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("unlink diagnostico: %w", err)
	}
	if n == 0 {
		return ErrVinculoNotFound
	}

	s.recordAudit(ctx, "DESVINCULAR_DIAGNOSTICO", "parto_diagnosticos", partoID, map[string]any{
		"diagnostico_id": diagnosticoID.String(),
	})
	return nil
}

func (s *diagnosticoService) ListByParto(ctx context.Context, partoID uuid.UUID) ([]*repo.DiagnosticoCIE10, error) {
	partoExists, err := s.db.Parto.Query().
		Where(entparto.ID(partoID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check parto: %w", err)
	}
	if !partoExists {
		return nil, ErrPartoNotFound
	}

	diags, err := s.db.DiagnosticoCIE10.Query().
		Where(entdiag.HasPartoDiagnosticosWith(entpd.PartoID(partoID))).
		Order(entdiag.ByCodigo(sql.OrderAsc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list diagnosticos by parto: %w", err)
	}
	return diags, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *diagnosticoService) recordAudit(ctx context.Context, accion, tabla string, registroID uuid.UUID, detalles map[string]any) {
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
