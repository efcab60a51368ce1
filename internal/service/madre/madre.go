package madre

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nyaruka/phonenumbers"

	"github.com/saludmaterna/maternidad_backend/internal/repo"
	entmadre "github.com/saludmaterna/maternidad_backend/internal/repo/madre"
	"github.com/saludmaterna/maternidad_backend/internal/service/auditoria"
	"github.com/saludmaterna/maternidad_backend/internal/service/usuario"
	"github.com/saludmaterna/maternidad_backend/pkg/crypto"
	"github.com/saludmaterna/maternidad_backend/pkg/reqctx"
)

const phoneRegion = "CL"

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// Record is a madre row with its protected fields decrypted for the caller.
type Record struct {
	*repo.Madre

	Rut      string
	Nombre   string
	Telefono string
}

type PaginatedResult[T any] struct {
	Data       []T
	Total      int
	Page       int
	PerPage    int
	TotalPages int
}

type CreateRequest struct {
	FichaClinicaID            string
	Rut                       string
	Nombre                    string
	Telefono                  *string
	FechaNacimiento           time.Time
	Nacionalidad              *string
	PertenecePuebloOriginario bool
	Prevision                 *string
	AntecedentesMedicos       *string
}

type UpdateRequest struct {
	Nombre                    *string
	Telefono                  *string
	Nacionalidad              *string
	PertenecePuebloOriginario *bool
	Prevision                 *string
	AntecedentesMedicos       *string
}

type ListRequest struct {
	Page    int
	PerPage int

	Prevision *string
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Record, error)
	GetByID(ctx context.Context, madreID uuid.UUID) (*Record, error)

	// BuscarPorRut finds a mother through the RUT hash column. The stored
	// ciphertexts are never scanned.
	BuscarPorRut(ctx context.Context, rut string) (*Record, error)

	List(ctx context.Context, req ListRequest) (*PaginatedResult[*Record], error)
	Update(ctx context.Context, madreID uuid.UUID, req UpdateRequest) (*Record, error)

	// Delete removes the mother and, through the schema, every dependent
	// parto, recien nacido, diagnosis link and document reference.
	Delete(ctx context.Context, madreID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type madreService struct {
	db     *repo.Client
	field  *crypto.EncryptedField
	audit  auditoria.Recorder
	logger *slog.Logger
}

func New(db *repo.Client, field *crypto.EncryptedField, audit auditoria.Recorder, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &madreService{db: db, field: field, audit: audit, logger: logger}
}

func (s *madreService) Create(ctx context.Context, req CreateRequest) (*Record, error) {
	rut := usuario.NormalizeRut(req.Rut)
	if !usuario.ValidRut(rut) {
		return nil, ErrRutInvalido
	}

	ficha := strings.TrimSpace(req.FichaClinicaID)
	exists, err := s.db.Madre.Query().
		Where(entmadre.FichaClinicaID(ficha)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check ficha: %w", err)
	}
	if exists {
		return nil, ErrFichaRegistrada
	}

	rutHash, rutEnc, err := s.field.Store(rut)
	if err != nil {
		return nil, fmt.Errorf("protect rut: %w", err)
	}

	rutExists, err := s.db.Madre.Query().
		Where(entmadre.RutHash(rutHash)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check rut: %w", err)
	}
	if rutExists {
		return nil, ErrRutRegistrado
	}

	nombre := strings.TrimSpace(req.Nombre)
	nombreHash, nombreEnc, err := s.field.Store(nombre)
	if err != nil {
		return nil, fmt.Errorf("protect nombre: %w", err)
	}

	c := s.db.Madre.Create().
		SetFichaClinicaID(ficha).
		SetRutHash(rutHash).
		SetRutEncrypted(rutEnc).
		SetNombreHash(nombreHash).
		SetNombreEncrypted(nombreEnc).
		SetFechaNacimiento(req.FechaNacimiento).
		SetPertenecePuebloOriginario(req.PertenecePuebloOriginario)

	telefono := ""
	if req.Telefono != nil && strings.TrimSpace(*req.Telefono) != "" {
		telefono, err = normalizePhone(*req.Telefono)
		if err != nil {
			return nil, err
		}
		telHash, telEnc, err := s.field.Store(telefono)
		if err != nil {
			return nil, fmt.Errorf("protect telefono: %w", err)
		}
		c = c.SetTelefonoHash(telHash).SetTelefonoEncrypted(telEnc)
	}

	if req.Nacionalidad != nil {
		c = c.SetNacionalidad(strings.TrimSpace(*req.Nacionalidad))
	}
	if req.Prevision != nil {
		c = c.SetPrevision(entmadre.Prevision(*req.Prevision))
	}
	if req.AntecedentesMedicos != nil {
		c = c.SetAntecedentesMedicos(*req.AntecedentesMedicos)
	}

	m, err := c.Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrFichaRegistrada
		}
		return nil, fmt.Errorf("create madre: %w", err)
	}

	s.recordAudit(ctx, "CREAR_MADRE", m.ID, map[string]any{"ficha": m.FichaClinicaID})

	return &Record{Madre: m, Rut: rut, Nombre: nombre, Telefono: telefono}, nil
}

func (s *madreService) GetByID(ctx context.Context, madreID uuid.UUID) (*Record, error) {
	m, err := s.db.Madre.Get(ctx, madreID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrMadreNotFound
		}
		return nil, fmt.Errorf("get madre: %w", err)
	}
	return s.decrypt(m)
}

func (s *madreService) BuscarPorRut(ctx context.Context, rut string) (*Record, error) {
	rut = usuario.NormalizeRut(rut)
	if !usuario.ValidRut(rut) {
		return nil, ErrRutInvalido
	}

	m, err := s.db.Madre.Query().
		Where(entmadre.RutHash(crypto.Hash(rut))).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrMadreNotFound
		}
		return nil, fmt.Errorf("find madre by rut: %w", err)
	}
	return s.decrypt(m)
}

func (s *madreService) List(ctx context.Context, req ListRequest) (*PaginatedResult[*Record], error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Madre.Query()
	if req.Prevision != nil {
		q = q.Where(entmadre.PrevisionEQ(entmadre.Prevision(*req.Prevision)))
	}
	q = q.Order(entmadre.ByCreatedAt(sql.OrderDesc()))

	total, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count madres: %w", err)
	}

	madres, err := q.Offset(offset).Limit(req.PerPage).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list madres: %w", err)
	}

	records := make([]*Record, 0, len(madres))
	for _, m := range madres {
		rec, err := s.decrypt(m)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	totalPages := (total + req.PerPage - 1) / req.PerPage
	return &PaginatedResult[*Record]{
		Data:       records,
		Total:      total,
		Page:       req.Page,
		PerPage:    req.PerPage,
		TotalPages: totalPages,
	}, nil
}

func (s *madreService) Update(ctx context.Context, madreID uuid.UUID, req UpdateRequest) (*Record, error) {
	m, err := s.db.Madre.Get(ctx, madreID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrMadreNotFound
		}
		return nil, fmt.Errorf("get madre: %w", err)
	}

	upd := s.db.Madre.UpdateOne(m)

	if req.Nombre != nil {
		nombre := strings.TrimSpace(*req.Nombre)
		hash, enc, err := s.field.Store(nombre)
		if err != nil {
			return nil, fmt.Errorf("protect nombre: %w", err)
		}
		upd = upd.SetNombreHash(hash).SetNombreEncrypted(enc)
	}
	if req.Telefono != nil {
		if strings.TrimSpace(*req.Telefono) == "" {
			upd = upd.ClearTelefonoHash().ClearTelefonoEncrypted()
		} else {
			telefono, err := normalizePhone(*req.Telefono)
			if err != nil {
				return nil, err
			}
			hash, enc, err := s.field.Store(telefono)
			if err != nil {
				return nil, fmt.Errorf("protect telefono: %w", err)
			}
			upd = upd.SetTelefonoHash(hash).SetTelefonoEncrypted(enc)
		}
	}
	if req.Nacionalidad != nil {
		upd = upd.SetNacionalidad(strings.TrimSpace(*req.Nacionalidad))
	}
	if req.PertenecePuebloOriginario != nil {
		upd = upd.SetPertenecePuebloOriginario(*req.PertenecePuebloOriginario)
	}
	if req.Prevision != nil {
		upd = upd.SetPrevision(entmadre.Prevision(*req.Prevision))
	}
	if req.AntecedentesMedicos != nil {
		upd = upd.SetAntecedentesMedicos(*req.AntecedentesMedicos)
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update madre: %w", err)
	}

	s.recordAudit(ctx, "ACTUALIZAR_MADRE", updated.ID, nil)
	return s.decrypt(updated)
}

func (s *madreService) Delete(ctx context.Context, madreID uuid.UUID) error {
	m, err := s.db.Madre.Get(ctx, madreID)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrMadreNotFound
		}
		return fmt.Errorf("get madre: %w", err)
	}

	if err := s.db.Madre.DeleteOne(m).Exec(ctx); err != nil {
		return fmt.Errorf("delete madre: %w", err)
	}

	s.recordAudit(ctx, "ELIMINAR_MADRE", m.ID, map[string]any{"ficha": m.FichaClinicaID})
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *madreService) decrypt(m *repo.Madre) (*Record, error) {
	rut, err := s.field.Open(m.RutEncrypted)
	if err != nil {
		return nil, fmt.Errorf("open rut: %w", err)
	}
	nombre, err := s.field.Open(m.NombreEncrypted)
	if err != nil {
		return nil, fmt.Errorf("open nombre: %w", err)
	}

	telefono := ""
	if m.TelefonoEncrypted != "" {
		telefono, err = s.field.Open(m.TelefonoEncrypted)
		if err != nil {
			return nil, fmt.Errorf("open telefono: %w", err)
		}
	}

	return &Record{Madre: m, Rut: rut, Nombre: nombre, Telefono: telefono}, nil
}

func (s *madreService) recordAudit(ctx context.Context, accion string, registroID uuid.UUID, detalles map[string]any) {
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
		TablaAfectada: "madres",
		RegistroID:    &registroID,
		Detalles:      detalles,
	})
}

// normalizePhone validates a Chilean number and returns it in E.164 form.
func normalizePhone(raw string) (string, error) {
	num, err := phonenumbers.Parse(strings.TrimSpace(raw), phoneRegion)
	if err != nil {
		return "", ErrTelefonoInvalido
	}
	if !phonenumbers.IsValidNumberForRegion(num, phoneRegion) {
		return "", ErrTelefonoInvalido
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}
