package usuario

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/saludmaterna/maternidad_backend/internal/repo"
	"github.com/saludmaterna/maternidad_backend/internal/repo/predicate"
	entrol "github.com/saludmaterna/maternidad_backend/internal/repo/rol"
	entusuario "github.com/saludmaterna/maternidad_backend/internal/repo/usuario"
	"github.com/saludmaterna/maternidad_backend/internal/service/auditoria"
	"github.com/saludmaterna/maternidad_backend/pkg/authorize"
	"github.com/saludmaterna/maternidad_backend/pkg/email"
	"github.com/saludmaterna/maternidad_backend/pkg/reqctx"
	"github.com/saludmaterna/maternidad_backend/pkg/util/password"
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

type CreateRolRequest struct {
	Nombre      string
	Descripcion *string
}

type CreateUsuarioRequest struct {
	Rut            string
	NombreCompleto string
	Email          string
	Username       string
	RolID          uuid.UUID
}

type UpdateUsuarioRequest struct {
	NombreCompleto *string
	Email          *string
	RolID          *uuid.UUID
	Activo         *bool
}

type ListUsuariosRequest struct {
	Page    int
	PerPage int

	RolID  *uuid.UUID
	Activo *bool
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// Roles
	CreateRol(ctx context.Context, req CreateRolRequest) (*repo.Rol, error)
	ListRoles(ctx context.Context) ([]*repo.Rol, error)
	GetRol(ctx context.Context, rolID uuid.UUID) (*repo.Rol, error)

	// Usuarios
	Create(ctx context.Context, req CreateUsuarioRequest) (*repo.Usuario, error)
	GetByID(ctx context.Context, usuarioID uuid.UUID) (*repo.Usuario, error)
	List(ctx context.Context, req ListUsuariosRequest) (*PaginatedResult[*repo.Usuario], error)
	Update(ctx context.Context, usuarioID uuid.UUID, req UpdateUsuarioRequest) (*repo.Usuario, error)
	Deactivate(ctx context.Context, usuarioID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type usuarioService struct {
	db             *repo.Client
	auth           authorize.IAuthorization
	mailer         *email.Client
	audit          auditoria.Recorder
	logger         *slog.Logger
	passwordLength int
	appBaseURL     string
}

func New(
	db *repo.Client,
	auth authorize.IAuthorization,
	mailer *email.Client,
	audit auditoria.Recorder,
	logger *slog.Logger,
	passwordLength int,
	appBaseURL string,
) Service {
	if logger == nil {
		logger = slog.Default()
	}
	if passwordLength < 8 {
		passwordLength = 12
	}
	return &usuarioService{
		db:             db,
		auth:           auth,
		mailer:         mailer,
		audit:          audit,
		logger:         logger,
		passwordLength: passwordLength,
		appBaseURL:     appBaseURL,
	}
}

// ---------------------------------------------------------------------------
// Roles
// ---------------------------------------------------------------------------

func (s *usuarioService) CreateRol(ctx context.Context, req CreateRolRequest) (*repo.Rol, error) {
	nombre := strings.TrimSpace(req.Nombre)

	exists, err := s.db.Rol.Query().
		Where(entrol.Nombre(nombre)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check rol: %w", err)
	}
	if exists {
		return nil, ErrRolRegistrado
	}

	c := s.db.Rol.Create().SetNombre(nombre)
	if req.Descripcion != nil {
		c = c.SetDescripcion(*req.Descripcion)
	}

	rol, err := c.Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrRolRegistrado
		}
		return nil, fmt.Errorf("create rol: %w", err)
	}

	s.recordAudit(ctx, "CREAR_ROL", "roles", rol.ID, map[string]any{"nombre": rol.Nombre})
	return rol, nil
}

func (s *usuarioService) ListRoles(ctx context.Context) ([]*repo.Rol, error) {
	roles, err := s.db.Rol.Query().
		Order(entrol.ByNombre(sql.OrderAsc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	return roles, nil
}

func (s *usuarioService) GetRol(ctx context.Context, rolID uuid.UUID) (*repo.Rol, error) {
	rol, err := s.db.Rol.Get(ctx, rolID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrRolNotFound
		}
		return nil, fmt.Errorf("get rol: %w", err)
	}
	return rol, nil
}

// ---------------------------------------------------------------------------
// Usuarios
// ---------------------------------------------------------------------------

func (s *usuarioService) Create(ctx context.Context, req CreateUsuarioRequest) (*repo.Usuario, error) {
	rut := NormalizeRut(req.Rut)
	if !ValidRut(rut) {
		return nil, ErrRutInvalido
	}

	if err := s.checkUnique(ctx, rut, req.Email, req.Username, uuid.Nil); err != nil {
		return nil, err
	}

	rol, err := s.GetRol(ctx, req.RolID)
	if err != nil {
		return nil, err
	}

	// Initial password is generated here and mailed; the account holder is
	// expected to change it on first login.
	plain, err := password.Generate(s.passwordLength)
	if err != nil {
		return nil, fmt.Errorf("generate password: %w", err)
	}
	hash, err := password.Hash(plain)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u, err := s.db.Usuario.Create().
		SetRut(rut).
		SetNombreCompleto(strings.TrimSpace(req.NombreCompleto)).
		SetEmail(strings.ToLower(strings.TrimSpace(req.Email))).
		SetUsername(strings.TrimSpace(req.Username)).
		SetPasswordHash(hash).
		SetRolID(rol.ID).
		Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrUsernameEnUso
		}
		return nil, fmt.Errorf("create usuario: %w", err)
	}

	if s.auth != nil {
		if err := authorize.AssignRoleByNombre(ctx, s.auth, u.ID.String(), rol.Nombre); err != nil {
			s.logger.Error("failed to bind casbin role for new usuario",
				"usuario_id", u.ID, "rol", rol.Nombre, "error", err)
		}
	}

	s.sendCredentials(ctx, u, plain)
	s.recordAudit(ctx, "CREAR_USUARIO", "usuarios", u.ID, map[string]any{
		"username": u.Username,
		"rol":      rol.Nombre,
	})

	return u, nil
}

func (s *usuarioService) GetByID(ctx context.Context, usuarioID uuid.UUID) (*repo.Usuario, error) {
	u, err := s.db.Usuario.Query().
		Where(entusuario.ID(usuarioID)).
		WithRol().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrUsuarioNotFound
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return u, nil
}

func (s *usuarioService) List(ctx context.Context, req ListUsuariosRequest) (*PaginatedResult[*repo.Usuario], error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Usuario.Query()

	if req.RolID != nil {
		q = q.Where(entusuario.RolID(*req.RolID))
	}
	if req.Activo != nil {
		q = q.Where(entusuario.Activo(*req.Activo))
	}

	q = q.Order(entusuario.ByCreatedAt(sql.OrderDesc()))

	total, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count usuarios: %w", err)
	}

	usuarios, err := q.WithRol().Offset(offset).Limit(req.PerPage).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}

	totalPages := (total + req.PerPage - 1) / req.PerPage
	return &PaginatedResult[*repo.Usuario]{
		Data:       usuarios,
		Total:      total,
		Page:       req.Page,
		PerPage:    req.PerPage,
		TotalPages: totalPages,
	}, nil
}

func (s *usuarioService) Update(ctx context.Context, usuarioID uuid.UUID, req UpdateUsuarioRequest) (*repo.Usuario, error) {
	u, err := s.GetByID(ctx, usuarioID)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		normalized := strings.ToLower(strings.TrimSpace(*req.Email))
		if normalized != u.Email {
			exists, err := s.db.Usuario.Query().
				Where(entusuario.Email(normalized), entusuario.IDNEQ(usuarioID)).
				Exist(ctx)
			if err != nil {
				return nil, fmt.Errorf("check email: %w", err)
			}
			if exists {
				return nil, ErrEmailRegistrado
			}
		}
	}

	var newRol *repo.Rol
	if req.RolID != nil && *req.RolID != u.RolID {
		newRol, err = s.GetRol(ctx, *req.RolID)
		if err != nil {
			return nil, err
		}
	}

	upd := s.db.Usuario.UpdateOne(u)
	if req.NombreCompleto != nil {
		upd = upd.SetNombreCompleto(strings.TrimSpace(*req.NombreCompleto))
	}
	if req.Email != nil {
		upd = upd.SetEmail(strings.ToLower(strings.TrimSpace(*req.Email)))
	}
	if newRol != nil {
		upd = upd.SetRolID(newRol.ID)
	}
	if req.Activo != nil {
		upd = upd.SetActivo(*req.Activo)
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrEmailRegistrado
		}
		return nil, fmt.Errorf("update usuario: %w", err)
	}

	if newRol != nil && s.auth != nil {
		oldRol := u.Edges.Rol
		if oldRol != nil {
			if err := authorize.RemoveRoleByNombre(ctx, s.auth, u.ID.String(), oldRol.Nombre); err != nil {
				s.logger.Error("failed to unbind old casbin role",
					"usuario_id", u.ID, "rol", oldRol.Nombre, "error", err)
			}
		}
		if err := authorize.AssignRoleByNombre(ctx, s.auth, u.ID.String(), newRol.Nombre); err != nil {
			s.logger.Error("failed to bind new casbin role",
				"usuario_id", u.ID, "rol", newRol.Nombre, "error", err)
		}
	}

	s.recordAudit(ctx, "ACTUALIZAR_USUARIO", "usuarios", updated.ID, nil)
	return updated, nil
}

func (s *usuarioService) Deactivate(ctx context.Context, usuarioID uuid.UUID) error {
	u, err := s.GetByID(ctx, usuarioID)
	if err != nil {
		return err
	}

	if _, err := s.db.Usuario.UpdateOne(u).SetActivo(false).Save(ctx); err != nil {
		return fmt.Errorf("deactivate usuario: %w", err)
	}

	s.recordAudit(ctx, "DESACTIVAR_USUARIO", "usuarios", u.ID, nil)
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *usuarioService) checkUnique(ctx context.Context, rut, emailAddr, username string, excludeID uuid.UUID) error {
	normalEmail := strings.ToLower(strings.TrimSpace(emailAddr))

	if exists, err := s.exists(ctx, entusuario.Rut(rut), excludeID); err != nil {
		return err
	} else if exists {
		return ErrRutRegistrado
	}
	if exists, err := s.exists(ctx, entusuario.Email(normalEmail), excludeID); err != nil {
		return err
	} else if exists {
		return ErrEmailRegistrado
	}
	if exists, err := s.exists(ctx, entusuario.Username(strings.TrimSpace(username)), excludeID); err != nil {
		return err
	} else if exists {
		return ErrUsernameEnUso
	}
	return nil
}

func (s *usuarioService) exists(ctx context.Context, pred predicate.Usuario, excludeID uuid.UUID) (bool, error) {
	q := s.db.Usuario.Query().Where(pred)
	if excludeID != uuid.Nil {
		q = q.Where(entusuario.IDNEQ(excludeID))
	}
	exists, err := q.Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("check usuario uniqueness: %w", err)
	}
	return exists, nil
}

func (s *usuarioService) sendCredentials(ctx context.Context, u *repo.Usuario, plain string) {
	if s.mailer == nil {
		return
	}

	msg := email.BuildCredencialesEmail(email.CredencialesEmailData{
		NombreCompleto: u.NombreCompleto,
		Email:          u.Email,
		Username:       u.Username,
		Password:       plain,
		BaseURL:        s.appBaseURL,
	})

	if err := s.mailer.Send(ctx, msg); err != nil {
		s.logger.Warn("failed to send credentials email",
			"usuario_id", u.ID, "error", err)
	}
}

func (s *usuarioService) recordAudit(ctx context.Context, accion, tabla string, registroID uuid.UUID, detalles map[string]any) {
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

// ---------------------------------------------------------------------------
// RUT helpers
// ---------------------------------------------------------------------------

var rutPattern = regexp.MustCompile(`^\d{7,8}-[\dkK]$`)

// NormalizeRut strips dots and uppercases the check digit: "12.345.678-k"
// becomes "12345678-K".
func NormalizeRut(rut string) string {
	rut = strings.ReplaceAll(strings.TrimSpace(rut), ".", "")
	return strings.ToUpper(rut)
}

// ValidRut verifies the shape of a normalized Chilean RUT: a 7 or 8 digit
// body, a dash and a check digit. The check digit itself is not recomputed,
// upstream registries carry historical RUTs that do not pass mod-11.
func ValidRut(rut string) bool {
	return rutPattern.MatchString(rut)
}
