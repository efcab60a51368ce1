package app

import (
	"log/slog"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/saludmaterna/maternidad_backend/config"
	"github.com/saludmaterna/maternidad_backend/internal/repo"
	"github.com/saludmaterna/maternidad_backend/internal/service/auditoria"
	"github.com/saludmaterna/maternidad_backend/internal/service/auth"
	"github.com/saludmaterna/maternidad_backend/internal/service/defuncion"
	"github.com/saludmaterna/maternidad_backend/internal/service/diagnostico"
	"github.com/saludmaterna/maternidad_backend/internal/service/documento"
	"github.com/saludmaterna/maternidad_backend/internal/service/madre"
	"github.com/saludmaterna/maternidad_backend/internal/service/parto"
	"github.com/saludmaterna/maternidad_backend/internal/service/usuario"
	"github.com/saludmaterna/maternidad_backend/pkg/authorize"
	"github.com/saludmaterna/maternidad_backend/pkg/crypto"
	"github.com/saludmaterna/maternidad_backend/pkg/email"
	pasetotoken "github.com/saludmaterna/maternidad_backend/pkg/paseto"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideAuditoriaService,
		ProvideUsuarioService,
		ProvideAuthService,
		ProvideMadreService,
		ProvidePartoService,
		ProvideDiagnosticoService,
		ProvideDefuncionService,
		ProvideDocumentoService,
		ProvidePasetoManager,
	),
)

func ProvideAuditoriaService(db *repo.Client) auditoria.Service {
	return auditoria.New(db, slog.Default())
}

func ProvideUsuarioService(
	db *repo.Client,
	authz authorize.IAuthorization,
	mailer *email.Client,
	audit auditoria.Service,
	cfg *config.Config,
) usuario.Service {
	return usuario.New(db, authz, mailer, audit, slog.Default(),
		cfg.Authentication.DefaultPasswordLength, cfg.Server.Domain)
}

func ProvideAuthService(
	db *repo.Client,
	rdb *redis.Client,
	paseto *pasetotoken.Manager,
	audit auditoria.Service,
	cfg *config.Config,
) auth.Service {
	return auth.New(db, rdb, paseto, audit, cfg)
}

func ProvideMadreService(
	db *repo.Client,
	field *crypto.EncryptedField,
	audit auditoria.Service,
) madre.Service {
	return madre.New(db, field, audit, slog.Default())
}

func ProvidePartoService(db *repo.Client, audit auditoria.Service) parto.Service {
	return parto.New(db, audit)
}

func ProvideDiagnosticoService(db *repo.Client, audit auditoria.Service) diagnostico.Service {
	return diagnostico.New(db, audit)
}

func ProvideDefuncionService(db *repo.Client, audit auditoria.Service) defuncion.Service {
	return defuncion.New(db, audit)
}

func ProvideDocumentoService(db *repo.Client, audit auditoria.Service) documento.Service {
	return documento.New(db, audit)
}

func ProvidePasetoManager(cfg *config.Config) (*pasetotoken.Manager, error) {
	return pasetotoken.NewPasetoManager(cfg)
}
