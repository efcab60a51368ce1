package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/saludmaterna/maternidad_backend/config"
	"github.com/saludmaterna/maternidad_backend/internal/api/http/handler"
	"github.com/saludmaterna/maternidad_backend/internal/api/http/middleware"
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
	pasetotoken "github.com/saludmaterna/maternidad_backend/pkg/paseto"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg            *config.Config
	Redis          *redis.Client
	Auth           authorize.IAuthorization
	Field          *crypto.EncryptedField
	AuthSvc        auth.Service
	UsuarioSvc     usuario.Service
	MadreSvc       madre.Service
	PartoSvc       parto.Service
	DiagnosticoSvc diagnostico.Service
	DefuncionSvc   defuncion.Service
	DocumentoSvc   documento.Service
	AuditoriaSvc   auditoria.Service
	PasetoMgr      *pasetotoken.Manager
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	r.registerSystemRoutes(app)

	authRequired := middleware.AuthRequired(r.p.PasetoMgr, r.p.Redis)

	requirePerm := func(res authorize.Resource, act authorize.Action) fiber.Handler {
		return middleware.RequirePermission(r.p.Auth, res, act)
	}

	views := handler.NewViews(r.p.Field)

	authH := handler.NewAuthHandler(r.p.AuthSvc)
	usuarioH := handler.NewUsuarioHandler(r.p.UsuarioSvc, views)
	madreH := handler.NewMadreHandler(r.p.MadreSvc, views)
	partoH := handler.NewPartoHandler(r.p.PartoSvc, views)
	diagnosticoH := handler.NewDiagnosticoHandler(r.p.DiagnosticoSvc, views)
	defuncionH := handler.NewDefuncionHandler(r.p.DefuncionSvc, views)
	documentoH := handler.NewDocumentoHandler(r.p.DocumentoSvc, views)
	auditoriaH := handler.NewAuditoriaHandler(r.p.AuditoriaSvc, views)

	api := app.Group("/api/v1")

	r.registerAuthRoutes(api, authH, authRequired)
	r.registerUsuarioRoutes(api, usuarioH, authRequired, requirePerm)
	r.registerMadreRoutes(api, madreH, partoH, authRequired, requirePerm)
	r.registerPartoRoutes(api, partoH, diagnosticoH, documentoH, authRequired, requirePerm)
	r.registerDiagnosticoRoutes(api, diagnosticoH, authRequired, requirePerm)
	r.registerDefuncionRoutes(api, defuncionH, authRequired, requirePerm)
	r.registerDocumentoRoutes(api, documentoH, authRequired, requirePerm)
	r.registerAuditoriaRoutes(api, auditoriaH, authRequired, requirePerm)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool { return authorize.IsPolicyHealthy() },
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
