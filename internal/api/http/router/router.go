package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/bookora/bookora_backend/config"
	"github.com/bookora/bookora_backend/internal/api/http/handler"
	"github.com/bookora/bookora_backend/internal/api/http/middleware"
	"github.com/bookora/bookora_backend/internal/service/activity"
	"github.com/bookora/bookora_backend/internal/service/auth"
	"github.com/bookora/bookora_backend/internal/service/booking"
	"github.com/bookora/bookora_backend/internal/service/catalog"
	"github.com/bookora/bookora_backend/internal/service/staff"
	"github.com/bookora/bookora_backend/pkg/database"
	pasetotoken "github.com/bookora/bookora_backend/pkg/paseto"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg         *config.Config
	Redis       *redis.Client
	Pool        *pgxpool.Pool
	AuthSvc     auth.Service
	StaffSvc    staff.Service
	CatalogSvc  catalog.Service
	BookingSvc  booking.Service
	ActivitySvc activity.Service
	PasetoMgr   *pasetotoken.Manager
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

	authH := handler.NewAuthHandler(r.p.AuthSvc)
	staffH := handler.NewStaffHandler(r.p.StaffSvc)
	serviceH := handler.NewServiceHandler(r.p.CatalogSvc)
	appointmentH := handler.NewAppointmentHandler(r.p.BookingSvc)
	activityH := handler.NewActivityHandler(r.p.ActivitySvc)

	api := app.Group("/api/v1")

	r.registerAuthRoutes(api, authH, authRequired)
	r.registerStaffRoutes(api, staffH, authRequired)
	r.registerServiceRoutes(api, serviceH, authRequired)
	r.registerAppointmentRoutes(api, appointmentH, authRequired)
	r.registerActivityRoutes(api, activityH, authRequired)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	ready := database.ReadyCheck(r.p.Pool)

	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool { return ready(c.Context()) == nil },
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
