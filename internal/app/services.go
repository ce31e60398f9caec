package app

import (
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/bookora/bookora_backend/config"
	"github.com/bookora/bookora_backend/internal/service/activity"
	"github.com/bookora/bookora_backend/internal/service/auth"
	"github.com/bookora/bookora_backend/internal/service/booking"
	"github.com/bookora/bookora_backend/internal/service/catalog"
	"github.com/bookora/bookora_backend/internal/service/staff"
	"github.com/bookora/bookora_backend/internal/store"
	pasetotoken "github.com/bookora/bookora_backend/pkg/paseto"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideAuthService,
		ProvideStaffService,
		ProvideCatalogService,
		ProvideActivityService,
		ProvideBookingService,
		ProvidePasetoManager,
	),
)

func ProvideAuthService(st *store.Store, rdb *redis.Client, paseto *pasetotoken.Manager) auth.Service {
	return auth.New(st, rdb, paseto)
}

func ProvideStaffService(st *store.Store) staff.Service {
	return staff.New(st)
}

func ProvideCatalogService(st *store.Store) catalog.Service {
	return catalog.New(st)
}

func ProvideActivityService(nc *nats.Conn, st *store.Store) activity.Service {
	return activity.New(nc, st)
}

func ProvideBookingService(st *store.Store, events activity.Service) booking.Service {
	return booking.New(st, events)
}

func ProvidePasetoManager(cfg *config.Config) (*pasetotoken.Manager, error) {
	return pasetotoken.NewPasetoManager(cfg)
}
