package http

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/fx"

	"github.com/bookora/bookora_backend/config"
	"github.com/bookora/bookora_backend/internal/api/http/router"
	"github.com/bookora/bookora_backend/internal/app"
)

func Start(cfg *config.Config, timeout time.Duration) {
	fx.New(
		fx.Supply(cfg),
		app.InfraModule,
		app.ServiceModule,
		app.WorkerModule,
		router.Module,
		Module,

		// Invoking *fiber.App forces server construction, which installs
		// the Listen/Shutdown lifecycle hooks.
		fx.Invoke(func(*fiber.App) {}),

		fx.StopTimeout(timeout),
	).Run()
}
