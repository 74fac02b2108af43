package di

import (
	"go.uber.org/fx"

	"github.com/solvex/cotizaciones/internal/app"
	"github.com/solvex/cotizaciones/internal/config"
	"github.com/solvex/cotizaciones/internal/logger"
	"github.com/solvex/cotizaciones/internal/pkg/auth"
	"github.com/solvex/cotizaciones/internal/server/http/handlers"
	"github.com/solvex/cotizaciones/internal/server/http/router"
	"github.com/solvex/cotizaciones/internal/storage/postgres"
	"github.com/solvex/cotizaciones/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		usecase.Module,
		fx.Provide(
			func(s *postgres.Storage) app.HealthChecker { return s },
			func(f *app.ServiceFacade) handlers.ServiceFacade { return f },
		),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
