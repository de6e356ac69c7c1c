// Package app provides application initialization and dependency injection.
package app

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/shiprate-service/config"
	"github.com/guttosm/shiprate-service/internal/http"
)

// App is the wired application: the router plus whatever must be released
// on shutdown.
type App struct {
	Router  *gin.Engine
	closers []func(context.Context) error
}

// InitializeApp creates and wires all application dependencies.
// Optional backends that cannot be reached are logged and skipped so the
// service still quotes rates with reduced features.
func InitializeApp(cfg config.Config) *App {
	cacheComponents := InitializeCache(cfg.Cache)
	dbComponents := InitializeDatabase(cfg.Database)
	serviceComponents := InitializeServices(cfg, cacheComponents.Store, dbComponents)
	routerComponents := InitializeRouter(serviceComponents, cacheComponents, dbComponents, cfg)

	app := &App{
		Router: http.NewRouter(
			routerComponents.Handler,
			routerComponents.AdminHandler,
			routerComponents.HealthHandler,
			routerComponents.Config,
		),
	}
	app.closers = append(app.closers, cacheComponents.Close)
	if dbComponents != nil {
		app.closers = append(app.closers, dbComponents.DB.Close)
	}
	return app
}

// Close releases the cache and database connections.
func (a *App) Close(ctx context.Context) error {
	var errs []error
	for _, closeFn := range a.closers {
		if err := closeFn(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
