// Copyright (c) 2026 John Dewey

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

package cmd

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/api"
	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/api/health"
	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/audit"
	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/cli"
	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/settings"
	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/storage"
	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/user"
	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/vehicle"
	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/visit"
)

// ServerManager responsible for Server operations.
type ServerManager interface {
	cli.Lifecycle
	// GetAuthHandler returns the auth handler for registration.
	GetAuthHandler(userStore user.Store) []func(e *echo.Echo)
	// GetUsersHandler returns the user management handler for registration.
	GetUsersHandler(userStore user.Store) []func(e *echo.Echo)
	// GetVisitsHandler returns the visitor log handler for registration.
	GetVisitsHandler(visitStore visit.Store) []func(e *echo.Echo)
	// GetVehiclesHandler returns the vehicle log handler for registration.
	GetVehiclesHandler(vehicleStore vehicle.Store) []func(e *echo.Echo)
	// GetSettingsHandler returns the settings handler for registration.
	GetSettingsHandler(settingsStore settings.Store) []func(e *echo.Echo)
	// GetAuditHandler returns the audit trail handler for registration.
	GetAuditHandler(store audit.Store) []func(e *echo.Echo)
	// GetHealthHandler returns the health probe handler for registration.
	GetHealthHandler(
		checker health.Checker,
		startTime time.Time,
		version string,
	) []func(e *echo.Echo)
	// GetMetricsHandler returns the Prometheus scrape handler for registration.
	GetMetricsHandler(metricsHandler http.Handler, path string) []func(e *echo.Echo)
	// RegisterHandlers registers a list of handlers with the Echo instance.
	RegisterHandlers(handlers []func(e *echo.Echo))
}

// storeBundle holds the database handle and the stores built on it.
type storeBundle struct {
	db       *sql.DB
	users    user.Store
	visits   visit.Store
	vehicles vehicle.Store
	settings settings.Store
	audit    audit.Store
}

// openStores connects to the database, runs migrations, and builds the
// store layer. The bootstrap admin is created when the user table is empty.
func openStores(
	ctx context.Context,
	log *slog.Logger,
) *storeBundle {
	db, err := storage.Open(ctx, appConfig.Database)
	if err != nil {
		cli.LogFatal(log, "failed to open database", err)
	}

	if err := storage.Migrate(ctx, db); err != nil {
		cli.LogFatal(log, "failed to run migrations", err)
	}

	b := &storeBundle{
		db:       db,
		users:    user.NewPGStore(db),
		visits:   visit.NewPGStore(db),
		vehicles: vehicle.NewPGStore(db),
		settings: settings.NewPGStore(db),
		audit:    audit.NewPGStore(log, db),
	}

	if appConfig.Admin.Email != "" && appConfig.Admin.Password != "" {
		err := user.EnsureDefaultAdmin(
			ctx,
			b.users,
			log,
			appConfig.Admin.Email,
			appConfig.Admin.Password,
			appConfig.Admin.FullName,
		)
		if err != nil {
			cli.LogFatal(log, "failed to ensure default admin", err)
		}
	}

	return b
}

// setupServer creates the API server, registers every handler, and returns
// the server manager.
func setupServer(
	log *slog.Logger,
	b *storeBundle,
	metricsHandler http.Handler,
	metricsPath string,
) ServerManager {
	checker := &health.DBChecker{
		PingFn: func(ctx context.Context) error {
			return b.db.PingContext(ctx)
		},
	}

	var sm ServerManager = api.New(appConfig, log, api.WithAuditStore(b.audit))

	sm.RegisterHandlers(sm.GetAuthHandler(b.users))
	sm.RegisterHandlers(sm.GetUsersHandler(b.users))
	sm.RegisterHandlers(sm.GetVisitsHandler(b.visits))
	sm.RegisterHandlers(sm.GetVehiclesHandler(b.vehicles))
	sm.RegisterHandlers(sm.GetSettingsHandler(b.settings))
	sm.RegisterHandlers(sm.GetAuditHandler(b.audit))
	sm.RegisterHandlers(sm.GetHealthHandler(checker, time.Now(), buildVersion().GitVersion))
	sm.RegisterHandlers(sm.GetMetricsHandler(metricsHandler, metricsPath))

	return sm
}
