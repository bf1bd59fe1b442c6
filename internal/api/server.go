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

// Package api wires the HTTP surface: the Echo server, authentication and
// authorization middleware, the audit tap, and per-domain route groups.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	slogecho "github.com/samber/slog-echo"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"

	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/audit"
	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/authtoken"
	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/config"
	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/telemetry"
)

// Server hosts the Echo instance and its cross-cutting dependencies.
type Server struct {
	Echo       *echo.Echo
	logger     *slog.Logger
	appConfig  config.Config
	auditStore audit.Store
}

// Option configures optional Server dependencies.
type Option func(*Server)

// WithAuditStore enables the audit tap backed by the given store.
func WithAuditStore(store audit.Store) Option {
	return func(s *Server) {
		s.auditStore = store
	}
}

// New initializes a new Server and configures an Echo server.
//
// Middleware ordering is part of the contract: identity resolution runs
// before the audit tap and before any per-route role gate, and the audit
// tap observes the response only after the handler chain has finished.
// Recover sits inside the audit tap so a panicking handler still produces
// an entry with the 500 status it was answered with.
func New(
	appConfig config.Config,
	logger *slog.Logger,
	opts ...Option,
) *Server {
	e := echo.New()
	e.HideBanner = true

	corsConfig := middleware.CORSConfig{}
	if allowOrigins := appConfig.Server.Security.CORS.AllowOrigins; len(allowOrigins) > 0 {
		corsConfig.AllowOrigins = allowOrigins
	}

	s := &Server{
		Echo:      e,
		logger:    logger,
		appConfig: appConfig,
	}

	for _, opt := range opts {
		opt(s)
	}

	e.HTTPErrorHandler = s.httpErrorHandler

	e.Use(otelecho.Middleware(telemetry.ServiceName))
	e.Use(slogecho.New(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.CORSWithConfig(corsConfig))

	var tokenManager TokenValidator = authtoken.New(logger)
	e.Use(identityMiddleware(
		tokenManager,
		appConfig.Server.Security.SigningKey,
		appConfig.Server.Security.CookieName,
	))

	// Register audit middleware if an audit store is configured. Recover
	// must run inside it: a panic converted to a 500 below the audit tap
	// still unwinds through it as a completed request.
	if s.auditStore != nil {
		e.Use(auditMiddleware(s.auditStore, logger))
	}
	e.Use(middleware.Recover())

	return s
}

// RegisterHandlers registers a list of handlers with the Echo instance.
func (s *Server) RegisterHandlers(
	handlers []func(e *echo.Echo),
) {
	for _, register := range handlers {
		register(s.Echo)
	}
}

// Start starts the Echo server with the configured port.
func (s *Server) Start() {
	go func() {
		s.logger.Info("starting server")
		listenAddr := fmt.Sprintf(":%d", s.appConfig.Server.Port)
		if err := s.Echo.Start(listenAddr); err != nil && err != http.ErrServerClosed {
			s.logger.Error(
				"failed to start server",
				slog.String("error", err.Error()),
			)
		}
	}()
}

// Stop gracefully shuts down the Echo server.
func (s *Server) Stop(
	ctx context.Context,
) {
	s.logger.Info("stopping server")

	if err := s.Echo.Shutdown(ctx); err != nil {
		s.logger.Error(
			"server shutdown failed",
			slog.String("error", err.Error()),
		)
	} else {
		s.logger.Info("server stopped gracefully")
	}
}
