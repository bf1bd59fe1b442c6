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

// Package health provides liveness and readiness handlers.
package health

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Checker checks the health of a dependency.
type Checker interface {
	CheckHealth(ctx context.Context) error
}

// DBChecker checks database connectivity.
type DBChecker struct {
	// PingFn verifies the database connection.
	PingFn func(ctx context.Context) error
}

// CheckHealth runs the database ping.
func (c *DBChecker) CheckHealth(
	ctx context.Context,
) error {
	if c.PingFn != nil {
		return c.PingFn(ctx)
	}

	return nil
}

// Health handles health probe requests.
type Health struct {
	logger    *slog.Logger
	checker   Checker
	startTime time.Time
	version   string
}

// New creates a new Health handler.
func New(
	logger *slog.Logger,
	checker Checker,
	startTime time.Time,
	version string,
) *Health {
	return &Health{
		logger:    logger,
		checker:   checker,
		startTime: startTime,
		version:   version,
	}
}

// LiveResponse is the liveness probe body.
type LiveResponse struct {
	Status        string `json:"status"`
	Version       string `json:"version"`
	UptimeSeconds int64  `json:"uptime_seconds"`
}

// ReadyResponse is the readiness probe body.
type ReadyResponse struct {
	Status string  `json:"status"`
	Error  *string `json:"error,omitempty"`
}

// Live reports that the process is up. It never checks dependencies.
func (h *Health) Live(
	c echo.Context,
) error {
	return c.JSON(http.StatusOK, LiveResponse{
		Status:        "ok",
		Version:       h.version,
		UptimeSeconds: int64(time.Since(h.startTime).Seconds()),
	})
}

// Ready returns 200 when dependencies are reachable, 503 otherwise.
func (h *Health) Ready(
	c echo.Context,
) error {
	if err := h.checker.CheckHealth(c.Request().Context()); err != nil {
		h.logger.Warn(
			"readiness check failed",
			slog.String("error", err.Error()),
		)
		errMsg := err.Error()
		return c.JSON(http.StatusServiceUnavailable, ReadyResponse{
			Status: "not_ready",
			Error:  &errMsg,
		})
	}

	return c.JSON(http.StatusOK, ReadyResponse{Status: "ready"})
}
