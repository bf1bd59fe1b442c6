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

// Package settings implements the application settings endpoints.
package settings

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	appsettings "github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/settings"
)

// Settings handles application settings requests.
type Settings struct {
	logger *slog.Logger
	store  appsettings.Store
}

// New creates a new Settings handler.
func New(
	logger *slog.Logger,
	store appsettings.Store,
) *Settings {
	return &Settings{
		logger: logger,
		store:  store,
	}
}

// Get returns every stored setting as a flat key-value object.
func (h *Settings) Get(
	c echo.Context,
) error {
	all, err := h.store.GetAll(c.Request().Context())
	if err != nil {
		h.logger.Error(
			"failed to load settings",
			slog.String("error", err.Error()),
		)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load settings")
	}

	return c.JSON(http.StatusOK, all)
}

// Update upserts the provided settings. Unknown keys are rejected so a
// typo cannot silently create a dead setting.
func (h *Settings) Update(
	c echo.Context,
) error {
	var req map[string]string
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}

	for key := range req {
		if !appsettings.KnownKeys[key] {
			return echo.NewHTTPError(http.StatusBadRequest, "unknown setting: "+key)
		}
	}

	ctx := c.Request().Context()
	for key, value := range req {
		if err := h.store.Set(ctx, key, value); err != nil {
			h.logger.Error(
				"failed to store setting",
				slog.String("key", key),
				slog.String("error", err.Error()),
			)
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to store settings")
		}
	}

	all, err := h.store.GetAll(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load settings")
	}

	return c.JSON(http.StatusOK, all)
}
