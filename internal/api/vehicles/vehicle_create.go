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

package vehicles

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/identity"
	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/validation"
	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/vehicle"
)

// CreateRequest is the gate entry request body.
type CreateRequest struct {
	PlateNo    string `json:"plate_no" validate:"required"`
	DriverName string `json:"driver_name"`
	Company    string `json:"company"`
	Purpose    string `json:"purpose"`
}

// Create records a new vehicle entry. The plate number is normalized so
// later lookups match regardless of input formatting.
func (h *Vehicles) Create(
	c echo.Context,
) error {
	var req CreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	if msg, ok := validation.Struct(req); !ok {
		return echo.NewHTTPError(http.StatusBadRequest, msg)
	}

	l := vehicle.Log{
		PlateNo:    vehicle.NormalizePlate(req.PlateNo),
		DriverName: req.DriverName,
		Company:    req.Company,
		Purpose:    req.Purpose,
	}

	if id, ok := identity.FromContext(c.Request().Context()); ok {
		l.CreatedBy = &id.ID
	}

	created, err := h.store.Create(c.Request().Context(), l)
	if err != nil {
		h.logger.Error(
			"failed to create vehicle log",
			slog.String("error", err.Error()),
		)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create vehicle log")
	}

	return c.JSON(http.StatusCreated, created)
}
