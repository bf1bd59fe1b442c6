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
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/vehicle"
)

// List returns the filtered page of vehicle logs plus the total matching
// count.
func (h *Vehicles) List(
	c echo.Context,
) error {
	filter := vehicle.ListFilter{
		Plate:    c.QueryParam("plate"),
		OpenOnly: c.QueryParam("open") == "true",
	}

	var err error
	if filter.DateFrom, err = parseTimeParam(c, "dateFrom"); err != nil {
		return err
	}
	if filter.DateTo, err = parseTimeParam(c, "dateTo"); err != nil {
		return err
	}

	filter.Page, _ = strconv.Atoi(c.QueryParam("page"))
	filter.PageSize, _ = strconv.Atoi(c.QueryParam("pageSize"))

	data, total, err := h.store.List(c.Request().Context(), filter)
	if err != nil {
		h.logger.Error(
			"failed to list vehicle logs",
			slog.String("error", err.Error()),
		)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list vehicle logs")
	}

	return c.JSON(http.StatusOK, ListResponse{Data: data, Total: total})
}

// Get returns a single vehicle log by id.
func (h *Vehicles) Get(
	c echo.Context,
) error {
	l, err := h.store.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, vehicle.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "vehicle log not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to get vehicle log")
	}

	return c.JSON(http.StatusOK, l)
}
