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
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/vehicle"
)

// Exit stamps the vehicle's exit time.
func (h *Vehicles) Exit(
	c echo.Context,
) error {
	l, err := h.store.Exit(c.Request().Context(), c.Param("id"), time.Now())
	if err != nil {
		switch {
		case errors.Is(err, vehicle.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "vehicle log not found")
		case errors.Is(err, vehicle.ErrAlreadyExited):
			return echo.NewHTTPError(http.StatusConflict, "vehicle already exited")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to record vehicle exit")
	}

	return c.JSON(http.StatusOK, l)
}

// Delete removes a vehicle log record.
func (h *Vehicles) Delete(
	c echo.Context,
) error {
	if err := h.store.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, vehicle.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "vehicle log not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to delete vehicle log")
	}

	return c.NoContent(http.StatusNoContent)
}
