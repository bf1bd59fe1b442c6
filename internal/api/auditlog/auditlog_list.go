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

package auditlog

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/audit"
)

// List returns the filtered page of audit entries plus the total matching
// count.
func (h *AuditLog) List(
	c echo.Context,
) error {
	filter := audit.ListFilter{
		Method:    c.QueryParam("method"),
		Path:      c.QueryParam("path"),
		UserEmail: c.QueryParam("userEmail"),
		UserID:    c.QueryParam("userId"),
	}

	var err error
	if filter.DateFrom, err = parseTimeParam(c, "dateFrom"); err != nil {
		return err
	}
	if filter.DateTo, err = parseTimeParam(c, "dateTo"); err != nil {
		return err
	}

	if raw := c.QueryParam("statusFrom"); raw != "" {
		if filter.StatusFrom, err = strconv.Atoi(raw); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "statusFrom must be an integer")
		}
	}
	if raw := c.QueryParam("statusTo"); raw != "" {
		if filter.StatusTo, err = strconv.Atoi(raw); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "statusTo must be an integer")
		}
	}

	if key := c.QueryParam("sortKey"); key != "" {
		if _, ok := audit.SortKeys[key]; !ok {
			return echo.NewHTTPError(http.StatusBadRequest, "unsupported sort key: "+key)
		}
		filter.SortKey = key
	}

	switch order := c.QueryParam("sortOrder"); order {
	case "", "desc":
		filter.SortDesc = true
	case "asc":
		filter.SortDesc = false
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "sortOrder must be asc or desc")
	}

	filter.Page, _ = strconv.Atoi(c.QueryParam("page"))
	filter.PageSize, _ = strconv.Atoi(c.QueryParam("pageSize"))

	data, total, err := h.store.List(c.Request().Context(), filter)
	if err != nil {
		h.logger.Error(
			"failed to list audit entries",
			slog.String("error", err.Error()),
		)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list audit entries")
	}

	return c.JSON(http.StatusOK, ListResponse{Data: data, Total: total})
}

// Get returns a single audit entry by id.
func (h *AuditLog) Get(
	c echo.Context,
) error {
	entry, err := h.store.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, audit.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "audit entry not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to get audit entry")
	}

	return c.JSON(http.StatusOK, entry)
}
