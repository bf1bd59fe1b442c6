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
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

// CleanupResponse reports how many entries a manual sweep removed.
type CleanupResponse struct {
	Deleted int64 `json:"deleted"`
}

// Cleanup deletes audit entries older than the requested number of days.
func (h *AuditLog) Cleanup(
	c echo.Context,
) error {
	days, err := strconv.Atoi(c.QueryParam("olderThanDays"))
	if err != nil || days < 1 {
		return echo.NewHTTPError(http.StatusBadRequest, "olderThanDays must be a positive integer")
	}

	cutoff := time.Now().AddDate(0, 0, -days)

	deleted, err := h.store.DeleteOlderThan(c.Request().Context(), cutoff)
	if err != nil {
		h.logger.Error(
			"failed to clean up audit entries",
			slog.String("error", err.Error()),
		)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to clean up audit entries")
	}

	h.logger.Info(
		"audit cleanup complete",
		slog.Int64("deleted", deleted),
		slog.Time("cutoff", cutoff),
	)

	return c.JSON(http.StatusOK, CleanupResponse{Deleted: deleted})
}
