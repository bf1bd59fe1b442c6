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

// Package auditlog implements the admin audit trail endpoints.
package auditlog

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/audit"
)

// AuditLog handles audit trail requests.
type AuditLog struct {
	logger *slog.Logger
	store  audit.Store
}

// New creates a new AuditLog handler.
func New(
	logger *slog.Logger,
	store audit.Store,
) *AuditLog {
	return &AuditLog{
		logger: logger,
		store:  store,
	}
}

// ListResponse is the paginated listing envelope.
type ListResponse struct {
	Data  []audit.Entry `json:"data"`
	Total int           `json:"total"`
}

// parseTimeParam parses an optional ISO-8601 query parameter.
func parseTimeParam(
	c echo.Context,
	name string,
) (*time.Time, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, echo.NewHTTPError(
			http.StatusBadRequest,
			name+" must be an ISO-8601 timestamp",
		)
	}

	return &t, nil
}
