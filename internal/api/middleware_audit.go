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

package api

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/audit"
	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/identity"
)

// excludedAuditPaths lists path prefixes that should not generate audit entries.
var excludedAuditPaths = []string{
	"/healthz",
	"/metrics",
}

// auditWriteTimeout bounds the fire-and-forget audit write.
const auditWriteTimeout = 5 * time.Second

// auditMiddleware returns Echo middleware that records one audit entry per
// completed request, after the response status is final. Writes run on a
// detached context so a failing or slow store never affects the request.
func auditMiddleware(
	store audit.Store,
	logger *slog.Logger,
) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path

			for _, prefix := range excludedAuditPaths {
				if strings.HasPrefix(path, prefix) {
					return next(c)
				}
			}

			start := time.Now()

			err := next(c)

			entry := audit.Entry{
				ID:         uuid.New().String(),
				Timestamp:  start,
				Method:     c.Request().Method,
				Path:       c.Request().RequestURI,
				StatusCode: resolveStatus(c, err),
				DurationMs: time.Since(start).Milliseconds(),
				IPAddress:  c.RealIP(),
				UserAgent:  c.Request().UserAgent(),
			}

			if id, ok := identity.FromContext(c.Request().Context()); ok {
				entry.UserID = &id.ID
				entry.UserEmail = &id.Email
				entry.UserRole = &id.Role
			}

			writeCtx := context.WithoutCancel(c.Request().Context())
			go func() {
				writeCtx, cancel := context.WithTimeout(writeCtx, auditWriteTimeout)
				defer cancel()

				if writeErr := store.Write(writeCtx, entry); writeErr != nil {
					logger.Warn(
						"failed to write audit entry",
						slog.String("error", writeErr.Error()),
						slog.String("entry_id", entry.ID),
					)
				}
			}()

			return err
		}
	}
}

// resolveStatus determines the final response status. When the handler
// returned an error the status comes from the error, since the error
// handler runs after this middleware observes the response.
func resolveStatus(
	c echo.Context,
	err error,
) int {
	if err == nil {
		return c.Response().Status
	}

	if he, ok := err.(*echo.HTTPError); ok {
		return he.Code
	}

	return http.StatusInternalServerError
}
