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

package auth

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/identity"
	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/user"
)

// Me returns the authenticated caller's current user record. The route is
// gated, so a missing identity cannot reach this handler.
func (a *Auth) Me(
	c echo.Context,
) error {
	id, ok := identity.FromContext(c.Request().Context())
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	u, err := a.users.GetByID(c.Request().Context(), id.ID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			// Token outlived the account.
			return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load user")
	}

	return c.JSON(http.StatusOK, UserSummary{
		ID:       u.ID,
		Email:    u.Email,
		FullName: u.FullName,
		Role:     string(u.Role),
	})
}
