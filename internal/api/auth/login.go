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
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/user"
	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/validation"
)

// invalidCredentials is returned for both an unknown email and a wrong
// password, so the response never reveals which part failed.
const invalidCredentials = "invalid credentials"

// LoginRequest is the login request body.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	User UserSummary `json:"user"`
}

// Login verifies credentials, issues a token, and sets the access cookie.
func (a *Auth) Login(
	c echo.Context,
) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	if msg, ok := validation.Struct(req); !ok {
		return echo.NewHTTPError(http.StatusBadRequest, msg)
	}

	ctx := c.Request().Context()

	u, err := a.users.GetByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return echo.NewHTTPError(http.StatusUnauthorized, invalidCredentials)
		}

		a.logger.Error(
			"failed to look up user",
			slog.String("error", err.Error()),
		)
		return echo.NewHTTPError(http.StatusInternalServerError, "login failed")
	}

	if !user.CheckPassword(u.PasswordHash, req.Password) {
		return echo.NewHTTPError(http.StatusUnauthorized, invalidCredentials)
	}

	ttl := a.security.TokenTTLDuration()

	token, err := a.tokens.Generate(
		a.security.SigningKey, u.ID, u.Email, string(u.Role), ttl,
	)
	if err != nil {
		a.logger.Error(
			"failed to generate token",
			slog.String("error", err.Error()),
		)
		return echo.NewHTTPError(http.StatusInternalServerError, "login failed")
	}

	c.SetCookie(a.accessCookie(token, time.Now().Add(ttl)))

	return c.JSON(http.StatusOK, LoginResponse{
		User: UserSummary{
			ID:       u.ID,
			Email:    u.Email,
			FullName: u.FullName,
			Role:     string(u.Role),
		},
	})
}

// accessCookie builds the HTTP-only SameSite=Strict session cookie.
func (a *Auth) accessCookie(
	value string,
	expires time.Time,
) *http.Cookie {
	return &http.Cookie{
		Name:     a.security.CookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   a.security.CookieSecure,
		SameSite: http.SameSiteStrictMode,
	}
}
