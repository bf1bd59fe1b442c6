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
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/authtoken"
	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/identity"
	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/user"
)

// TokenValidator parses and validates JWT tokens.
type TokenValidator interface {
	Validate(
		tokenString string,
		signingKey string,
	) (*authtoken.CustomClaims, error)
}

// identityMiddleware resolves the caller from a bearer token found in the
// access cookie or, failing that, the Authorization header. A missing or
// invalid token does not fail the request; the identity is simply left
// unset and route gating decides later.
func identityMiddleware(
	tokenManager TokenValidator,
	signingKey string,
	cookieName string,
) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString := extractToken(c, cookieName)
			if tokenString == "" {
				return next(c)
			}

			claims, err := tokenManager.Validate(tokenString, signingKey)
			if err != nil {
				return next(c)
			}

			id := identity.Identity{
				ID:    claims.Subject,
				Email: claims.Email,
				Role:  claims.Role,
			}

			req := c.Request()
			c.SetRequest(req.WithContext(identity.WithContext(req.Context(), id)))

			return next(c)
		}
	}
}

// extractToken locates the bearer token: cookie first, then the
// Authorization header.
func extractToken(
	c echo.Context,
	cookieName string,
) string {
	if cookieName != "" {
		if cookie, err := c.Cookie(cookieName); err == nil && cookie.Value != "" {
			return cookie.Value
		}
	}

	authHeader := c.Request().Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	return ""
}

// requireRoles gates a route on an allow-list of roles declared at
// registration time. An empty list admits any authenticated caller. The
// decision is made before the handler runs; a rejected request produces no
// handler side effects.
func (s *Server) requireRoles(
	roles ...user.Role,
) echo.MiddlewareFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[string(r)] = true
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, ok := identity.FromContext(c.Request().Context())
			if !ok {
				return echo.NewHTTPError(
					http.StatusUnauthorized,
					"authentication required",
				)
			}

			if len(allowed) > 0 && !allowed[id.Role] {
				return echo.NewHTTPError(
					http.StatusForbidden,
					"insufficient role",
				)
			}

			return next(c)
		}
	}
}
