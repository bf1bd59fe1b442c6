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
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	apiauth "github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/api/auth"
	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/authtoken"
	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/user"
)

// GetAuthHandler returns the auth handler for registration. The login
// route is rate limited per client IP to slow credential stuffing.
func (s *Server) GetAuthHandler(
	userStore user.Store,
) []func(e *echo.Echo) {
	var tokenManager apiauth.TokenGenerator = authtoken.New(s.logger)

	authHandler := apiauth.New(
		s.logger,
		userStore,
		tokenManager,
		s.appConfig.Server.Security,
	)

	attemptsPerMinute := s.appConfig.Server.Security.LoginRateLimit
	loginLimiter := middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(float64(attemptsPerMinute) / 60.0),
				Burst:     attemptsPerMinute,
				ExpiresIn: 3 * time.Minute,
			},
		),
	})

	return []func(e *echo.Echo){
		func(e *echo.Echo) {
			e.POST("/api/auth/login", authHandler.Login, loginLimiter)
			e.POST("/api/auth/logout", authHandler.Logout)
			e.GET("/api/auth/me", authHandler.Me, s.requireRoles())
		},
	}
}
