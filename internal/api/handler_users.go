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
	"github.com/labstack/echo/v4"

	apiusers "github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/api/users"
	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/user"
)

// GetUsersHandler returns the user management handler for registration.
// Every route is admin only.
func (s *Server) GetUsersHandler(
	userStore user.Store,
) []func(e *echo.Echo) {
	usersHandler := apiusers.New(s.logger, userStore)

	adminOnly := s.requireRoles(user.RoleAdmin)

	return []func(e *echo.Echo){
		func(e *echo.Echo) {
			e.GET("/api/users", usersHandler.List, adminOnly)
			e.POST("/api/users", usersHandler.Create, adminOnly)
			e.GET("/api/users/:id", usersHandler.Get, adminOnly)
			e.PUT("/api/users/:id", usersHandler.Update, adminOnly)
			e.PUT("/api/users/:id/password", usersHandler.SetPassword, adminOnly)
			e.DELETE("/api/users/:id", usersHandler.Delete, adminOnly)
		},
	}
}
