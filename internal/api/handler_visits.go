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

	apivisits "github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/api/visits"
	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/user"
	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/visit"
)

// GetVisitsHandler returns the visitor log handler for registration.
// Viewers read, operators write, only admins delete.
func (s *Server) GetVisitsHandler(
	visitStore visit.Store,
) []func(e *echo.Echo) {
	visitsHandler := apivisits.New(s.logger, visitStore)

	readRoles := s.requireRoles(user.RoleAdmin, user.RoleOperator, user.RoleViewer)
	writeRoles := s.requireRoles(user.RoleAdmin, user.RoleOperator)
	adminOnly := s.requireRoles(user.RoleAdmin)

	return []func(e *echo.Echo){
		func(e *echo.Echo) {
			e.GET("/api/visits", visitsHandler.List, readRoles)
			e.POST("/api/visits", visitsHandler.Create, writeRoles)
			e.GET("/api/visits/:id", visitsHandler.Get, readRoles)
			e.PUT("/api/visits/:id", visitsHandler.Update, writeRoles)
			e.POST("/api/visits/:id/checkout", visitsHandler.Checkout, writeRoles)
			e.DELETE("/api/visits/:id", visitsHandler.Delete, adminOnly)
		},
	}
}
