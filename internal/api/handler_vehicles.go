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

	apivehicles "github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/api/vehicles"
	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/user"
	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/vehicle"
)

// GetVehiclesHandler returns the vehicle log handler for registration.
// Viewers read, operators write, only admins delete.
func (s *Server) GetVehiclesHandler(
	vehicleStore vehicle.Store,
) []func(e *echo.Echo) {
	vehiclesHandler := apivehicles.New(s.logger, vehicleStore)

	readRoles := s.requireRoles(user.RoleAdmin, user.RoleOperator, user.RoleViewer)
	writeRoles := s.requireRoles(user.RoleAdmin, user.RoleOperator)
	adminOnly := s.requireRoles(user.RoleAdmin)

	return []func(e *echo.Echo){
		func(e *echo.Echo) {
			e.GET("/api/vehicles", vehiclesHandler.List, readRoles)
			e.POST("/api/vehicles", vehiclesHandler.Create, writeRoles)
			e.GET("/api/vehicles/:id", vehiclesHandler.Get, readRoles)
			e.POST("/api/vehicles/:id/exit", vehiclesHandler.Exit, writeRoles)
			e.DELETE("/api/vehicles/:id", vehiclesHandler.Delete, adminOnly)
		},
	}
}
