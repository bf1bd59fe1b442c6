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

	apisettings "github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/api/settings"
	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/settings"
	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/user"
)

// GetSettingsHandler returns the settings handler for registration. Any
// authenticated user may read; only admins may write.
func (s *Server) GetSettingsHandler(
	settingsStore settings.Store,
) []func(e *echo.Echo) {
	settingsHandler := apisettings.New(s.logger, settingsStore)

	return []func(e *echo.Echo){
		func(e *echo.Echo) {
			e.GET("/api/settings", settingsHandler.Get, s.requireRoles())
			e.PUT("/api/settings", settingsHandler.Update, s.requireRoles(user.RoleAdmin))
		},
	}
}
