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

package users

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/user"
	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/validation"
)

// UpdateRequest is the update-user request body.
type UpdateRequest struct {
	Email    string `json:"email"     validate:"required,email"`
	FullName string `json:"full_name" validate:"required"`
	Role     string `json:"role"      validate:"required,oneof=ADMIN OPERATOR VIEWER"`
}

// Update mutates a user's email, name, and role.
func (h *Users) Update(
	c echo.Context,
) error {
	var req UpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	if msg, ok := validation.Struct(req); !ok {
		return echo.NewHTTPError(http.StatusBadRequest, msg)
	}

	updated, err := h.store.Update(c.Request().Context(), user.User{
		ID:       c.Param("id"),
		Email:    strings.ToLower(req.Email),
		FullName: req.FullName,
		Role:     user.Role(req.Role),
	})
	if err != nil {
		switch {
		case errors.Is(err, user.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "user not found")
		case errors.Is(err, user.ErrEmailTaken):
			return echo.NewHTTPError(http.StatusConflict, "email already in use")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to update user")
	}

	return c.JSON(http.StatusOK, toView(*updated))
}

// PasswordRequest is the set-password request body.
type PasswordRequest struct {
	Password string `json:"password" validate:"required,strong_password"`
}

// SetPassword replaces a user's password.
func (h *Users) SetPassword(
	c echo.Context,
) error {
	var req PasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	if msg, ok := validation.Struct(req); !ok {
		return echo.NewHTTPError(http.StatusBadRequest, msg)
	}

	hash, err := user.HashPassword(req.Password)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to set password")
	}

	if err := h.store.UpdatePassword(c.Request().Context(), c.Param("id"), hash); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "user not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to set password")
	}

	return c.NoContent(http.StatusNoContent)
}

// Delete removes a user. Audit entries referencing the user keep their
// denormalized identity copy.
func (h *Users) Delete(
	c echo.Context,
) error {
	if err := h.store.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "user not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to delete user")
	}

	return c.NoContent(http.StatusNoContent)
}
