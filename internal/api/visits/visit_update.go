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

package visits

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/validation"
	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/visit"
)

// UpdateRequest is the update-visit request body.
type UpdateRequest struct {
	VisitorName   string `json:"visitor_name"   validate:"required"`
	Company       string `json:"company"`
	VisitedPerson string `json:"visited_person"`
	Purpose       string `json:"purpose"`
	CardNo        string `json:"card_no"`
	PlateNo       string `json:"plate_no"`
}

// Update mutates the descriptive fields of a visit.
func (h *Visits) Update(
	c echo.Context,
) error {
	var req UpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	if msg, ok := validation.Struct(req); !ok {
		return echo.NewHTTPError(http.StatusBadRequest, msg)
	}

	updated, err := h.store.Update(c.Request().Context(), visit.Visit{
		ID:            c.Param("id"),
		VisitorName:   req.VisitorName,
		Company:       req.Company,
		VisitedPerson: req.VisitedPerson,
		Purpose:       req.Purpose,
		CardNo:        req.CardNo,
		PlateNo:       req.PlateNo,
	})
	if err != nil {
		if errors.Is(err, visit.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "visit not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to update visit")
	}

	return c.JSON(http.StatusOK, updated)
}

// Checkout stamps the visitor's check-out time.
func (h *Visits) Checkout(
	c echo.Context,
) error {
	v, err := h.store.Checkout(c.Request().Context(), c.Param("id"), time.Now())
	if err != nil {
		switch {
		case errors.Is(err, visit.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "visit not found")
		case errors.Is(err, visit.ErrAlreadyCheckedOut):
			return echo.NewHTTPError(http.StatusConflict, "visit already checked out")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to check out visit")
	}

	return c.JSON(http.StatusOK, v)
}

// Delete removes a visit record.
func (h *Visits) Delete(
	c echo.Context,
) error {
	if err := h.store.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, visit.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "visit not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to delete visit")
	}

	return c.NoContent(http.StatusNoContent)
}
