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
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/identity"
	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/validation"
	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/visit"
)

// CreateRequest is the check-in request body.
type CreateRequest struct {
	VisitorName   string `json:"visitor_name"   validate:"required"`
	Company       string `json:"company"`
	VisitedPerson string `json:"visited_person"`
	Purpose       string `json:"purpose"`
	CardNo        string `json:"card_no"`
	PlateNo       string `json:"plate_no"`
}

// Create records a new visitor check-in.
func (h *Visits) Create(
	c echo.Context,
) error {
	var req CreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	if msg, ok := validation.Struct(req); !ok {
		return echo.NewHTTPError(http.StatusBadRequest, msg)
	}

	v := visit.Visit{
		VisitorName:   req.VisitorName,
		Company:       req.Company,
		VisitedPerson: req.VisitedPerson,
		Purpose:       req.Purpose,
		CardNo:        req.CardNo,
		PlateNo:       req.PlateNo,
	}

	if id, ok := identity.FromContext(c.Request().Context()); ok {
		v.CreatedBy = &id.ID
	}

	created, err := h.store.Create(c.Request().Context(), v)
	if err != nil {
		h.logger.Error(
			"failed to create visit",
			slog.String("error", err.Error()),
		)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create visit")
	}

	return c.JSON(http.StatusCreated, created)
}
