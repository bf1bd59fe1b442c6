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

package vehicles_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	apivehicles "github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/api/vehicles"
	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/identity"
	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/vehicle"
)

// fakeVehicleStore serves canned logs and records the last filter.
type fakeVehicleStore struct {
	logs       map[string]*vehicle.Log
	lastFilter vehicle.ListFilter
	created    *vehicle.Log
}

func (f *fakeVehicleStore) Create(_ context.Context, l vehicle.Log) (*vehicle.Log, error) {
	l.ID = "generated-id"
	l.EnteredAt = time.Now()
	f.created = &l
	return &l, nil
}

func (f *fakeVehicleStore) Get(_ context.Context, id string) (*vehicle.Log, error) {
	if l, ok := f.logs[id]; ok {
		return l, nil
	}
	return nil, vehicle.ErrNotFound
}

func (f *fakeVehicleStore) List(
	_ context.Context,
	filter vehicle.ListFilter,
) ([]vehicle.Log, int, error) {
	f.lastFilter = filter

	out := make([]vehicle.Log, 0, len(f.logs))
	for _, l := range f.logs {
		out = append(out, *l)
	}
	return out, len(out), nil
}

func (f *fakeVehicleStore) Exit(
	_ context.Context,
	id string,
	at time.Time,
) (*vehicle.Log, error) {
	l, ok := f.logs[id]
	if !ok {
		return nil, vehicle.ErrNotFound
	}
	if l.ExitedAt != nil {
		return nil, vehicle.ErrAlreadyExited
	}

	out := *l
	out.ExitedAt = &at
	return &out, nil
}

func (f *fakeVehicleStore) Delete(_ context.Context, id string) error {
	if _, ok := f.logs[id]; !ok {
		return vehicle.ErrNotFound
	}
	return nil
}

type VehiclesPublicTestSuite struct {
	suite.Suite

	store   *fakeVehicleStore
	handler *apivehicles.Vehicles
}

func (s *VehiclesPublicTestSuite) SetupTest() {
	exitedAt := time.Now().Add(-time.Hour)

	s.store = &fakeVehicleStore{
		logs: map[string]*vehicle.Log{
			"inside-log": {
				ID:        "inside-log",
				PlateNo:   "34ABC123",
				EnteredAt: time.Now().Add(-2 * time.Hour),
			},
			"exited-log": {
				ID:        "exited-log",
				PlateNo:   "06XYZ77",
				EnteredAt: time.Now().Add(-3 * time.Hour),
				ExitedAt:  &exitedAt,
			},
		},
	}
	s.handler = apivehicles.New(slog.Default(), s.store)
}

func (s *VehiclesPublicTestSuite) newContext(
	method string,
	target string,
	body string,
) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func (s *VehiclesPublicTestSuite) TestCreateNormalizesPlate() {
	ctx, rec := s.newContext(
		http.MethodPost, "/api/vehicles",
		`{"plate_no":"34 abc 123","driver_name":"Ada Lovelace"}`,
	)
	req := ctx.Request()
	ctx.SetRequest(req.WithContext(identity.WithContext(
		req.Context(), identity.Identity{ID: "user-1", Role: "OPERATOR"},
	)))

	s.NoError(s.handler.Create(ctx))
	s.Equal(http.StatusCreated, rec.Code)

	s.Require().NotNil(s.store.created)
	s.Equal("34ABC123", s.store.created.PlateNo)
	s.Require().NotNil(s.store.created.CreatedBy)
	s.Equal("user-1", *s.store.created.CreatedBy)
}

func (s *VehiclesPublicTestSuite) TestCreateRequiresPlate() {
	ctx, _ := s.newContext(
		http.MethodPost, "/api/vehicles",
		`{"driver_name":"Ada Lovelace"}`,
	)

	err := s.handler.Create(ctx)

	httpErr, ok := err.(*echo.HTTPError)
	s.Require().True(ok)
	s.Equal(http.StatusBadRequest, httpErr.Code)
	s.Nil(s.store.created)
}

func (s *VehiclesPublicTestSuite) TestListParsesFilters() {
	ctx, rec := s.newContext(
		http.MethodGet,
		"/api/vehicles?plate=34abc&open=true&dateFrom=2026-01-01T00:00:00Z&page=2&pageSize=10",
		"",
	)

	s.NoError(s.handler.List(ctx))
	s.Equal(http.StatusOK, rec.Code)

	filter := s.store.lastFilter
	s.Equal("34abc", filter.Plate)
	s.True(filter.OpenOnly)
	s.Require().NotNil(filter.DateFrom)
	s.Equal(2, filter.Page)
	s.Equal(10, filter.PageSize)

	var resp apivehicles.ListResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(2, resp.Total)
}

func (s *VehiclesPublicTestSuite) TestListRejectsBadDate() {
	ctx, _ := s.newContext(
		http.MethodGet, "/api/vehicles?dateFrom=yesterday", "",
	)

	err := s.handler.List(ctx)

	httpErr, ok := err.(*echo.HTTPError)
	s.Require().True(ok)
	s.Equal(http.StatusBadRequest, httpErr.Code)
}

func (s *VehiclesPublicTestSuite) TestGet() {
	ctx, rec := s.newContext(http.MethodGet, "/api/vehicles/inside-log", "")
	ctx.SetParamNames("id")
	ctx.SetParamValues("inside-log")

	s.NoError(s.handler.Get(ctx))
	s.Equal(http.StatusOK, rec.Code)

	var l vehicle.Log
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &l))
	s.Equal("34ABC123", l.PlateNo)
}

func (s *VehiclesPublicTestSuite) TestExit() {
	ctx, rec := s.newContext(http.MethodPost, "/api/vehicles/inside-log/exit", "")
	ctx.SetParamNames("id")
	ctx.SetParamValues("inside-log")

	s.NoError(s.handler.Exit(ctx))
	s.Equal(http.StatusOK, rec.Code)

	var l vehicle.Log
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &l))
	s.NotNil(l.ExitedAt)
}

func (s *VehiclesPublicTestSuite) TestExitConflict() {
	ctx, _ := s.newContext(http.MethodPost, "/api/vehicles/exited-log/exit", "")
	ctx.SetParamNames("id")
	ctx.SetParamValues("exited-log")

	err := s.handler.Exit(ctx)

	httpErr, ok := err.(*echo.HTTPError)
	s.Require().True(ok)
	s.Equal(http.StatusConflict, httpErr.Code)
}

func (s *VehiclesPublicTestSuite) TestExitNotFound() {
	ctx, _ := s.newContext(http.MethodPost, "/api/vehicles/ghost/exit", "")
	ctx.SetParamNames("id")
	ctx.SetParamValues("ghost")

	err := s.handler.Exit(ctx)

	httpErr, ok := err.(*echo.HTTPError)
	s.Require().True(ok)
	s.Equal(http.StatusNotFound, httpErr.Code)
}

func (s *VehiclesPublicTestSuite) TestDeleteNotFound() {
	ctx, _ := s.newContext(http.MethodDelete, "/api/vehicles/ghost", "")
	ctx.SetParamNames("id")
	ctx.SetParamValues("ghost")

	err := s.handler.Delete(ctx)

	httpErr, ok := err.(*echo.HTTPError)
	s.Require().True(ok)
	s.Equal(http.StatusNotFound, httpErr.Code)
}

func TestVehiclesPublicTestSuite(t *testing.T) {
	suite.Run(t, new(VehiclesPublicTestSuite))
}
