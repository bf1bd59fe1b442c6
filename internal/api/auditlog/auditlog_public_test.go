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

package auditlog_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	apiauditlog "github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/api/auditlog"
	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/audit"
)

// fakeAuditStore records the filter it was queried with.
type fakeAuditStore struct {
	lastFilter audit.ListFilter
	entries    []audit.Entry
	total      int

	lastCutoff time.Time
	deleted    int64
}

func (f *fakeAuditStore) Write(_ context.Context, _ audit.Entry) error {
	return nil
}

func (f *fakeAuditStore) Get(_ context.Context, id string) (*audit.Entry, error) {
	for i := range f.entries {
		if f.entries[i].ID == id {
			return &f.entries[i], nil
		}
	}
	return nil, audit.ErrNotFound
}

func (f *fakeAuditStore) List(
	_ context.Context,
	filter audit.ListFilter,
) ([]audit.Entry, int, error) {
	f.lastFilter = filter
	return f.entries, f.total, nil
}

func (f *fakeAuditStore) DeleteOlderThan(
	_ context.Context,
	cutoff time.Time,
) (int64, error) {
	f.lastCutoff = cutoff
	return f.deleted, nil
}

type AuditLogPublicTestSuite struct {
	suite.Suite

	store   *fakeAuditStore
	handler *apiauditlog.AuditLog
}

func (s *AuditLogPublicTestSuite) SetupTest() {
	s.store = &fakeAuditStore{
		entries: []audit.Entry{
			{
				ID:         "entry-1",
				Timestamp:  time.Now(),
				Method:     "GET",
				Path:       "/api/visits",
				StatusCode: 200,
			},
		},
		total: 1,
	}
	s.handler = apiauditlog.New(slog.Default(), s.store)
}

func (s *AuditLogPublicTestSuite) listContext(query string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/audit?"+query, nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func (s *AuditLogPublicTestSuite) TestList() {
	ctx, rec := s.listContext("")

	s.NoError(s.handler.List(ctx))
	s.Equal(http.StatusOK, rec.Code)

	var resp apiauditlog.ListResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(1, resp.Total)
	s.Require().Len(resp.Data, 1)
	s.Equal("entry-1", resp.Data[0].ID)

	// Default ordering is newest first.
	s.True(s.store.lastFilter.SortDesc)
}

func (s *AuditLogPublicTestSuite) TestListParsesFilters() {
	ctx, _ := s.listContext(
		"method=POST&path=/api/users&userEmail=admin&userId=user-1" +
			"&statusFrom=400&statusTo=499" +
			"&dateFrom=2026-01-01T00:00:00Z&dateTo=2026-02-01T00:00:00Z" +
			"&sortKey=duration_ms&sortOrder=asc&page=2&pageSize=50",
	)

	s.NoError(s.handler.List(ctx))

	filter := s.store.lastFilter
	s.Equal("POST", filter.Method)
	s.Equal("/api/users", filter.Path)
	s.Equal("admin", filter.UserEmail)
	s.Equal("user-1", filter.UserID)
	s.Equal(400, filter.StatusFrom)
	s.Equal(499, filter.StatusTo)
	s.Equal("duration_ms", filter.SortKey)
	s.False(filter.SortDesc)
	s.Equal(2, filter.Page)
	s.Equal(50, filter.PageSize)
	s.Require().NotNil(filter.DateFrom)
	s.Equal(2026, filter.DateFrom.Year())
	s.Require().NotNil(filter.DateTo)
	s.Equal(time.February, filter.DateTo.Month())
}

func (s *AuditLogPublicTestSuite) TestListRejectsBadParams() {
	tests := []struct {
		name  string
		query string
	}{
		{
			name:  "bad dateFrom",
			query: "dateFrom=yesterday",
		},
		{
			name:  "bad statusFrom",
			query: "statusFrom=abc",
		},
		{
			name:  "unknown sort key",
			query: "sortKey=password_hash",
		},
		{
			name:  "bad sort order",
			query: "sortOrder=sideways",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			ctx, _ := s.listContext(tt.query)

			err := s.handler.List(ctx)

			httpErr, ok := err.(*echo.HTTPError)
			s.Require().True(ok)
			s.Equal(http.StatusBadRequest, httpErr.Code)
		})
	}
}

func (s *AuditLogPublicTestSuite) TestGet() {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/audit/entry-1", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.SetParamNames("id")
	ctx.SetParamValues("entry-1")

	s.NoError(s.handler.Get(ctx))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *AuditLogPublicTestSuite) TestGetNotFound() {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/audit/ghost", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.SetParamNames("id")
	ctx.SetParamValues("ghost")

	err := s.handler.Get(ctx)

	httpErr, ok := err.(*echo.HTTPError)
	s.Require().True(ok)
	s.Equal(http.StatusNotFound, httpErr.Code)
}

func (s *AuditLogPublicTestSuite) TestCleanup() {
	s.store.deleted = 17

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/audit/cleanup?olderThanDays=90", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	s.NoError(s.handler.Cleanup(ctx))
	s.Equal(http.StatusOK, rec.Code)

	var resp apiauditlog.CleanupResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(int64(17), resp.Deleted)

	s.WithinDuration(
		time.Now().AddDate(0, 0, -90), s.store.lastCutoff, time.Minute,
	)
}

func (s *AuditLogPublicTestSuite) TestCleanupRejectsBadDays() {
	tests := []struct {
		name  string
		query string
	}{
		{
			name:  "missing",
			query: "",
		},
		{
			name:  "zero",
			query: "olderThanDays=0",
		},
		{
			name:  "negative",
			query: "olderThanDays=-7",
		},
		{
			name:  "not a number",
			query: "olderThanDays=week",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/api/audit/cleanup?"+tt.query, nil)
			rec := httptest.NewRecorder()
			ctx := e.NewContext(req, rec)

			err := s.handler.Cleanup(ctx)

			httpErr, ok := err.(*echo.HTTPError)
			s.Require().True(ok)
			s.Equal(http.StatusBadRequest, httpErr.Code)
		})
	}
}

func TestAuditLogPublicTestSuite(t *testing.T) {
	suite.Run(t, new(AuditLogPublicTestSuite))
}
