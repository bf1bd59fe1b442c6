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

package health_test

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/api/health"
)

type HealthPublicTestSuite struct {
	suite.Suite
}

func (s *HealthPublicTestSuite) newContext(path string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func (s *HealthPublicTestSuite) TestLive() {
	start := time.Now().Add(-90 * time.Second)
	h := health.New(slog.Default(), &health.DBChecker{}, start, "1.2.3")

	ctx, rec := s.newContext("/healthz")

	s.NoError(h.Live(ctx))
	s.Equal(http.StatusOK, rec.Code)

	var resp health.LiveResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("ok", resp.Status)
	s.Equal("1.2.3", resp.Version)
	s.GreaterOrEqual(resp.UptimeSeconds, int64(90))
}

func (s *HealthPublicTestSuite) TestReady() {
	checker := &health.DBChecker{
		PingFn: func(_ context.Context) error { return nil },
	}
	h := health.New(slog.Default(), checker, time.Now(), "1.2.3")

	ctx, rec := s.newContext("/healthz/ready")

	s.NoError(h.Ready(ctx))
	s.Equal(http.StatusOK, rec.Code)

	var resp health.ReadyResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("ready", resp.Status)
	s.Nil(resp.Error)
}

func (s *HealthPublicTestSuite) TestReadyDatabaseDown() {
	checker := &health.DBChecker{
		PingFn: func(_ context.Context) error {
			return fmt.Errorf("connection refused")
		},
	}
	h := health.New(slog.Default(), checker, time.Now(), "1.2.3")

	ctx, rec := s.newContext("/healthz/ready")

	s.NoError(h.Ready(ctx))
	s.Equal(http.StatusServiceUnavailable, rec.Code)

	var resp health.ReadyResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("not_ready", resp.Status)
	s.Require().NotNil(resp.Error)
	s.Contains(*resp.Error, "connection refused")
}

func (s *HealthPublicTestSuite) TestCheckHealthWithoutPing() {
	checker := &health.DBChecker{}

	s.NoError(checker.CheckHealth(context.Background()))
}

func TestHealthPublicTestSuite(t *testing.T) {
	suite.Run(t, new(HealthPublicTestSuite))
}
