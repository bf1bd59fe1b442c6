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

package telemetry_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.opentelemetry.io/otel/trace"

	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/identity"
	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/telemetry"
)

type SlogPublicTestSuite struct {
	suite.Suite

	buf    *bytes.Buffer
	logger *slog.Logger
}

func (s *SlogPublicTestSuite) SetupTest() {
	s.buf = &bytes.Buffer{}
	s.logger = slog.New(
		telemetry.NewContextHandler(slog.NewJSONHandler(s.buf, nil)),
	)
}

func (s *SlogPublicTestSuite) logged() map[string]any {
	var out map[string]any
	s.Require().NoError(json.Unmarshal(s.buf.Bytes(), &out))
	return out
}

func (s *SlogPublicTestSuite) TestPlainContextAddsNothing() {
	s.logger.InfoContext(context.Background(), "hello")

	out := s.logged()
	s.NotContains(out, "trace_id")
	s.NotContains(out, "span_id")
	s.NotContains(out, "user_id")
	s.NotContains(out, "user_role")
}

func (s *SlogPublicTestSuite) TestSpanContextAddsTraceAttributes() {
	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID: trace.TraceID{0x01},
		SpanID:  trace.SpanID{0x02},
	})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)

	s.logger.InfoContext(ctx, "hello")

	out := s.logged()
	s.Equal(sc.TraceID().String(), out["trace_id"])
	s.Equal(sc.SpanID().String(), out["span_id"])
}

func (s *SlogPublicTestSuite) TestIdentityAddsCallerAttributes() {
	ctx := identity.WithContext(context.Background(), identity.Identity{
		ID:    "user-1",
		Email: "admin@example.com",
		Role:  "ADMIN",
	})

	s.logger.InfoContext(ctx, "hello")

	out := s.logged()
	s.Equal("user-1", out["user_id"])
	s.Equal("ADMIN", out["user_role"])
	s.NotContains(out, "trace_id")
}

func (s *SlogPublicTestSuite) TestWithAttrsKeepsEnrichment() {
	ctx := identity.WithContext(context.Background(), identity.Identity{
		ID:   "user-1",
		Role: "VIEWER",
	})

	s.logger.With("component", "api").InfoContext(ctx, "hello")

	out := s.logged()
	s.Equal("api", out["component"])
	s.Equal("user-1", out["user_id"])
}

func TestSlogPublicTestSuite(t *testing.T) {
	suite.Run(t, new(SlogPublicTestSuite))
}
