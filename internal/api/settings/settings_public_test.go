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

package settings_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	apisettings "github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/api/settings"
	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/settings"
)

// fakeSettingsStore is an in-memory settings store.
type fakeSettingsStore struct {
	values map[string]string
}

func (f *fakeSettingsStore) GetAll(_ context.Context) (map[string]string, error) {
	out := make(map[string]string, len(f.values))
	for k, v := range f.values {
		out[k] = v
	}
	return out, nil
}

func (f *fakeSettingsStore) Set(_ context.Context, key string, value string) error {
	f.values[key] = value
	return nil
}

type SettingsPublicTestSuite struct {
	suite.Suite

	store   *fakeSettingsStore
	handler *apisettings.Settings
}

func (s *SettingsPublicTestSuite) SetupTest() {
	s.store = &fakeSettingsStore{
		values: map[string]string{
			settings.KeyCompanyName: "Acme Corp",
			settings.KeyTimezone:    "Europe/Istanbul",
		},
	}
	s.handler = apisettings.New(slog.Default(), s.store)
}

func (s *SettingsPublicTestSuite) newContext(
	method string,
	body string,
) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, "/api/settings", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, "/api/settings", nil)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func (s *SettingsPublicTestSuite) TestGet() {
	c, rec := s.newContext(http.MethodGet, "")

	err := s.handler.Get(c)

	s.Require().NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var got map[string]string
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Equal("Acme Corp", got[settings.KeyCompanyName])
	s.Equal("Europe/Istanbul", got[settings.KeyTimezone])
}

func (s *SettingsPublicTestSuite) TestUpdate() {
	body := `{"company_name": "New Name", "logo_url": "https://example.com/logo.png"}`
	c, rec := s.newContext(http.MethodPut, body)

	err := s.handler.Update(c)

	s.Require().NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	s.Equal("New Name", s.store.values[settings.KeyCompanyName])
	s.Equal("https://example.com/logo.png", s.store.values[settings.KeyLogoURL])
	s.Equal("Europe/Istanbul", s.store.values[settings.KeyTimezone])

	var got map[string]string
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Equal("New Name", got[settings.KeyCompanyName])
}

func (s *SettingsPublicTestSuite) TestUpdateRejectsUnknownKey() {
	body := `{"company_name": "New Name", "theme_color": "red"}`
	c, _ := s.newContext(http.MethodPut, body)

	err := s.handler.Update(c)

	var httpErr *echo.HTTPError
	s.Require().ErrorAs(err, &httpErr)
	s.Equal(http.StatusBadRequest, httpErr.Code)
	s.Contains(httpErr.Message, "theme_color")

	// Nothing was written.
	s.Equal("Acme Corp", s.store.values[settings.KeyCompanyName])
}

func (s *SettingsPublicTestSuite) TestUpdateRejectsMalformedBody() {
	body := `["not", "an", "object"]`
	c, _ := s.newContext(http.MethodPut, body)

	err := s.handler.Update(c)

	var httpErr *echo.HTTPError
	s.Require().ErrorAs(err, &httpErr)
	s.Equal(http.StatusBadRequest, httpErr.Code)
}

func TestSettingsPublicTestSuite(t *testing.T) {
	suite.Run(t, new(SettingsPublicTestSuite))
}
