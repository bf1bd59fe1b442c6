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

package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/config"
)

type ConfigPublicTestSuite struct {
	suite.Suite
}

func (s *ConfigPublicTestSuite) TestValidate() {
	tests := []struct {
		name        string
		config      config.Config
		expectError bool
		errContains string
	}{
		{
			name: "valid config",
			config: config.Config{
				Server: config.Server{
					Security: config.Security{
						SigningKey: "test-signing-key",
					},
				},
				Database: config.Database{
					DSN: "postgres://localhost:5432/visitlog",
				},
			},
			expectError: false,
		},
		{
			name: "missing signing key",
			config: config.Config{
				Database: config.Database{
					DSN: "postgres://localhost:5432/visitlog",
				},
			},
			expectError: true,
			errContains: "SigningKey",
		},
		{
			name: "missing database dsn",
			config: config.Config{
				Server: config.Server{
					Security: config.Security{
						SigningKey: "test-signing-key",
					},
				},
			},
			expectError: true,
			errContains: "DSN",
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			err := config.Validate(&tc.config)

			if tc.expectError {
				s.Error(err)
				s.Contains(err.Error(), tc.errContains)
			} else {
				s.NoError(err)
			}
		})
	}
}

func (s *ConfigPublicTestSuite) TestApplyDefaults() {
	cfg := config.Config{}
	config.ApplyDefaults(&cfg)

	s.Equal(config.DefaultPort, cfg.Server.Port)
	s.Equal(config.DefaultCookieName, cfg.Server.Security.CookieName)
	s.Equal(config.DefaultLoginRateLimit, cfg.Server.Security.LoginRateLimit)
	s.Equal(config.DefaultCleanupSchedule, cfg.Audit.CleanupSchedule)
	s.Equal(config.DefaultTokenTTL, cfg.Server.Security.TokenTTLDuration())
}

func (s *ConfigPublicTestSuite) TestTokenTTLDuration() {
	sec := config.Security{TokenTTL: "30m"}
	s.Equal(30*time.Minute, sec.TokenTTLDuration())

	sec = config.Security{TokenTTL: "garbage"}
	s.Equal(config.DefaultTokenTTL, sec.TokenTTLDuration())
}

func TestConfigPublicTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigPublicTestSuite))
}
