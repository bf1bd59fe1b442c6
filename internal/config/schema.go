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

package config

import (
	"errors"
	"time"

	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/validation"
)

// Defaults applied to zero-value fields after unmarshalling.
const (
	DefaultPort            = 8080
	DefaultTokenTTL        = 2 * time.Hour
	DefaultCookieName      = "access_token"
	DefaultLoginRateLimit  = 5
	DefaultCleanupSchedule = "0 3 * * *"
)

// Validate checks the configuration against its struct tags.
func Validate(
	cfg *Config,
) error {
	if msg, ok := validation.Struct(cfg); !ok {
		return errors.New(msg)
	}

	return nil
}

// ApplyDefaults fills unset fields with their default values.
func ApplyDefaults(
	cfg *Config,
) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultPort
	}
	if cfg.Server.Security.TokenTTL == "" {
		cfg.Server.Security.TokenTTL = DefaultTokenTTL.String()
	}
	if cfg.Server.Security.CookieName == "" {
		cfg.Server.Security.CookieName = DefaultCookieName
	}
	if cfg.Server.Security.LoginRateLimit == 0 {
		cfg.Server.Security.LoginRateLimit = DefaultLoginRateLimit
	}
	if cfg.Audit.CleanupSchedule == "" {
		cfg.Audit.CleanupSchedule = DefaultCleanupSchedule
	}
}

// TokenTTLDuration parses the configured token lifetime, falling back to
// the default on a malformed or empty value.
func (s Security) TokenTTLDuration() time.Duration {
	d, err := time.ParseDuration(s.TokenTTL)
	if err != nil || d <= 0 {
		return DefaultTokenTTL
	}

	return d
}
