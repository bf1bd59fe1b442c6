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

// Package auth implements the login surface: credential verification,
// token issuance, and the session cookie.
package auth

import (
	"log/slog"
	"time"

	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/config"
	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/user"
)

// TokenGenerator generates signed JWT tokens.
type TokenGenerator interface {
	Generate(
		signingKey string,
		subject string,
		email string,
		role string,
		ttl time.Duration,
	) (string, error)
}

// Auth handles authentication requests.
type Auth struct {
	logger   *slog.Logger
	users    user.Store
	tokens   TokenGenerator
	security config.Security
}

// New creates a new Auth handler.
func New(
	logger *slog.Logger,
	users user.Store,
	tokens TokenGenerator,
	security config.Security,
) *Auth {
	return &Auth{
		logger:   logger,
		users:    users,
		tokens:   tokens,
		security: security,
	}
}

// UserSummary is the identity payload returned to clients.
type UserSummary struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}
