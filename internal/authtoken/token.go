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

// Package authtoken issues and validates signed bearer tokens.
package authtoken

import (
	"log/slog"

	"github.com/golang-jwt/jwt/v4"
)

// Issuer is the iss claim stamped on every token.
const Issuer = "visitlog"

// CustomClaims embeds the registered JWT claims plus the identity fields
// carried by every access token. Subject holds the user id.
type CustomClaims struct {
	// Email of the authenticated user.
	Email string `json:"email" validate:"required,email"`
	// Role of the authenticated user.
	Role string `json:"role"  validate:"required,oneof=ADMIN OPERATOR VIEWER"`

	jwt.RegisteredClaims
}

// Token manages JWT generation and validation.
type Token struct {
	logger *slog.Logger
}

// New creates a new Token manager.
func New(
	logger *slog.Logger,
) *Token {
	return &Token{
		logger: logger,
	}
}
