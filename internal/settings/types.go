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

// Package settings stores application branding and display settings as
// key-value pairs.
package settings

import "context"

// Known setting keys.
const (
	KeyCompanyName = "company_name"
	KeyLogoURL     = "logo_url"
	KeyTimezone    = "timezone"
)

// KnownKeys is the closed set of accepted setting keys.
var KnownKeys = map[string]bool{
	KeyCompanyName: true,
	KeyLogoURL:     true,
	KeyTimezone:    true,
}

// Store persists application settings.
type Store interface {
	// GetAll returns every stored key-value pair.
	GetAll(ctx context.Context) (map[string]string, error)
	// Set upserts a single key.
	Set(ctx context.Context, key string, value string) error
}
