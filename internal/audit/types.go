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

// Package audit provides audit trail types and storage.
package audit

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// ErrNotFound is returned when no entry matches the requested id.
var ErrNotFound = errors.New("audit entry not found")

// Entry represents a single immutable audit record of one completed HTTP
// request. Entries are write-once; they are never updated.
type Entry struct {
	// ID is the unique identifier for this audit entry.
	ID string `json:"id"`
	// Timestamp is when the request started processing.
	Timestamp time.Time `json:"timestamp"`
	// Method is the HTTP method (GET, POST, PUT, DELETE).
	Method string `json:"method"`
	// Path is the original request URI, including any query string.
	Path string `json:"path"`
	// StatusCode is the final HTTP response status.
	StatusCode int `json:"status_code"`
	// DurationMs is the request processing time in milliseconds.
	DurationMs int64 `json:"duration_ms"`
	// UserID is the caller's user id, nil when unauthenticated. The
	// identity fields are denormalized copies taken at write time, not
	// live references.
	UserID *string `json:"user_id,omitempty"`
	// UserEmail is the caller's email at write time.
	UserEmail *string `json:"user_email,omitempty"`
	// UserRole is the caller's role at write time.
	UserRole *string `json:"user_role,omitempty"`
	// IPAddress is the best-effort client IP.
	IPAddress string `json:"ip_address"`
	// UserAgent is the client's user agent string.
	UserAgent string `json:"user_agent"`
	// Action is an optional free-form action tag.
	Action *string `json:"action,omitempty"`
	// Resource is an optional free-form resource tag.
	Resource *string `json:"resource,omitempty"`
	// Payload is a reserved JSON column. It is never populated.
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Pagination bounds for the query surface.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// SortKeys is the fixed allow-list of sortable fields, mapping the API
// sort key to its column.
var SortKeys = map[string]string{
	"timestamp":   "created_at",
	"method":      "method",
	"path":        "path",
	"status_code": "status_code",
	"duration_ms": "duration_ms",
	"user_email":  "user_email",
}

// ListFilter narrows and orders an audit query. Zero values mean "no
// constraint" for the corresponding field.
type ListFilter struct {
	// DateFrom and DateTo bound the creation time (inclusive).
	DateFrom *time.Time
	DateTo   *time.Time
	// Method is an exact HTTP method match.
	Method string
	// StatusFrom and StatusTo bound the status code (inclusive).
	StatusFrom int
	StatusTo   int
	// Path is a case-insensitive substring match on the request path.
	Path string
	// UserEmail is a case-insensitive substring match.
	UserEmail string
	// UserID is an exact match.
	UserID string
	// SortKey must be a member of SortKeys; empty sorts by timestamp.
	SortKey string
	// SortDesc orders descending when true.
	SortDesc bool
	// Page is 1-based; values below 1 are clamped to 1.
	Page int
	// PageSize is clamped to [1, MaxPageSize]; zero uses DefaultPageSize.
	PageSize int
}

// Normalize clamps pagination and resolves the sort column. It returns the
// column name and the limit/offset to apply.
func (f *ListFilter) Normalize() (sortColumn string, limit int, offset int) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize == 0 {
		f.PageSize = DefaultPageSize
	}
	if f.PageSize < 1 {
		f.PageSize = 1
	}
	if f.PageSize > MaxPageSize {
		f.PageSize = MaxPageSize
	}

	sortColumn, ok := SortKeys[f.SortKey]
	if !ok {
		sortColumn = "created_at"
	}

	return sortColumn, f.PageSize, (f.Page - 1) * f.PageSize
}

// Store persists and queries audit entries.
type Store interface {
	// Write appends a single entry.
	Write(ctx context.Context, entry Entry) error
	// Get retrieves one entry by id.
	Get(ctx context.Context, id string) (*Entry, error)
	// List returns the filtered page plus the total matching count.
	List(ctx context.Context, filter ListFilter) ([]Entry, int, error)
	// DeleteOlderThan bulk-deletes entries created before cutoff and
	// returns the number removed.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
