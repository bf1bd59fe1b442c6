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

// Package vehicle provides the vehicle log: entries and exits of vehicles
// passing the gate.
package vehicle

import (
	"context"
	"errors"
	"strings"
	"time"
)

// Sentinel errors returned by the store.
var (
	ErrNotFound      = errors.New("vehicle log not found")
	ErrAlreadyExited = errors.New("vehicle already exited")
)

// Log represents one vehicle's stay, open until the exit is stamped.
type Log struct {
	ID         string     `json:"id"`
	PlateNo    string     `json:"plate_no"`
	DriverName string     `json:"driver_name"`
	Company    string     `json:"company"`
	Purpose    string     `json:"purpose"`
	EnteredAt  time.Time  `json:"entered_at"`
	ExitedAt   *time.Time `json:"exited_at,omitempty"`
	CreatedBy  *string    `json:"created_by,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// NormalizePlate upper-cases and strips spaces from a plate number so
// lookups match regardless of input formatting.
func NormalizePlate(plate string) string {
	return strings.ToUpper(strings.ReplaceAll(plate, " ", ""))
}

// ListFilter narrows a vehicle log listing.
type ListFilter struct {
	// DateFrom and DateTo bound the entry time (inclusive).
	DateFrom *time.Time
	DateTo   *time.Time
	// OpenOnly restricts to vehicles still inside.
	OpenOnly bool
	// Plate is a case-insensitive substring match on the plate number.
	Plate string
	// Page is 1-based; PageSize is clamped to [1, 100].
	Page     int
	PageSize int
}

// Store persists vehicle log records.
type Store interface {
	Create(ctx context.Context, l Log) (*Log, error)
	Get(ctx context.Context, id string) (*Log, error)
	List(ctx context.Context, filter ListFilter) ([]Log, int, error)
	// Exit stamps the exit time exactly once; a second call returns
	// ErrAlreadyExited.
	Exit(ctx context.Context, id string, at time.Time) (*Log, error)
	Delete(ctx context.Context, id string) error
}
