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

// Package visit provides the visitor log: check-ins and check-outs of
// people visiting the premises.
package visit

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors returned by the store.
var (
	ErrNotFound          = errors.New("visit not found")
	ErrAlreadyCheckedOut = errors.New("visit already checked out")
)

// Visit represents one visitor's stay, open until checked out.
type Visit struct {
	ID            string     `json:"id"`
	VisitorName   string     `json:"visitor_name"`
	Company       string     `json:"company"`
	VisitedPerson string     `json:"visited_person"`
	Purpose       string     `json:"purpose"`
	CardNo        string     `json:"card_no"`
	PlateNo       string     `json:"plate_no"`
	CheckedInAt   time.Time  `json:"checked_in_at"`
	CheckedOutAt  *time.Time `json:"checked_out_at,omitempty"`
	CreatedBy     *string    `json:"created_by,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// ListFilter narrows a visit listing. Zero values mean no constraint.
type ListFilter struct {
	// DateFrom and DateTo bound the check-in time (inclusive).
	DateFrom *time.Time
	DateTo   *time.Time
	// OpenOnly restricts to visits without a check-out.
	OpenOnly bool
	// Search is a case-insensitive substring match on visitor name,
	// company, and visited person.
	Search string
	// Page is 1-based; PageSize is clamped to [1, 100].
	Page     int
	PageSize int
}

// Store persists visit records.
type Store interface {
	Create(ctx context.Context, v Visit) (*Visit, error)
	Get(ctx context.Context, id string) (*Visit, error)
	List(ctx context.Context, filter ListFilter) ([]Visit, int, error)
	// Checkout stamps the check-out time exactly once; a second call
	// returns ErrAlreadyCheckedOut.
	Checkout(ctx context.Context, id string, at time.Time) (*Visit, error)
	Update(ctx context.Context, v Visit) (*Visit, error)
	Delete(ctx context.Context, id string) error
}
