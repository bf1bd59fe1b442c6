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

package visit

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ensure PGStore implements Store at compile time.
var _ Store = (*PGStore)(nil)

// PGStore implements Store backed by a PostgreSQL visits table.
type PGStore struct {
	db *sql.DB
}

// NewPGStore creates a new PGStore.
func NewPGStore(
	db *sql.DB,
) *PGStore {
	return &PGStore{db: db}
}

const visitColumns = `id, visitor_name, company, visited_person, purpose, card_no,
	plate_no, checked_in_at, checked_out_at, created_by, created_at, updated_at`

func scanVisit(row interface{ Scan(...any) error }) (*Visit, error) {
	var v Visit
	err := row.Scan(
		&v.ID, &v.VisitorName, &v.Company, &v.VisitedPerson, &v.Purpose,
		&v.CardNo, &v.PlateNo, &v.CheckedInAt, &v.CheckedOutAt,
		&v.CreatedBy, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &v, nil
}

// Create records a new check-in.
func (s *PGStore) Create(
	ctx context.Context,
	v Visit,
) (*Visit, error) {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	if v.CheckedInAt.IsZero() {
		v.CheckedInAt = time.Now()
	}

	query := `INSERT INTO visits
		(id, visitor_name, company, visited_person, purpose, card_no, plate_no,
		 checked_in_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + visitColumns

	created, err := scanVisit(s.db.QueryRowContext(
		ctx, query,
		v.ID, v.VisitorName, v.Company, v.VisitedPerson, v.Purpose,
		v.CardNo, v.PlateNo, v.CheckedInAt, v.CreatedBy,
	))
	if err != nil {
		return nil, fmt.Errorf("create visit: %w", err)
	}

	return created, nil
}

// Get retrieves a visit by id.
func (s *PGStore) Get(
	ctx context.Context,
	id string,
) (*Visit, error) {
	query := `SELECT ` + visitColumns + ` FROM visits WHERE id = $1`

	v, err := scanVisit(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get visit: %w", err)
	}

	return v, nil
}

// List returns the filtered page of visits, newest check-in first, plus
// the total matching count.
func (s *PGStore) List(
	ctx context.Context,
	filter ListFilter,
) ([]Visit, int, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	if filter.PageSize > 100 {
		filter.PageSize = 100
	}

	conds := make([]string, 0, 4)
	args := make([]any, 0, 4)

	add := func(cond string, value any) {
		args = append(args, value)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.DateFrom != nil {
		add("checked_in_at >= $%d", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		add("checked_in_at <= $%d", *filter.DateTo)
	}
	if filter.OpenOnly {
		conds = append(conds, "checked_out_at IS NULL")
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			"(visitor_name ILIKE $%d OR company ILIKE $%d OR visited_person ILIKE $%d)",
			n, n, n,
		))
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := s.db.QueryRowContext(
		ctx, `SELECT COUNT(*) FROM visits`+where, args...,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count visits: %w", err)
	}

	query := fmt.Sprintf(
		`SELECT %s FROM visits%s ORDER BY checked_in_at DESC LIMIT $%d OFFSET $%d`,
		visitColumns, where, len(args)+1, len(args)+2,
	)
	args = append(args, filter.PageSize, (filter.Page-1)*filter.PageSize)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list visits: %w", err)
	}
	defer func() { _ = rows.Close() }()

	visits := make([]Visit, 0, filter.PageSize)
	for rows.Next() {
		v, err := scanVisit(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan visit: %w", err)
		}
		visits = append(visits, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list visits: %w", err)
	}

	return visits, total, nil
}

// Checkout stamps the check-out time. The WHERE clause guards against a
// double checkout without a transaction.
func (s *PGStore) Checkout(
	ctx context.Context,
	id string,
	at time.Time,
) (*Visit, error) {
	query := `UPDATE visits
		SET checked_out_at = $2, updated_at = now()
		WHERE id = $1 AND checked_out_at IS NULL
		RETURNING ` + visitColumns

	v, err := scanVisit(s.db.QueryRowContext(ctx, query, id, at))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			// Distinguish a missing visit from one already closed.
			if _, getErr := s.Get(ctx, id); getErr == nil {
				return nil, ErrAlreadyCheckedOut
			}
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("checkout visit: %w", err)
	}

	return v, nil
}

// Update mutates the descriptive fields of a visit.
func (s *PGStore) Update(
	ctx context.Context,
	v Visit,
) (*Visit, error) {
	query := `UPDATE visits
		SET visitor_name = $2, company = $3, visited_person = $4, purpose = $5,
		    card_no = $6, plate_no = $7, updated_at = now()
		WHERE id = $1
		RETURNING ` + visitColumns

	updated, err := scanVisit(s.db.QueryRowContext(
		ctx, query,
		v.ID, v.VisitorName, v.Company, v.VisitedPerson, v.Purpose,
		v.CardNo, v.PlateNo,
	))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update visit: %w", err)
	}

	return updated, nil
}

// Delete removes a visit record.
func (s *PGStore) Delete(
	ctx context.Context,
	id string,
) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM visits WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete visit: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete visit: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
