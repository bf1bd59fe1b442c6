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

package vehicle

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

// PGStore implements Store backed by a PostgreSQL vehicle_logs table.
type PGStore struct {
	db *sql.DB
}

// NewPGStore creates a new PGStore.
func NewPGStore(
	db *sql.DB,
) *PGStore {
	return &PGStore{db: db}
}

const logColumns = `id, plate_no, driver_name, company, purpose,
	entered_at, exited_at, created_by, created_at, updated_at`

func scanLog(row interface{ Scan(...any) error }) (*Log, error) {
	var l Log
	err := row.Scan(
		&l.ID, &l.PlateNo, &l.DriverName, &l.Company, &l.Purpose,
		&l.EnteredAt, &l.ExitedAt, &l.CreatedBy, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &l, nil
}

// Create records a new vehicle entry.
func (s *PGStore) Create(
	ctx context.Context,
	l Log,
) (*Log, error) {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	if l.EnteredAt.IsZero() {
		l.EnteredAt = time.Now()
	}
	l.PlateNo = NormalizePlate(l.PlateNo)

	query := `INSERT INTO vehicle_logs
		(id, plate_no, driver_name, company, purpose, entered_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + logColumns

	created, err := scanLog(s.db.QueryRowContext(
		ctx, query,
		l.ID, l.PlateNo, l.DriverName, l.Company, l.Purpose, l.EnteredAt, l.CreatedBy,
	))
	if err != nil {
		return nil, fmt.Errorf("create vehicle log: %w", err)
	}

	return created, nil
}

// Get retrieves a vehicle log by id.
func (s *PGStore) Get(
	ctx context.Context,
	id string,
) (*Log, error) {
	query := `SELECT ` + logColumns + ` FROM vehicle_logs WHERE id = $1`

	l, err := scanLog(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get vehicle log: %w", err)
	}

	return l, nil
}

// List returns the filtered page of logs, newest entry first, plus the
// total matching count.
func (s *PGStore) List(
	ctx context.Context,
	filter ListFilter,
) ([]Log, int, error) {
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
		add("entered_at >= $%d", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		add("entered_at <= $%d", *filter.DateTo)
	}
	if filter.OpenOnly {
		conds = append(conds, "exited_at IS NULL")
	}
	if filter.Plate != "" {
		add("plate_no ILIKE $%d", "%"+NormalizePlate(filter.Plate)+"%")
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := s.db.QueryRowContext(
		ctx, `SELECT COUNT(*) FROM vehicle_logs`+where, args...,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count vehicle logs: %w", err)
	}

	query := fmt.Sprintf(
		`SELECT %s FROM vehicle_logs%s ORDER BY entered_at DESC LIMIT $%d OFFSET $%d`,
		logColumns, where, len(args)+1, len(args)+2,
	)
	args = append(args, filter.PageSize, (filter.Page-1)*filter.PageSize)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list vehicle logs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	logs := make([]Log, 0, filter.PageSize)
	for rows.Next() {
		l, err := scanLog(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan vehicle log: %w", err)
		}
		logs = append(logs, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list vehicle logs: %w", err)
	}

	return logs, total, nil
}

// Exit stamps the exit time. The WHERE clause guards against a double
// exit without a transaction.
func (s *PGStore) Exit(
	ctx context.Context,
	id string,
	at time.Time,
) (*Log, error) {
	query := `UPDATE vehicle_logs
		SET exited_at = $2, updated_at = now()
		WHERE id = $1 AND exited_at IS NULL
		RETURNING ` + logColumns

	l, err := scanLog(s.db.QueryRowContext(ctx, query, id, at))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			if _, getErr := s.Get(ctx, id); getErr == nil {
				return nil, ErrAlreadyExited
			}
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("exit vehicle log: %w", err)
	}

	return l, nil
}

// Delete removes a vehicle log record.
func (s *PGStore) Delete(
	ctx context.Context,
	id string,
) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM vehicle_logs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete vehicle log: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete vehicle log: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
