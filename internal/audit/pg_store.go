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

package audit

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// ensure PGStore implements Store at compile time.
var _ Store = (*PGStore)(nil)

// PGStore implements Store backed by a PostgreSQL audit_entries table.
type PGStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewPGStore creates a new PGStore.
func NewPGStore(
	logger *slog.Logger,
	db *sql.DB,
) *PGStore {
	return &PGStore{
		db:     db,
		logger: logger,
	}
}

const entryColumns = `id, created_at, method, path, status_code, duration_ms,
	user_id, user_email, user_role, ip_address, user_agent, action, resource, payload`

// Write persists a single audit entry. Entries are append-only.
func (s *PGStore) Write(
	ctx context.Context,
	entry Entry,
) error {
	query := `INSERT INTO audit_entries
		(id, created_at, method, path, status_code, duration_ms,
		 user_id, user_email, user_role, ip_address, user_agent, action, resource, payload)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	var payload any
	if len(entry.Payload) > 0 {
		payload = []byte(entry.Payload)
	}

	_, err := s.db.ExecContext(
		ctx, query,
		entry.ID, entry.Timestamp, entry.Method, entry.Path,
		entry.StatusCode, entry.DurationMs,
		entry.UserID, entry.UserEmail, entry.UserRole,
		entry.IPAddress, entry.UserAgent,
		entry.Action, entry.Resource, payload,
	)
	if err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}

	return nil
}

// Get retrieves a single audit entry by ID.
func (s *PGStore) Get(
	ctx context.Context,
	id string,
) (*Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM audit_entries WHERE id = $1`

	entry, err := scanEntry(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get audit entry: %w", err)
	}

	return entry, nil
}

// List returns the filtered page plus the total matching count.
func (s *PGStore) List(
	ctx context.Context,
	filter ListFilter,
) ([]Entry, int, error) {
	sortColumn, limit, offset := filter.Normalize()

	where, args := buildWhere(filter)

	var total int
	countQuery := `SELECT COUNT(*) FROM audit_entries` + where
	if err := s.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count audit entries: %w", err)
	}

	order := "ASC"
	if filter.SortDesc {
		order = "DESC"
	}

	query := fmt.Sprintf(
		`SELECT %s FROM audit_entries%s ORDER BY %s %s LIMIT $%d OFFSET $%d`,
		entryColumns, where, sortColumn, order, len(args)+1, len(args)+2,
	)
	args = append(args, limit, offset)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list audit entries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	entries := make([]Entry, 0, limit)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan audit entry: %w", err)
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list audit entries: %w", err)
	}

	return entries, total, nil
}

// DeleteOlderThan bulk-deletes entries created before cutoff.
func (s *PGStore) DeleteOlderThan(
	ctx context.Context,
	cutoff time.Time,
) (int64, error) {
	res, err := s.db.ExecContext(
		ctx, `DELETE FROM audit_entries WHERE created_at < $1`, cutoff,
	)
	if err != nil {
		return 0, fmt.Errorf("delete audit entries: %w", err)
	}

	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete audit entries: %w", err)
	}

	return removed, nil
}

// buildWhere assembles the WHERE clause and positional args for filter.
func buildWhere(filter ListFilter) (string, []any) {
	conds := make([]string, 0, 8)
	args := make([]any, 0, 8)

	add := func(cond string, value any) {
		args = append(args, value)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.DateFrom != nil {
		add("created_at >= $%d", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		add("created_at <= $%d", *filter.DateTo)
	}
	if filter.Method != "" {
		add("method = $%d", filter.Method)
	}
	if filter.StatusFrom > 0 {
		add("status_code >= $%d", filter.StatusFrom)
	}
	if filter.StatusTo > 0 {
		add("status_code <= $%d", filter.StatusTo)
	}
	if filter.Path != "" {
		add("path ILIKE $%d", "%"+escapeLike(filter.Path)+"%")
	}
	if filter.UserEmail != "" {
		add("user_email ILIKE $%d", "%"+escapeLike(filter.UserEmail)+"%")
	}
	if filter.UserID != "" {
		add("user_id = $%d", filter.UserID)
	}

	if len(conds) == 0 {
		return "", args
	}

	return " WHERE " + strings.Join(conds, " AND "), args
}

// escapeLike escapes LIKE wildcards in user-supplied substrings.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

func scanEntry(row interface{ Scan(...any) error }) (*Entry, error) {
	var (
		e       Entry
		payload []byte
	)

	err := row.Scan(
		&e.ID, &e.Timestamp, &e.Method, &e.Path, &e.StatusCode, &e.DurationMs,
		&e.UserID, &e.UserEmail, &e.UserRole, &e.IPAddress, &e.UserAgent,
		&e.Action, &e.Resource, &payload,
	)
	if err != nil {
		return nil, err
	}

	if len(payload) > 0 {
		e.Payload = payload
	}

	return &e, nil
}
