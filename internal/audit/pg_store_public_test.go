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

package audit_test

import (
	"context"
	"database/sql"
	"log/slog"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/suite"

	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/audit"
)

type PGStorePublicTestSuite struct {
	suite.Suite

	db    *sql.DB
	mock  sqlmock.Sqlmock
	store *audit.PGStore
}

func (s *PGStorePublicTestSuite) SetupTest() {
	db, mock, err := sqlmock.New()
	s.Require().NoError(err)

	s.db = db
	s.mock = mock
	s.store = audit.NewPGStore(slog.Default(), db)
}

func (s *PGStorePublicTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
	_ = s.db.Close()
}

func (s *PGStorePublicTestSuite) entryRows(entries ...audit.Entry) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "created_at", "method", "path", "status_code", "duration_ms",
		"user_id", "user_email", "user_role", "ip_address", "user_agent",
		"action", "resource", "payload",
	})
	for _, e := range entries {
		rows.AddRow(
			e.ID, e.Timestamp, e.Method, e.Path, e.StatusCode, e.DurationMs,
			strOrNil(e.UserID), strOrNil(e.UserEmail), strOrNil(e.UserRole),
			e.IPAddress, e.UserAgent,
			strOrNil(e.Action), strOrNil(e.Resource), []byte(nil),
		)
	}
	return rows
}

func strOrNil(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

func (s *PGStorePublicTestSuite) TestWrite() {
	userID := "user-1"
	userEmail := "admin@example.com"
	userRole := "ADMIN"

	entry := audit.Entry{
		ID:         "entry-1",
		Timestamp:  time.Now(),
		Method:     "POST",
		Path:       "/api/visits",
		StatusCode: 201,
		DurationMs: 12,
		UserID:     &userID,
		UserEmail:  &userEmail,
		UserRole:   &userRole,
		IPAddress:  "10.0.0.1",
		UserAgent:  "test-agent",
	}

	s.mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO audit_entries`)).
		WithArgs(
			entry.ID, entry.Timestamp, entry.Method, entry.Path,
			entry.StatusCode, entry.DurationMs,
			entry.UserID, entry.UserEmail, entry.UserRole,
			entry.IPAddress, entry.UserAgent,
			nil, nil, nil,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	s.NoError(s.store.Write(context.Background(), entry))
}

func (s *PGStorePublicTestSuite) TestGetNotFound() {
	s.mock.ExpectQuery(regexp.QuoteMeta(`SELECT`)).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	entry, err := s.store.Get(context.Background(), "ghost")

	s.ErrorIs(err, audit.ErrNotFound)
	s.Nil(entry)
}

func (s *PGStorePublicTestSuite) TestList() {
	entry := audit.Entry{
		ID:         "entry-1",
		Timestamp:  time.Now(),
		Method:     "GET",
		Path:       "/api/visits",
		StatusCode: 200,
		DurationMs: 4,
		IPAddress:  "10.0.0.1",
		UserAgent:  "test-agent",
	}

	s.mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM audit_entries WHERE method = $1`)).
		WithArgs("GET").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	s.mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY created_at DESC LIMIT $2 OFFSET $3`)).
		WithArgs("GET", audit.DefaultPageSize, 0).
		WillReturnRows(s.entryRows(entry))

	entries, total, err := s.store.List(context.Background(), audit.ListFilter{
		Method:   "GET",
		SortDesc: true,
	})

	s.NoError(err)
	s.Equal(1, total)
	s.Require().Len(entries, 1)
	s.Equal("entry-1", entries[0].ID)
	s.Nil(entries[0].UserID)
}

func (s *PGStorePublicTestSuite) TestListSubstringFiltersEscapeWildcards() {
	s.mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM audit_entries WHERE path ILIKE $1`)).
		WithArgs(`%\%admin\_%`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	s.mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY created_at ASC`)).
		WithArgs(`%\%admin\_%`, audit.DefaultPageSize, 0).
		WillReturnRows(s.entryRows())

	entries, total, err := s.store.List(context.Background(), audit.ListFilter{
		Path: "%admin_",
	})

	s.NoError(err)
	s.Zero(total)
	s.Empty(entries)
}

func (s *PGStorePublicTestSuite) TestDeleteOlderThan() {
	cutoff := time.Now().AddDate(0, 0, -90)

	s.mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM audit_entries WHERE created_at < $1`)).
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 42))

	removed, err := s.store.DeleteOlderThan(context.Background(), cutoff)

	s.NoError(err)
	s.Equal(int64(42), removed)
}

func TestPGStorePublicTestSuite(t *testing.T) {
	suite.Run(t, new(PGStorePublicTestSuite))
}
