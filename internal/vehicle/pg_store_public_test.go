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

package vehicle_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/suite"

	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/vehicle"
)

type PGStorePublicTestSuite struct {
	suite.Suite

	db    *sql.DB
	mock  sqlmock.Sqlmock
	store *vehicle.PGStore
}

func (s *PGStorePublicTestSuite) SetupTest() {
	db, mock, err := sqlmock.New()
	s.Require().NoError(err)

	s.db = db
	s.mock = mock
	s.store = vehicle.NewPGStore(db)
}

func (s *PGStorePublicTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
	_ = s.db.Close()
}

func (s *PGStorePublicTestSuite) logRows(l vehicle.Log) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "plate_no", "driver_name", "company", "purpose",
		"entered_at", "exited_at", "created_by", "created_at", "updated_at",
	})

	var exited any
	if l.ExitedAt != nil {
		exited = *l.ExitedAt
	}
	var createdBy any
	if l.CreatedBy != nil {
		createdBy = *l.CreatedBy
	}

	rows.AddRow(
		l.ID, l.PlateNo, l.DriverName, l.Company, l.Purpose,
		l.EnteredAt, exited, createdBy, l.CreatedAt, l.UpdatedAt,
	)
	return rows
}

func (s *PGStorePublicTestSuite) TestCreateNormalizesPlate() {
	now := time.Now()
	want := vehicle.Log{
		ID:         "log-1",
		PlateNo:    "34ABC123",
		DriverName: "Ada Lovelace",
		EnteredAt:  now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	s.mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO vehicle_logs`)).
		WithArgs(
			"log-1", "34ABC123", "Ada Lovelace", "", "",
			sqlmock.AnyArg(), nil,
		).
		WillReturnRows(s.logRows(want))

	created, err := s.store.Create(context.Background(), vehicle.Log{
		ID:         "log-1",
		PlateNo:    "34 abc 123",
		DriverName: "Ada Lovelace",
	})

	s.NoError(err)
	s.Equal("34ABC123", created.PlateNo)
	s.Nil(created.ExitedAt)
}

func (s *PGStorePublicTestSuite) TestExit() {
	at := time.Now()
	want := vehicle.Log{
		ID:        "log-1",
		PlateNo:   "34ABC123",
		EnteredAt: at.Add(-time.Hour),
		ExitedAt:  &at,
	}

	s.mock.ExpectQuery(regexp.QuoteMeta(`exited_at IS NULL`)).
		WithArgs("log-1", at).
		WillReturnRows(s.logRows(want))

	l, err := s.store.Exit(context.Background(), "log-1", at)

	s.NoError(err)
	s.Require().NotNil(l.ExitedAt)
	s.WithinDuration(at, *l.ExitedAt, time.Second)
}

func (s *PGStorePublicTestSuite) TestExitAlreadyExited() {
	at := time.Now()
	closed := vehicle.Log{
		ID:        "log-1",
		PlateNo:   "34ABC123",
		EnteredAt: at.Add(-2 * time.Hour),
		ExitedAt:  &at,
	}

	// The guarded update matches no rows, then the existence probe finds
	// the already-closed log.
	s.mock.ExpectQuery(regexp.QuoteMeta(`exited_at IS NULL`)).
		WithArgs("log-1", at).
		WillReturnError(sql.ErrNoRows)
	s.mock.ExpectQuery(regexp.QuoteMeta(`SELECT`)).
		WithArgs("log-1").
		WillReturnRows(s.logRows(closed))

	l, err := s.store.Exit(context.Background(), "log-1", at)

	s.ErrorIs(err, vehicle.ErrAlreadyExited)
	s.Nil(l)
}

func (s *PGStorePublicTestSuite) TestExitNotFound() {
	at := time.Now()

	s.mock.ExpectQuery(regexp.QuoteMeta(`exited_at IS NULL`)).
		WithArgs("ghost", at).
		WillReturnError(sql.ErrNoRows)
	s.mock.ExpectQuery(regexp.QuoteMeta(`SELECT`)).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	l, err := s.store.Exit(context.Background(), "ghost", at)

	s.ErrorIs(err, vehicle.ErrNotFound)
	s.Nil(l)
}

func (s *PGStorePublicTestSuite) TestListOpenOnly() {
	now := time.Now()
	open := vehicle.Log{
		ID:        "log-1",
		PlateNo:   "34ABC123",
		EnteredAt: now,
	}

	s.mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM vehicle_logs WHERE exited_at IS NULL`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	s.mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY entered_at DESC`)).
		WithArgs(20, 0).
		WillReturnRows(s.logRows(open))

	logs, total, err := s.store.List(context.Background(), vehicle.ListFilter{
		OpenOnly: true,
	})

	s.NoError(err)
	s.Equal(1, total)
	s.Require().Len(logs, 1)
	s.Equal("log-1", logs[0].ID)
}

func (s *PGStorePublicTestSuite) TestListNormalizesPlateFilter() {
	now := time.Now()
	match := vehicle.Log{
		ID:        "log-1",
		PlateNo:   "34ABC123",
		EnteredAt: now,
	}

	s.mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM vehicle_logs WHERE plate_no ILIKE $1`)).
		WithArgs("%34ABC%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	s.mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY entered_at DESC`)).
		WithArgs("%34ABC%", 20, 0).
		WillReturnRows(s.logRows(match))

	logs, total, err := s.store.List(context.Background(), vehicle.ListFilter{
		Plate: "34 abc",
	})

	s.NoError(err)
	s.Equal(1, total)
	s.Require().Len(logs, 1)
}

func (s *PGStorePublicTestSuite) TestDeleteNotFound() {
	s.mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM vehicle_logs`)).
		WithArgs("ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := s.store.Delete(context.Background(), "ghost")

	s.ErrorIs(err, vehicle.ErrNotFound)
}

func TestPGStorePublicTestSuite(t *testing.T) {
	suite.Run(t, new(PGStorePublicTestSuite))
}
