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

package user_test

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/user"
)

// fakeUserStore is a minimal in-memory user store for bootstrap testing.
type fakeUserStore struct {
	user.Store

	count     int
	countErr  error
	created   []user.User
	createErr error
}

func (f *fakeUserStore) Count(_ context.Context) (int, error) {
	return f.count, f.countErr
}

func (f *fakeUserStore) Create(_ context.Context, u user.User) (*user.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}

	u.ID = "generated-id"
	f.created = append(f.created, u)
	return &u, nil
}

type BootstrapPublicTestSuite struct {
	suite.Suite
}

func (s *BootstrapPublicTestSuite) TestEnsureDefaultAdminCreatesWhenEmpty() {
	store := &fakeUserStore{count: 0}

	err := user.EnsureDefaultAdmin(
		context.Background(), store, slog.Default(),
		"admin@example.com", "Sup3r$ecret", "Default Admin",
	)

	s.NoError(err)
	s.Require().Len(store.created, 1)
	s.Equal("admin@example.com", store.created[0].Email)
	s.Equal(user.RoleAdmin, store.created[0].Role)
	s.NotEqual("Sup3r$ecret", store.created[0].PasswordHash)
	s.True(user.CheckPassword(store.created[0].PasswordHash, "Sup3r$ecret"))
}

func (s *BootstrapPublicTestSuite) TestEnsureDefaultAdminSkipsWhenUsersExist() {
	store := &fakeUserStore{count: 5}

	err := user.EnsureDefaultAdmin(
		context.Background(), store, slog.Default(),
		"admin@example.com", "Sup3r$ecret", "Default Admin",
	)

	s.NoError(err)
	s.Empty(store.created)
}

func (s *BootstrapPublicTestSuite) TestEnsureDefaultAdminToleratesLostRace() {
	store := &fakeUserStore{count: 0, createErr: user.ErrEmailTaken}

	err := user.EnsureDefaultAdmin(
		context.Background(), store, slog.Default(),
		"admin@example.com", "Sup3r$ecret", "Default Admin",
	)

	s.NoError(err)
}

func (s *BootstrapPublicTestSuite) TestEnsureDefaultAdminPropagatesErrors() {
	store := &fakeUserStore{count: 0, createErr: fmt.Errorf("connection lost")}

	err := user.EnsureDefaultAdmin(
		context.Background(), store, slog.Default(),
		"admin@example.com", "Sup3r$ecret", "Default Admin",
	)

	s.Error(err)
	s.Contains(err.Error(), "connection lost")
}

func TestBootstrapPublicTestSuite(t *testing.T) {
	suite.Run(t, new(BootstrapPublicTestSuite))
}
