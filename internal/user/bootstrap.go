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

package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// EnsureDefaultAdmin creates an ADMIN user when the store is empty. It is
// idempotent: the check-then-create race under concurrent cold starts is
// resolved by the unique constraint on email, and the duplicate error is
// swallowed rather than taking a lock.
func EnsureDefaultAdmin(
	ctx context.Context,
	store Store,
	logger *slog.Logger,
	email string,
	password string,
	fullName string,
) error {
	count, err := store.Count(ctx)
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := HashPassword(password)
	if err != nil {
		return err
	}

	created, err := store.Create(ctx, User{
		Email:        email,
		PasswordHash: hash,
		FullName:     fullName,
		Role:         RoleAdmin,
	})
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			// Another instance won the race.
			logger.Debug("default admin already exists", slog.String("email", email))
			return nil
		}
		return fmt.Errorf("create default admin: %w", err)
	}

	logger.Info(
		"created default admin user",
		slog.String("id", created.ID),
		slog.String("email", created.Email),
	)

	return nil
}
