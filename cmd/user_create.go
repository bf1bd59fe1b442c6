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

package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/storage"
	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/user"
	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/validation"
)

// userCreateRequest carries the flag values through struct validation so
// the CLI enforces the same rules as the API.
type userCreateRequest struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,strong_password"`
	FullName string `validate:"required"`
	Role     string `validate:"required,oneof=ADMIN OPERATOR VIEWER"`
}

// userCreateCmd represents the userCreate command.
var userCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new user account",
	Long: `Create a new user account directly in the database.
Applies the same email, password, and role rules as the API.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()

		req := userCreateRequest{}
		req.Email, _ = cmd.Flags().GetString("email")
		req.Password, _ = cmd.Flags().GetString("password")
		req.FullName, _ = cmd.Flags().GetString("full-name")
		req.Role, _ = cmd.Flags().GetString("role")

		if msg, ok := validation.Struct(req); !ok {
			logFatal("invalid user", fmt.Errorf("%s", msg))
		}

		db, err := storage.Open(ctx, appConfig.Database)
		if err != nil {
			logFatal("failed to open database", err)
		}
		defer func() { _ = db.Close() }()

		hash, err := user.HashPassword(req.Password)
		if err != nil {
			logFatal("failed to hash password", err)
		}

		created, err := user.NewPGStore(db).Create(ctx, user.User{
			Email:        strings.ToLower(req.Email),
			PasswordHash: hash,
			FullName:     req.FullName,
			Role:         user.Role(req.Role),
		})
		if err != nil {
			logFatal("failed to create user", err)
		}

		logger.Info(
			"created user",
			slog.String("id", created.ID),
			slog.String("email", created.Email),
			slog.String("role", string(created.Role)),
		)
	},
}

func init() {
	userCmd.AddCommand(userCreateCmd)

	userCreateCmd.PersistentFlags().StringP("email", "e", "", "Email address for the account")
	userCreateCmd.PersistentFlags().StringP("password", "p", "", "Password for the account")
	userCreateCmd.PersistentFlags().StringP("full-name", "n", "", "Full name for the account")
	userCreateCmd.PersistentFlags().StringP("role", "r", "", "Role for the account (ADMIN, OPERATOR, VIEWER)")

	_ = userCreateCmd.MarkPersistentFlagRequired("email")
	_ = userCreateCmd.MarkPersistentFlagRequired("password")
	_ = userCreateCmd.MarkPersistentFlagRequired("full-name")
	_ = userCreateCmd.MarkPersistentFlagRequired("role")
}
