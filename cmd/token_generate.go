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
	"time"

	"github.com/spf13/cobra"

	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/authtoken"
	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/user"
)

// TokenGenerator generates signed JWT tokens.
type TokenGenerator interface {
	Generate(
		signingKey string,
		subject string,
		email string,
		role string,
		ttl time.Duration,
	) (string, error)
}

// tokenGenerateCmd represents the tokenGenerate command.
var tokenGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a new token",
	Long: `Generate a new access token for a given subject, email, and role.
Useful for scripting against the API without going through the login flow.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		signingKey := appConfig.Server.Security.SigningKey
		subject, _ := cmd.Flags().GetString("subject")
		email, _ := cmd.Flags().GetString("email")
		role, _ := cmd.Flags().GetString("role")

		var tm TokenGenerator = authtoken.New(logger)
		token, err := tm.Generate(
			signingKey,
			subject,
			email,
			role,
			appConfig.Server.Security.TokenTTLDuration(),
		)
		if err != nil {
			logFatal("failed to generate token", err)
		}

		logger.Info(
			"generated token",
			slog.String("token", token),
			slog.String("subject", subject),
			slog.String("email", email),
			slog.String("role", role),
		)
	},
}

func init() {
	tokenCmd.AddCommand(tokenGenerateCmd)

	allowedRoles := make([]string, 0, len(user.AllRoles))
	for _, r := range user.AllRoles {
		allowedRoles = append(allowedRoles, string(r))
	}
	usage := fmt.Sprintf("Role for the token (allowed: %s)", strings.Join(allowedRoles, ", "))

	tokenGenerateCmd.PersistentFlags().
		StringP("subject", "u", "", "Subject for the token (e.g., user ID or unique identifier)")
	tokenGenerateCmd.PersistentFlags().
		StringP("email", "e", "", "Email claim for the token")
	tokenGenerateCmd.PersistentFlags().
		StringP("role", "r", "", usage)

	_ = tokenGenerateCmd.MarkPersistentFlagRequired("subject")
	_ = tokenGenerateCmd.MarkPersistentFlagRequired("email")
	_ = tokenGenerateCmd.MarkPersistentFlagRequired("role")

	tokenGenerateCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		role, _ := cmd.Flags().GetString("role")

		if !user.ValidRole(user.Role(role)) {
			logFatal(
				"invalid role",
				fmt.Errorf("unsupported role: %s", role),
				"allowed", strings.Join(allowedRoles, ", "),
			)
		}
	}
}
