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
	"time"

	"github.com/spf13/cobra"

	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/authtoken"
	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/cli"
)

// TokenValidator parses and validates JWT tokens.
type TokenValidator interface {
	Validate(
		tokenString string,
		signingKey string,
	) (*authtoken.CustomClaims, error)
}

// tokenValidateCmd represents the tokenValidate command.
var tokenValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate an access token and print its claims",
	Long: `Validate an access token against the configured signing key and print the
identity it carries. Fails when the signature is bad, the token has expired,
or the role claim is not one of ADMIN, OPERATOR, or VIEWER.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		signingKey := appConfig.Server.Security.SigningKey
		tokenString, _ := cmd.Flags().GetString("token")

		var tm TokenValidator = authtoken.New(logger)
		claims, err := tm.Validate(tokenString, signingKey)
		if err != nil {
			logFatal("failed to validate token", err)
		}

		fmt.Println()
		cli.PrintKV("Subject", claims.Subject)
		cli.PrintKV("Email", claims.Email)
		cli.PrintKV("Role", claims.Role)
		cli.PrintKV("Issued", claims.IssuedAt.Format(time.RFC3339))
		cli.PrintKV("Expires", claims.ExpiresAt.Format(time.RFC3339))
		cli.PrintKV("Valid for", time.Until(claims.ExpiresAt.Time).Round(time.Second).String())
	},
}

func init() {
	tokenCmd.AddCommand(tokenValidateCmd)

	tokenValidateCmd.PersistentFlags().StringP("token", "t", "", "The Token string")

	_ = tokenValidateCmd.MarkPersistentFlagRequired("token")
}
