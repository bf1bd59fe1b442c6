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
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/cli"
	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/storage"
	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/user"
)

// userListCmd represents the userList command.
var userListCmd = &cobra.Command{
	Use:   "list",
	Short: "List user accounts",
	Long: `List all user accounts.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()

		db, err := storage.Open(ctx, appConfig.Database)
		if err != nil {
			logFatal("failed to open database", err)
		}
		defer func() { _ = db.Close() }()

		users, err := user.NewPGStore(db).List(ctx)
		if err != nil {
			logFatal("failed to list users", err)
		}

		if jsonOutput {
			out, err := json.MarshalIndent(users, "", "  ")
			if err != nil {
				logFatal("failed to marshal users", err)
			}
			fmt.Println(string(out))
			return
		}

		rows := make([][]string, 0, len(users))
		for _, u := range users {
			rows = append(rows, []string{
				u.ID,
				u.Email,
				u.FullName,
				string(u.Role),
				u.CreatedAt.Format(time.RFC3339),
			})
		}

		cli.PrintStyledTable([]cli.Section{
			{
				Title:   "Users",
				Headers: []string{"ID", "Email", "Full Name", "Role", "Created"},
				Rows:    rows,
			},
		})
	},
}

func init() {
	userCmd.AddCommand(userListCmd)
}
