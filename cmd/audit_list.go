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
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/audit"
	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/cli"
	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/storage"
)

// auditListCmd represents the auditList command.
var auditListCmd = &cobra.Command{
	Use:   "list",
	Short: "List audit entries",
	Long: `List audit trail entries, newest first.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()

		filter := audit.ListFilter{SortDesc: true}
		filter.Method, _ = cmd.Flags().GetString("method")
		filter.Path, _ = cmd.Flags().GetString("path")
		filter.UserEmail, _ = cmd.Flags().GetString("user-email")
		filter.Page, _ = cmd.Flags().GetInt("page")
		filter.PageSize, _ = cmd.Flags().GetInt("page-size")

		db, err := storage.Open(ctx, appConfig.Database)
		if err != nil {
			logFatal("failed to open database", err)
		}
		defer func() { _ = db.Close() }()

		entries, total, err := audit.NewPGStore(logger, db).List(ctx, filter)
		if err != nil {
			logFatal("failed to list audit entries", err)
		}

		if jsonOutput {
			out, err := json.MarshalIndent(entries, "", "  ")
			if err != nil {
				logFatal("failed to marshal audit entries", err)
			}
			fmt.Println(string(out))
			return
		}

		rows := make([][]string, 0, len(entries))
		for _, e := range entries {
			userEmail := ""
			if e.UserEmail != nil {
				userEmail = *e.UserEmail
			}
			rows = append(rows, []string{
				e.Timestamp.Format(time.RFC3339),
				e.Method,
				e.Path,
				strconv.Itoa(e.StatusCode),
				strconv.FormatInt(e.DurationMs, 10),
				userEmail,
			})
		}

		cli.PrintStyledTable([]cli.Section{
			{
				Title:   fmt.Sprintf("Audit Entries (%d total)", total),
				Headers: []string{"Timestamp", "Method", "Path", "Status", "Duration (ms)", "User"},
				Rows:    rows,
			},
		})
	},
}

func init() {
	auditCmd.AddCommand(auditListCmd)

	auditListCmd.PersistentFlags().StringP("method", "m", "", "Filter by HTTP method")
	auditListCmd.PersistentFlags().StringP("path", "p", "", "Filter by path substring")
	auditListCmd.PersistentFlags().StringP("user-email", "e", "", "Filter by user email substring")
	auditListCmd.PersistentFlags().Int("page", 1, "Page number")
	auditListCmd.PersistentFlags().Int("page-size", 20, "Entries per page")
}
