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
	"time"

	"github.com/spf13/cobra"

	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/audit"
	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/storage"
)

// auditCleanupCmd represents the auditCleanup command.
var auditCleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Delete old audit entries",
	Long: `Delete audit entries older than the given number of days.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()

		days, _ := cmd.Flags().GetInt("older-than-days")
		if days < 1 {
			logFatal("invalid retention", fmt.Errorf("older-than-days must be positive"))
		}

		db, err := storage.Open(ctx, appConfig.Database)
		if err != nil {
			logFatal("failed to open database", err)
		}
		defer func() { _ = db.Close() }()

		cutoff := time.Now().AddDate(0, 0, -days)

		deleted, err := audit.NewPGStore(logger, db).DeleteOlderThan(ctx, cutoff)
		if err != nil {
			logFatal("failed to clean up audit entries", err)
		}

		logger.Info(
			"audit cleanup complete",
			slog.Int64("deleted", deleted),
			slog.Time("cutoff", cutoff),
		)
	},
}

func init() {
	auditCmd.AddCommand(auditCleanupCmd)

	auditCleanupCmd.PersistentFlags().Int("older-than-days", 0, "Delete entries older than this many days")

	_ = auditCleanupCmd.MarkPersistentFlagRequired("older-than-days")
}
