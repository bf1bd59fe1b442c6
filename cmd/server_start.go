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
	"context"

	"github.com/spf13/cobra"

	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/audit"
	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/cli"
	"github.com/doganmus/firma-ziyaretci-kayit-sub000/internal/telemetry"
)

// serverStartCmd represents the serverStart command.
var serverStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the server",
	Long: `Start the API server.

Connects to PostgreSQL, applies pending migrations, creates the bootstrap
admin when the user table is empty, and serves until SIGINT/SIGTERM.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()

		shutdownTracer, err := telemetry.InitTracer(
			ctx,
			appConfig.Telemetry.Tracing,
		)
		if err != nil {
			logFatal("failed to initialize tracer", err)
		}

		metricsHandler, metricsPath, shutdownMeter, err := telemetry.InitMeter(
			appConfig.Telemetry.Metrics,
		)
		if err != nil {
			logFatal("failed to initialize meter", err)
		}

		b := openStores(ctx, logger.With("component", "storage"))
		sm := setupServer(
			logger.With("component", "api"), b, metricsHandler, metricsPath,
		)

		components := []cli.Lifecycle{sm}

		if appConfig.Audit.RetentionDays > 0 {
			sweeper, err := audit.NewRetention(
				logger.With("component", "audit"),
				b.audit,
				appConfig.Audit.CleanupSchedule,
				appConfig.Audit.RetentionDays,
			)
			if err != nil {
				logFatal("failed to create retention sweeper", err)
			}
			components = append(components, sweeper)
		}

		group := cli.NewGroup(components...)

		group.Start()
		cli.RunServer(ctx, group, func() {
			_ = shutdownMeter(context.Background())
			_ = shutdownTracer(context.Background())
			_ = b.db.Close()
		})
	},
}

func init() {
	serverCmd.AddCommand(serverStartCmd)
}
