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

// Package config defines the application's configuration schema.
package config

// Config represents the root structure of the YAML configuration file.
// This struct is used to unmarshal configuration data from Viper.
type Config struct {
	Server    Server    `mapstructure:"server"    mask:"struct"`
	Database  Database  `mapstructure:"database"  mask:"struct"`
	Admin     Admin     `mapstructure:"admin"     mask:"struct"`
	Audit     Audit     `mapstructure:"audit"`
	Telemetry Telemetry `mapstructure:"telemetry"`
	// Debug enable or disable debug option set from CLI.
	Debug bool `mapstructure:"debug"`
}

// Server configuration settings.
type Server struct {
	// Port the server will bind to.
	Port int `mapstructure:"port"`
	// Security contains security-related configuration for the server.
	Security Security `mapstructure:"security" mask:"struct"`
}

// Security represents security-related settings for the server.
type Security struct {
	// SigningKey is the key used for signing and validating tokens.
	SigningKey string `mapstructure:"signing_key" validate:"required" mask:"password"`
	// TokenTTL is the access token lifetime (e.g. "2h").
	TokenTTL string `mapstructure:"token_ttl"`
	// CookieName is the HTTP-only cookie carrying the access token.
	CookieName string `mapstructure:"cookie_name"`
	// CookieSecure marks the access cookie Secure (HTTPS only).
	CookieSecure bool `mapstructure:"cookie_secure"`
	// CORS Cross-Origin Resource Sharing settings for the server.
	CORS CORS `mapstructure:"cors"`
	// LoginRateLimit is the number of login attempts allowed per minute
	// per client IP.
	LoginRateLimit int `mapstructure:"login_rate_limit"`
}

// CORS represents the CORS (Cross-Origin Resource Sharing) settings.
type CORS struct {
	// List of origins allowed to access the server.
	AllowOrigins []string `mapstructure:"allow_origins,omitempty"`
}

// Database configuration settings.
type Database struct {
	// DSN is the PostgreSQL connection string.
	DSN string `mapstructure:"dsn" validate:"required" mask:"password"`
	// MaxOpenConns caps the connection pool size.
	MaxOpenConns int `mapstructure:"max_open_conns"`
	// MaxIdleConns caps the idle connections kept in the pool.
	MaxIdleConns int `mapstructure:"max_idle_conns"`
}

// Admin holds the first-run bootstrap administrator credentials. The account
// is only created when the user store is empty.
type Admin struct {
	// Email for the bootstrap administrator.
	Email string `mapstructure:"email"`
	// Password for the bootstrap administrator.
	Password string `mapstructure:"password" mask:"password"`
	// FullName for the bootstrap administrator.
	FullName string `mapstructure:"full_name"`
}

// Audit configuration for the audit trail.
type Audit struct {
	// RetentionDays is the age in days after which entries are eligible
	// for cleanup. Zero disables the scheduled sweeper.
	RetentionDays int `mapstructure:"retention_days"`
	// CleanupSchedule is the cron expression for the retention sweeper.
	CleanupSchedule string `mapstructure:"cleanup_schedule"`
}

// Telemetry configuration settings.
type Telemetry struct {
	Tracing TracingConfig `mapstructure:"tracing,omitempty"`
	Metrics MetricsConfig `mapstructure:"metrics,omitempty"`
}

// MetricsConfig configuration settings for Prometheus metrics.
type MetricsConfig struct {
	// Path is the HTTP path for the Prometheus scrape endpoint.
	// Defaults to "/metrics" when empty.
	Path string `mapstructure:"path"`
}

// TracingConfig configuration settings for distributed tracing.
type TracingConfig struct {
	// Enabled enables or disables tracing.
	Enabled bool `mapstructure:"enabled"`
	// Exporter selects the trace exporter: "stdout" or "otlp".
	Exporter string `mapstructure:"exporter"`
	// OTLPEndpoint is the gRPC endpoint for the OTLP exporter (e.g., "localhost:4317").
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`
}
