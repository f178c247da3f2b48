// Package config loads the YAML configuration of confdesk.
package config

import (
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server      ServerConfig      `yaml:"server" json:"server" jsonschema:"description=Server configuration"`
	Database    DatabaseConfig    `yaml:"database" json:"database" jsonschema:"description=Database configuration"`
	Storage     StorageConfig     `yaml:"storage" json:"storage" jsonschema:"description=Article file storage"`
	Cache       CacheConfig       `yaml:"cache" json:"cache" jsonschema:"description=Cache configuration"`
	Scheduler   SchedulerConfig   `yaml:"scheduler" json:"scheduler" jsonschema:"description=Background jobs"`
	Preferences PreferencesConfig `yaml:"preferences" json:"preferences" jsonschema:"description=Defaults of user preferences"`
	Auth        AuthConfig        `yaml:"auth" json:"auth" jsonschema:"description=Authentication settings"`
}

// ServerConfig holds http server settings
type ServerConfig struct {
	Listen    string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
	Timeout   time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	BaseURL   string        `yaml:"base_url" json:"base_url" jsonschema:"default=http://localhost:8080,description=Public URL of the service used in signed file links"`
	RateLimit float64       `yaml:"rate_limit" json:"rate_limit" jsonschema:"default=5,minimum=0,description=Mutations per second allowed for one user (0 disables)"`
	RateBurst int           `yaml:"rate_burst" json:"rate_burst" jsonschema:"default=10,minimum=1,description=Burst of mutations allowed for one user"`
}

// DatabaseConfig holds sqlite settings
type DatabaseConfig struct {
	DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:confdesk.db?cache=shared&mode=rwc&_txlock=immediate,description=Database connection string"`
	MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
	MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
}

// StorageConfig holds object storage settings
type StorageConfig struct {
	Dir           string        `yaml:"dir" json:"dir" jsonschema:"default=var/files,description=Directory of uploaded article files"`
	SigningKey    string        `yaml:"signing_key" json:"signing_key" jsonschema:"required,description=HMAC key of signed file urls (can use environment variable)"`
	SignedURLTTL  time.Duration `yaml:"signed_url_ttl" json:"signed_url_ttl" jsonschema:"default=1h,description=Lifetime of signed file urls"`
	MaxUploadSize int64         `yaml:"max_upload_size" json:"max_upload_size" jsonschema:"default=11534336,description=Maximum request size of an article upload in bytes"`
}

// CacheConfig holds cache settings
type CacheConfig struct {
	ParticipationTTL time.Duration `yaml:"participation_ttl" json:"participation_ttl" jsonschema:"default=5m,description=Age after which cached participations are refreshed"`
}

// SchedulerConfig holds background job settings
type SchedulerConfig struct {
	Enabled              bool          `yaml:"enabled" json:"enabled" jsonschema:"default=true,description=Run overdue review reminders"`
	OverdueCheckInterval time.Duration `yaml:"overdue_check_interval" json:"overdue_check_interval" jsonschema:"default=15m,description=Interval between overdue assignment checks"`
	BatchSize            int           `yaml:"batch_size" json:"batch_size" jsonschema:"default=100,minimum=1,description=Overdue assignments handled per batch"`
	MaxWorkers           int           `yaml:"max_workers" json:"max_workers" jsonschema:"default=4,minimum=1,description=Concurrent reminder writers"`
}

// PreferencesConfig holds defaults of user preferences
type PreferencesConfig struct {
	DefaultPageSize int    `yaml:"default_page_size" json:"default_page_size" jsonschema:"default=8,enum=8,enum=12,enum=20,enum=50,description=Page size of users without a preference"`
	DefaultLanguage string `yaml:"default_language" json:"default_language" jsonschema:"default=en,enum=en,enum=uk,description=Language of users without a preference"`
}

// AuthConfig holds authentication settings
type AuthConfig struct {
	Organizers []string `yaml:"organizers" json:"organizers" jsonschema:"description=Emails granted the organizer role on first sign-in"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	return Parse(data)
}

// Parse builds the configuration from YAML, expanding environment variables and applying defaults
func Parse(data []byte) (*Config, error) {
	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	cfg := Config{Scheduler: SchedulerConfig{Enabled: true}}
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.setDefaults()

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// schema check is supplementary, log and go on
	if err := VerifyAgainstEmbeddedSchema(data); err != nil {
		lgr.Printf("[WARN] config doesn't match schema: %v", err)
	}
	return &cfg, nil
}

func (c *Config) setDefaults() {
	// server
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}
	if c.Server.BaseURL == "" {
		c.Server.BaseURL = "http://localhost:8080"
	}
	c.Server.BaseURL = strings.TrimSuffix(c.Server.BaseURL, "/")
	if c.Server.RateBurst == 0 {
		c.Server.RateBurst = 10
	}

	// database
	if c.Database.DSN == "" {
		c.Database.DSN = "file:confdesk.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}

	// storage
	if c.Storage.Dir == "" {
		c.Storage.Dir = "var/files"
	}
	if c.Storage.SignedURLTTL == 0 {
		c.Storage.SignedURLTTL = time.Hour
	}
	if c.Storage.MaxUploadSize == 0 {
		c.Storage.MaxUploadSize = 11 << 20 // article limit plus form overhead
	}

	if c.Cache.ParticipationTTL == 0 {
		c.Cache.ParticipationTTL = 5 * time.Minute
	}

	// scheduler
	if c.Scheduler.OverdueCheckInterval == 0 {
		c.Scheduler.OverdueCheckInterval = 15 * time.Minute
	}
	if c.Scheduler.BatchSize == 0 {
		c.Scheduler.BatchSize = 100
	}
	if c.Scheduler.MaxWorkers == 0 {
		c.Scheduler.MaxWorkers = 4
	}

	// preferences
	if c.Preferences.DefaultPageSize == 0 {
		c.Preferences.DefaultPageSize = 8
	}
	if c.Preferences.DefaultLanguage == "" {
		c.Preferences.DefaultLanguage = "en"
	}

	for i, email := range c.Auth.Organizers {
		c.Auth.Organizers[i] = strings.ToLower(strings.TrimSpace(email))
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}
	if cfg.Server.RateLimit < 0 {
		return fmt.Errorf("server.rate_limit must be non-negative")
	}
	if cfg.Server.RateBurst < 1 {
		return fmt.Errorf("server.rate_burst must be at least 1")
	}

	if cfg.Storage.SigningKey == "" {
		return fmt.Errorf("storage.signing_key is required")
	}
	if cfg.Storage.SignedURLTTL < time.Minute {
		return fmt.Errorf("storage.signed_url_ttl must be at least 1 minute")
	}
	if cfg.Storage.MaxUploadSize < 1<<20 {
		return fmt.Errorf("storage.max_upload_size must be at least 1MiB")
	}

	if cfg.Cache.ParticipationTTL < time.Second {
		return fmt.Errorf("cache.participation_ttl must be at least 1 second")
	}

	if cfg.Scheduler.Enabled && cfg.Scheduler.OverdueCheckInterval < time.Second {
		return fmt.Errorf("scheduler.overdue_check_interval must be at least 1 second")
	}
	if cfg.Scheduler.BatchSize < 1 || cfg.Scheduler.MaxWorkers < 1 {
		return fmt.Errorf("scheduler.batch_size and scheduler.max_workers must be positive")
	}

	if !slices.Contains([]int{8, 12, 20, 50}, cfg.Preferences.DefaultPageSize) {
		return fmt.Errorf("preferences.default_page_size must be one of 8, 12, 20, 50")
	}
	if !slices.Contains([]string{"en", "uk"}, cfg.Preferences.DefaultLanguage) {
		return fmt.Errorf("preferences.default_language must be en or uk")
	}

	for _, email := range cfg.Auth.Organizers {
		if !strings.Contains(email, "@") {
			return fmt.Errorf("auth.organizers: invalid email %q", email)
		}
	}
	return nil
}
