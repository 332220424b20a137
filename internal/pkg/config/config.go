package config

import (
	"fmt"
	"strings"
	"time"

	"reminder-notifier/internal/infrastructure/scheduler"

	"github.com/ilyakaznacheev/cleanenv"
)

// Delivery channel kinds accepted by DELIVERY_CHANNEL.
const (
	ChannelSendGrid = "sendgrid"
	ChannelLine     = "line"
	ChannelLog      = "log"
)

// Config is the root application configuration, read from the environment.
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Scheduler SchedulerConfig
	Delivery  DeliveryConfig
	SendGrid  SendGridConfig
	Line      LineConfig
	Log       LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `env:"PORT"                    env-default:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT"     env-default:"1m"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

// DatabaseConfig holds SQLite connection settings.
type DatabaseConfig struct {
	URL           string        `env:"BLUEPRINT_DB_URL"  env-default:"reminders.db"`
	SlowThreshold time.Duration `env:"DB_SLOW_THRESHOLD" env-default:"200ms"`
}

// SchedulerConfig controls the periodic delivery trigger.
type SchedulerConfig struct {
	Spec          string `env:"SCHEDULER_SPEC"            env-default:"@every 5m"`
	SkipIfRunning bool   `env:"SCHEDULER_SKIP_IF_RUNNING" env-default:"false"`
	RunOnStartup  bool   `env:"SCHEDULER_RUN_ON_STARTUP"  env-default:"true"`
}

// DeliveryConfig controls the delivery coordinator and channel selection.
type DeliveryConfig struct {
	Channel     string        `env:"DELIVERY_CHANNEL"      env-default:"sendgrid"`
	Concurrency int           `env:"DELIVERY_CONCURRENCY"  env-default:"10"`
	SendTimeout time.Duration `env:"DELIVERY_SEND_TIMEOUT" env-default:"15s"`
	TimeZone    string        `env:"DELIVERY_TIME_ZONE"    env-default:"UTC"`
}

// SendGridConfig holds email credentials. An empty APIKey means email is not configured.
type SendGridConfig struct {
	APIKey    string `env:"SENDGRID_API_KEY"`
	FromEmail string `env:"SENDGRID_FROM_EMAIL" env-default:"reminder@your-app.com"`
	FromName  string `env:"SENDGRID_FROM_NAME"  env-default:"My Assistant"`
}

// LineConfig holds LINE Messaging API credentials.
type LineConfig struct {
	ChannelSecret string `env:"CHANNEL_SECRET"`
	ChannelToken  string `env:"CHANNEL_ACCESS_TOKEN"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `env:"LOG_LEVEL"  env-default:"info"`
	Format string `env:"LOG_FORMAT" env-default:"text"`
}

// Configured reports whether SendGrid credentials are present.
func (c SendGridConfig) Configured() bool {
	return c.APIKey != "" && c.FromEmail != ""
}

// Configured reports whether LINE credentials are present.
func (c LineConfig) Configured() bool {
	return c.ChannelSecret != "" && c.ChannelToken != ""
}

// Load reads configuration from environment variables and applies defaults.
// Callers wanting .env support load it before calling Load.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// Validate checks business rules on the loaded configuration.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535 (got %d)", c.Server.Port)
	}
	if strings.TrimSpace(c.Scheduler.Spec) == "" {
		return fmt.Errorf("SCHEDULER_SPEC must not be empty")
	}
	if err := scheduler.ValidateSpec(c.Scheduler.Spec); err != nil {
		return fmt.Errorf("SCHEDULER_SPEC: %w", err)
	}
	if c.Delivery.Concurrency <= 0 {
		return fmt.Errorf("DELIVERY_CONCURRENCY must be > 0 (got %d)", c.Delivery.Concurrency)
	}
	if c.Delivery.SendTimeout <= 0 {
		return fmt.Errorf("DELIVERY_SEND_TIMEOUT must be > 0 (got %s)", c.Delivery.SendTimeout)
	}
	if _, err := time.LoadLocation(c.Delivery.TimeZone); err != nil {
		return fmt.Errorf("DELIVERY_TIME_ZONE: %w", err)
	}

	c.Delivery.Channel = strings.ToLower(strings.TrimSpace(c.Delivery.Channel))
	switch c.Delivery.Channel {
	case ChannelSendGrid, ChannelLine, ChannelLog:
	default:
		return fmt.Errorf("DELIVERY_CHANNEL must be one of %s, %s, %s (got %q)",
			ChannelSendGrid, ChannelLine, ChannelLog, c.Delivery.Channel)
	}
	return nil
}

// Location returns the time zone used when formatting due times in notifications.
// Validate has already checked the zone name.
func (c DeliveryConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}
