package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

var Module = fx.Module("config",
	fx.Provide(NewConfig),
)

// Contact transports understood by the submission package.
const (
	TransportNoop    = "noop"
	TransportMailgun = "mailgun"
	TransportWebhook = "webhook"
)

// Config holds all website configuration
type Config struct {
	Port        int    `env:"WEBSITE_PORT" envDefault:"4002"`
	Address     string `env:"WEBSITE_ADDRESS" envDefault:"0.0.0.0"`
	Environment string `env:"ENVIRONMENT" envDefault:"local"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	SiteName    string `env:"SITE_NAME" envDefault:"Northwind Studio"`
	SiteBaseURL string `env:"SITE_BASE_URL" envDefault:"http://localhost:4002"`

	MetricsEnabled bool `env:"METRICS_ENABLED" envDefault:"true"`

	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	Contact ContactConfig
	Images  ImageConfig
}

// ContactConfig configures the contact wizard and its submission transport.
type ContactConfig struct {
	Transport     string        `env:"CONTACT_TRANSPORT" envDefault:"noop"`
	SubmitTimeout time.Duration `env:"CONTACT_SUBMIT_TIMEOUT" envDefault:"15s"`
	SessionTTL    time.Duration `env:"CONTACT_SESSION_TTL" envDefault:"2h"`
	SweepInterval time.Duration `env:"CONTACT_SESSION_SWEEP" envDefault:"5m"`
	Inbox         string        `env:"CONTACT_INBOX" envDefault:"hello@northwind.studio"`
	CookieSecure  bool          `env:"CONTACT_COOKIE_SECURE" envDefault:"false"`

	// Per-client limit on contact form posts. Zero disables limiting.
	RatePerMinute int `env:"CONTACT_RATE_PER_MINUTE" envDefault:"30"`
	RateBurst     int `env:"CONTACT_RATE_BURST" envDefault:"10"`

	MailgunDomain string `env:"MAILGUN_DOMAIN"`
	MailgunAPIKey string `env:"MAILGUN_API_KEY"`
	FromEmail     string `env:"EMAIL_FROM_ADDRESS" envDefault:"website@northwind.studio"`
	FromName      string `env:"EMAIL_FROM_NAME" envDefault:"Northwind Studio Website"`

	WebhookURL   string `env:"CONTACT_WEBHOOK_URL"`
	WebhookToken string `env:"CONTACT_WEBHOOK_TOKEN"`
}

// ImageConfig configures probing of image sources.
type ImageConfig struct {
	ProbeTimeout  time.Duration `env:"IMAGE_PROBE_TIMEOUT" envDefault:"3s"`
	ProbeInterval time.Duration `env:"IMAGE_PROBE_INTERVAL" envDefault:"30m"`
	Placeholder   string        `env:"IMAGE_PLACEHOLDER"`
}

// LoadDotEnv reads .env and then .env.local; the latter wins.
func LoadDotEnv() {
	_ = godotenv.Load(".env")
	_ = godotenv.Overload(".env.local")
}

// NewConfig parses configuration from the environment.
func NewConfig() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects configurations the server cannot run with.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("WEBSITE_PORT out of range: %d", c.Port)
	}

	switch strings.ToLower(c.Contact.Transport) {
	case TransportNoop, TransportMailgun:
	case TransportWebhook:
		if c.Contact.WebhookURL == "" {
			return fmt.Errorf("CONTACT_WEBHOOK_URL is required when CONTACT_TRANSPORT=webhook")
		}
	default:
		return fmt.Errorf("unknown CONTACT_TRANSPORT %q", c.Contact.Transport)
	}

	if c.Contact.RatePerMinute < 0 || c.Contact.RateBurst < 0 {
		return fmt.Errorf("CONTACT_RATE_PER_MINUTE and CONTACT_RATE_BURST must not be negative")
	}
	if c.Contact.SubmitTimeout <= 0 {
		return fmt.Errorf("CONTACT_SUBMIT_TIMEOUT must be positive")
	}
	return nil
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Address, strconv.Itoa(c.Port))
}

// IsProduction reports whether the site runs in production.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// MailgunConfigured reports whether Mailgun credentials are present.
func (c *ContactConfig) MailgunConfigured() bool {
	return c.MailgunDomain != "" && c.MailgunAPIKey != ""
}
