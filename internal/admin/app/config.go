package app

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Issuer        string // Required: expected issuer claim on access tokens
	VerifyKeyFile string // Required: path to the auth service's Ed25519 public key (PKIX PEM)

	ClientDomain string        // Required: base URL of the client app for registration links
	AppTitle     string        // Optional: product name used in mails (default: KARRIERE.MUM AI)
	InviteTTL    time.Duration // Optional: invite validity window (default: 168h)
	MailLocale   string        // Optional: locale for invite mails (de, en) (default: de)

	MailerDriver string        // Optional: mail driver (smtp, log) (default: smtp)
	SMTPHost     string        // SMTP relay host
	SMTPPort     int           // SMTP relay port (default: 587)
	SMTPUsername string        // Optional: SMTP auth username
	SMTPPassword string        // Optional: SMTP auth password
	SMTPFrom     string        // Sender address for invite mails
	SMTPTimeout  time.Duration // Optional: per-send timeout (default: 15s)
	SMTPInsecure bool          // Optional: allow opportunistic TLS (local relays only)

	DatabaseFile         string        // Optional: path to SQLite database file (default: ./admin.db)
	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
}

func LoadConfig() Config {
	// Local development convenience; a missing .env is not an error.
	_ = godotenv.Load()

	cfg := Config{
		Issuer:        getEnvOrDefault("AUTH_ISSUER", "karrieremum-auth"),
		VerifyKeyFile: os.Getenv("AUTH_VERIFY_KEY_FILE"),

		ClientDomain: os.Getenv("DOMAIN_CLIENT"),
		AppTitle:     getEnvOrDefault("APP_TITLE", "KARRIERE.MUM AI"),
		InviteTTL:    getEnvDurationOrDefault("INVITE_TTL", 168*time.Hour),
		MailLocale:   getEnvOrDefault("MAIL_LOCALE", "de"),

		MailerDriver: getEnvOrDefault("MAILER_DRIVER", "smtp"),
		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     getEnvIntOrDefault("SMTP_PORT", 587),
		SMTPUsername: os.Getenv("SMTP_USERNAME"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:     os.Getenv("SMTP_FROM"),
		SMTPTimeout:  getEnvDurationOrDefault("SMTP_TIMEOUT", 15*time.Second),
		SMTPInsecure: getEnvBoolOrDefault("SMTP_INSECURE", false),

		DatabaseFile:         getEnvOrDefault("DATABASE_FILE", "admin.db"),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if boolValue, err := strconv.ParseBool(value); err == nil {
		return boolValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
