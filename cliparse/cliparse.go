package cliparse

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

type Config struct {
	Port            int           `validate:"min=1,max=65535"`
	RosterBaseURL   string        `validate:"required,url"`
	Admins          []string      `validate:"dive,required"`
	DefaultDuration int           `validate:"min=1,ltefield=MaxDuration"`
	MaxDuration     int           `validate:"min=1,max=366"`
	InvalidDuration string        `validate:"oneof=silent reject"`
	RosterTimeout   time.Duration `validate:"min=0"`
	SessionTTL      time.Duration `validate:"gt=0"`
	MaxSessions     int           `validate:"min=1"`
	TokenSalt       string        `validate:"required"`
	LogLevel        string        `validate:"oneof=debug info warn error"`
	LogFile         string
	EnvFile         string
}

var validate = validator.New()

// ParseFlags reads flags, falling back to environment variables (optionally
// loaded from a .env file) and then to defaults, and validates the result.
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := pflag.NewFlagSet("faction-grid", pflag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVarP(&cfg.Port, "port", "p", 0, "Server port")
	fs.StringVarP(&cfg.RosterBaseURL, "roster-url", "r", "", "Identity/roster service base URL")
	fs.DurationVar(&cfg.RosterTimeout, "roster-timeout", 0, "Timeout for identity/roster calls (0 = none)")

	// Grid behaviour
	fs.StringSliceVarP(&cfg.Admins, "admins", "a", nil, "Comma-separated admin display names")
	fs.IntVar(&cfg.DefaultDuration, "duration", 0, "Default number of days shown")
	fs.IntVar(&cfg.MaxDuration, "max-duration", 0, "Longest date range an admin may set, in days (at most 366)")
	fs.StringVar(&cfg.InvalidDuration, "invalid-duration", "", "How invalid admin durations are reported: silent or reject")

	// Sessions
	fs.DurationVar(&cfg.SessionTTL, "session-ttl", 0, "Idle session lifetime")
	fs.IntVar(&cfg.MaxSessions, "max-sessions", 0, "Maximum concurrent sessions")
	fs.StringVar(&cfg.TokenSalt, "token-salt", "", "Credential fingerprint salt (prefer env)")

	// Logging
	fs.StringVar(&cfg.LogLevel, "log-level", "", "Log level: debug, info, warn, error")
	fs.StringVar(&cfg.LogFile, "log-file", "", "Rotating log file path")
	fs.StringVar(&cfg.EnvFile, "env-file", ".env", "dotenv file to load before reading env")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Real environment wins over the file; a missing file is fine
	if cfg.EnvFile != "" {
		if err := godotenv.Load(cfg.EnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load env file %s: %w", cfg.EnvFile, err)
		}
	}

	if err := envInt(&cfg.Port, "PORT", 3318); err != nil {
		return Config{}, err
	}
	envString(&cfg.RosterBaseURL, "ROSTER_BASE_URL", "https://api.torn.com")
	if err := envDuration(&cfg.RosterTimeout, "ROSTER_TIMEOUT", 0); err != nil {
		return Config{}, err
	}

	if len(cfg.Admins) == 0 {
		cfg.Admins = splitList(os.Getenv("GRID_ADMINS"))
	}
	if len(cfg.Admins) == 0 {
		cfg.Admins = []string{"HtwoO"}
	}
	if err := envInt(&cfg.DefaultDuration, "GRID_DEFAULT_DURATION", 7); err != nil {
		return Config{}, err
	}
	if err := envInt(&cfg.MaxDuration, "GRID_MAX_DURATION", 366); err != nil {
		return Config{}, err
	}
	envString(&cfg.InvalidDuration, "GRID_INVALID_DURATION", "silent")

	if err := envDuration(&cfg.SessionTTL, "SESSION_TTL", 12*time.Hour); err != nil {
		return Config{}, err
	}
	if err := envInt(&cfg.MaxSessions, "MAX_SESSIONS", 1024); err != nil {
		return Config{}, err
	}
	// Secret - MUST be provided
	envString(&cfg.TokenSalt, "SESSION_TOKEN_SALT", "")

	envString(&cfg.LogLevel, "LOG_LEVEL", "info")
	envString(&cfg.LogFile, "LOG_FILE", "")

	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func envString(dst *string, key, fallback string) {
	if *dst != "" {
		return
	}
	if v := os.Getenv(key); v != "" {
		*dst = v
		return
	}
	*dst = fallback
}

func envInt(dst *int, key string, fallback int) error {
	if *dst != 0 {
		return nil
	}
	v := os.Getenv(key)
	if v == "" {
		*dst = fallback
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s env variable", key)
	}
	*dst = n
	return nil
}

func envDuration(dst *time.Duration, key string, fallback time.Duration) error {
	if *dst != 0 {
		return nil
	}
	v := os.Getenv(key)
	if v == "" {
		*dst = fallback
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("invalid %s env variable", key)
	}
	*dst = d
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
