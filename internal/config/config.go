package config

import (
	"errors"
	"fmt"
	"os"
	"time"
)

// Code issuer backends.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds runtime settings for the VITAL client.
//
// The *Delay fields are the simulated latencies of the auth steps; StepTimeout
// bounds each of them. AnalyzeTimeout bounds one image-analysis call.
type Config struct {
	GeminiAPIKey   string
	GeminiModel    string
	AnalyzeTimeout time.Duration

	SubmitDelay    time.Duration
	VerifyDelay    time.Duration
	ResendDelay    time.Duration
	FederatedDelay time.Duration
	StepTimeout    time.Duration

	CodeBackend string
	RedisAddr   string
	CodeTTL     time.Duration
	// CodeSecret keys the digests of stored codes. Empty means a random key
	// per process.
	CodeSecret string

	LogLevel  string
	LogFormat string

	SeedCatalog bool
}

// LoadDefaults populates c with the built-in defaults.
func (c *Config) LoadDefaults() {
	c.GeminiModel = "gemini-2.5-flash"
	c.AnalyzeTimeout = 30 * time.Second

	c.SubmitDelay = 1500 * time.Millisecond
	c.VerifyDelay = 2 * time.Second
	c.ResendDelay = 1 * time.Second
	c.FederatedDelay = 2 * time.Second
	c.StepTimeout = 10 * time.Second

	c.CodeBackend = BackendMemory
	c.RedisAddr = "127.0.0.1:6379"
	c.CodeTTL = 10 * time.Minute

	c.LogLevel = "info"
	c.LogFormat = "text"

	c.SeedCatalog = true
}

// Validate rejects combinations the client cannot start with.
func (c *Config) Validate() error {
	switch c.CodeBackend {
	case BackendMemory:
	case BackendRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("%w: redis backend requires a redis address", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown code backend %q", ErrInvalidConfig, c.CodeBackend)
	}

	if c.StepTimeout <= 0 {
		return fmt.Errorf("%w: step timeout must be positive", ErrInvalidConfig)
	}

	// Every auth step waits out its delay inside the step timeout.
	delays := []struct {
		name string
		d    time.Duration
	}{
		{"submit_delay", c.SubmitDelay},
		{"verify_delay", c.VerifyDelay},
		{"resend_delay", c.ResendDelay},
		{"federated_delay", c.FederatedDelay},
	}
	for _, d := range delays {
		if d.d < 0 {
			return fmt.Errorf("%w: %s must not be negative", ErrInvalidConfig, d.name)
		}
		if d.d >= c.StepTimeout {
			return fmt.Errorf("%w: step timeout %s must exceed %s %s", ErrInvalidConfig, c.StepTimeout, d.name, d.d)
		}
	}
	return nil
}

// Load builds a Config from defaults, the environment (plus ".env"), an
// optional JSON file and finally the flags found in args.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseEnv(cfg, envLookup(".env")); err != nil {
		return nil, err
	}
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig is Load over the process arguments.
func LoadConfig() (*Config, error) {
	return Load(os.Args[1:])
}
