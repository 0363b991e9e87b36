package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/dmitrijs2005/vital/internal/flagx"
)

var (
	valueFlags  = []string{"-k", "-m", "-l", "-f", "-b", "-r"}
	switchFlags = []string{"-seed"}
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-k string   Gemini API key
//	-m string   Gemini model
//	-l string   log level
//	-f string   log format
//	-b string   one-time code backend (memory | redis)
//	-r string   Redis address
//	-seed       start with the sample catalog
//
// Arguments belonging to other loaders (-c/-config) are filtered out first.
func parseFlags(cfg *Config, args []string) error {
	filtered := flagx.FilterArgs(args, valueFlags, switchFlags)

	fs := flag.NewFlagSet("vital", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.GeminiAPIKey, "k", cfg.GeminiAPIKey, "Gemini API key")
	fs.StringVar(&cfg.GeminiModel, "m", cfg.GeminiModel, "Gemini model")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "f", cfg.LogFormat, "log format (text | json | zap)")
	fs.StringVar(&cfg.CodeBackend, "b", cfg.CodeBackend, "one-time code backend (memory | redis)")
	fs.StringVar(&cfg.RedisAddr, "r", cfg.RedisAddr, "redis address")
	fs.BoolVar(&cfg.SeedCatalog, "seed", cfg.SeedCatalog, "start with the sample catalog")

	if err := fs.Parse(filtered); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}
