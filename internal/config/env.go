package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// lookupFunc mirrors os.LookupEnv so tests can feed a map.
type lookupFunc func(key string) (string, bool)

// envLookup consults the process environment first and the dotenv file second.
// Empty process variables count as unset. A missing or unreadable dotenv file
// is ignored.
func envLookup(dotenvPath string) lookupFunc {
	fileVars, err := godotenv.Read(dotenvPath)
	if err != nil {
		fileVars = map[string]string{}
	}

	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			return v, true
		}
		v, ok := fileVars[key]
		return v, ok
	}
}

// parseEnv overlays cfg with the VITAL_* variables and the Gemini API key.
func parseEnv(cfg *Config, lookup lookupFunc) error {
	if v, ok := lookup("API_KEY"); ok && v != "" {
		cfg.GeminiAPIKey = v
	}
	if v, ok := lookup("GEMINI_API_KEY"); ok && v != "" {
		cfg.GeminiAPIKey = v
	}

	strVars := map[string]*string{
		"VITAL_GEMINI_MODEL": &cfg.GeminiModel,
		"VITAL_LOG_LEVEL":    &cfg.LogLevel,
		"VITAL_LOG_FORMAT":   &cfg.LogFormat,
		"VITAL_CODE_BACKEND": &cfg.CodeBackend,
		"VITAL_REDIS_ADDR":   &cfg.RedisAddr,
		"VITAL_CODE_SECRET":  &cfg.CodeSecret,
	}
	for key, dst := range strVars {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}

	if v, ok := lookup("VITAL_SEED_CATALOG"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: VITAL_SEED_CATALOG=%q", ErrInvalidConfig, v)
		}
		cfg.SeedCatalog = b
	}
	return nil
}
