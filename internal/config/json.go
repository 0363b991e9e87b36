package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/vital/internal/flagx"
	"github.com/dmitrijs2005/vital/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer fields
// distinguish "absent" from zero values so a partial file only overrides what
// it names.
type JsonConfig struct {
	GeminiModel    *string         `json:"gemini_model"`
	AnalyzeTimeout *timex.Duration `json:"analyze_timeout"`
	SubmitDelay    *timex.Duration `json:"submit_delay"`
	VerifyDelay    *timex.Duration `json:"verify_delay"`
	ResendDelay    *timex.Duration `json:"resend_delay"`
	FederatedDelay *timex.Duration `json:"federated_delay"`
	StepTimeout    *timex.Duration `json:"step_timeout"`
	CodeBackend    *string         `json:"code_backend"`
	RedisAddr      *string         `json:"redis_addr"`
	CodeTTL        *timex.Duration `json:"code_ttl"`
	LogLevel       *string         `json:"log_level"`
	LogFormat      *string         `json:"log_format"`
	SeedCatalog    *bool           `json:"seed_catalog"`
}

// parseJson overlays cfg with the file named by -c/-config in args. Without
// such a flag it is a no-op. The API key is deliberately not read from JSON.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}

	setString(&cfg.GeminiModel, jc.GeminiModel)
	setDuration(&cfg.AnalyzeTimeout, jc.AnalyzeTimeout)
	setDuration(&cfg.SubmitDelay, jc.SubmitDelay)
	setDuration(&cfg.VerifyDelay, jc.VerifyDelay)
	setDuration(&cfg.ResendDelay, jc.ResendDelay)
	setDuration(&cfg.FederatedDelay, jc.FederatedDelay)
	setDuration(&cfg.StepTimeout, jc.StepTimeout)
	setString(&cfg.CodeBackend, jc.CodeBackend)
	setString(&cfg.RedisAddr, jc.RedisAddr)
	setDuration(&cfg.CodeTTL, jc.CodeTTL)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.LogFormat, jc.LogFormat)
	if jc.SeedCatalog != nil {
		cfg.SeedCatalog = *jc.SeedCatalog
	}
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setDuration(dst *time.Duration, v *timex.Duration) {
	if v != nil {
		*dst = v.Duration
	}
}
