// Package config loads runtime configuration for the VITAL client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, with a ".env" file in the working directory as a
//     fallback for variables that are not set (see parseEnv).
//  3. Optional JSON file selected with -c or -config (see parseJson).
//  4. Command-line flags (see parseFlags), which override everything else.
//
// Environment
//
//	GEMINI_API_KEY (or API_KEY)   Gemini API key for image analysis
//	VITAL_GEMINI_MODEL            model name
//	VITAL_LOG_LEVEL               debug | info | warn | error
//	VITAL_LOG_FORMAT              text | json | zap
//	VITAL_CODE_BACKEND            memory | redis
//	VITAL_REDIS_ADDR              host:port of Redis for the redis backend
//	VITAL_CODE_SECRET             key for hashing stored codes (env only)
//	VITAL_SEED_CATALOG            true | false
//
// Supported flags
//
//	-k string   Gemini API key
//	-m string   Gemini model
//	-l string   log level
//	-f string   log format
//	-b string   one-time code backend
//	-r string   Redis address
//	-seed       start with the sample catalog
//
// # JSON schema
//
// Durations accept Go duration strings or integer nanoseconds:
//
//	{
//	  "gemini_model": "gemini-2.5-flash",
//	  "analyze_timeout": "30s",
//	  "submit_delay": "1500ms",
//	  "verify_delay": "2s",
//	  "resend_delay": "1s",
//	  "federated_delay": "2s",
//	  "step_timeout": "10s",
//	  "code_backend": "memory",
//	  "redis_addr": "127.0.0.1:6379",
//	  "code_ttl": "10m",
//	  "log_level": "info",
//	  "log_format": "text",
//	  "seed_catalog": true
//	}
package config
