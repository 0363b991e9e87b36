package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_IgnoresForeignArgs(t *testing.T) {
	var c Config
	c.LoadDefaults()

	err := parseFlags(&c, []string{"-c", "cfg.json", "-k", "secret", "-r=redis:6379", "-seed=false", "extra"})
	require.NoError(t, err)

	assert.Equal(t, "secret", c.GeminiAPIKey)
	assert.Equal(t, "redis:6379", c.RedisAddr)
	assert.False(t, c.SeedCatalog)
}

func TestParseFlags_KeepsValuesWhenAbsent(t *testing.T) {
	var c Config
	c.LoadDefaults()

	require.NoError(t, parseFlags(&c, nil))
	assert.Equal(t, "gemini-2.5-flash", c.GeminiModel)
	assert.True(t, c.SeedCatalog)
}
