package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/twin")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 50, cfg.HistoryMaxTurns)
	assert.Equal(t, 2*time.Second, cfg.StoreLookupTimeout)
	assert.Equal(t, 30*time.Second, cfg.ProviderTimeout)
	assert.Equal(t, "gemini-2.5-flash", cfg.GeminiModel)
	assert.Contains(t, cfg.GeminiBaseURL, "generativelanguage.googleapis.com")
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadRejectsNonPositiveHistoryCap(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/twin")
	t.Setenv("CHAT_HISTORY_MAX_TURNS", "0")

	_, err := Load()
	require.Error(t, err)
}
