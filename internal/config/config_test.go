package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripagent/pkg/utils"
)

// clearEnv blanks every variable Load consults so the host environment
// cannot leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "LLM_PROVIDER", "DEEPSEEK_API_KEY", "OPENAI_API_KEY", "GEMINI_API_KEY",
		"TRIPAGENT_SERVER_PORT", "TRIPAGENT_LLM_PROVIDER", "TRIPAGENT_LLM_API_KEY",
		"TRIPAGENT_LLM_MODEL", "TRIPAGENT_LLM_TIMEOUT", "TRIPAGENT_LOG_LEVEL",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, utils.ProviderDeepSeek, cfg.LLM.Provider)
	assert.Equal(t, "https://api.deepseek.com/v1", cfg.LLM.BaseURL)
	assert.Equal(t, "deepseek-chat", cfg.LLM.Model)
	assert.Equal(t, 20*time.Second, cfg.LLM.Timeout)
	assert.InDelta(t, 0.1, cfg.LLM.Temperature, 1e-9)
	assert.Equal(t, 100, cfg.History.MaxEntries)
	assert.Equal(t, "console", cfg.Log.Format)

	assert.True(t, cfg.LLM.NeedsAPIKey())
	assert.False(t, cfg.LLM.Enabled(), "no key means rules only")
}

func TestLoad_PrefixedEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("TRIPAGENT_LLM_PROVIDER", "openai")
	t.Setenv("TRIPAGENT_LLM_API_KEY", "sk-test")
	t.Setenv("TRIPAGENT_LLM_TIMEOUT", "5s")
	t.Setenv("TRIPAGENT_SERVER_PORT", "9090")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, utils.ProviderOpenAI, cfg.LLM.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
	assert.Equal(t, 5*time.Second, cfg.LLM.Timeout)
	assert.True(t, cfg.LLM.Enabled())

	comp := cfg.LLM.Completion()
	assert.Equal(t, "sk-test", comp.APIKey)
	assert.InDelta(t, 0.1, comp.Temperature, 1e-6)
}

func TestLoad_LegacyEnvNames(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "3000")
	t.Setenv("LLM_PROVIDER", "Gemini")
	t.Setenv("GEMINI_API_KEY", "g-key")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, utils.ProviderGemini, cfg.LLM.Provider)
	assert.Equal(t, "g-key", cfg.LLM.APIKey)
	assert.Equal(t, "gemini-1.5-flash", cfg.LLM.Model)
}

func TestLoad_PrefixedBeatsLegacy(t *testing.T) {
	clearEnv(t)
	t.Setenv("LLM_PROVIDER", "gemini")
	t.Setenv("TRIPAGENT_LLM_PROVIDER", "none")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, utils.ProviderNone, cfg.LLM.Provider)
	assert.False(t, cfg.LLM.Enabled())
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "tripagent.yaml")
	content := `
server:
  port: 7000
llm:
  provider: ollama
  timeout: 3s
history:
  max_entries: 5
log:
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("PORT", "1234") // file wins over legacy names

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, utils.ProviderOllama, cfg.LLM.Provider)
	assert.Equal(t, "http://localhost:11434/v1", cfg.LLM.BaseURL)
	assert.Equal(t, "deepseek-r1:1.5b", cfg.LLM.Model)
	assert.Equal(t, 3*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 5, cfg.History.MaxEntries)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.False(t, cfg.LLM.NeedsAPIKey())
	assert.True(t, cfg.LLM.Enabled())
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Server: ServerConfig{Port: 8080, Mode: "release"},
			LLM:    LLMConfig{Provider: utils.ProviderNone, Temperature: 0.1, Timeout: time.Second},
			Log:    LogConfig{Level: "info", Format: "console"},
		}
	}

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"bad port", func(c *Config) { c.Server.Port = 0 }},
		{"bad server mode", func(c *Config) { c.Server.Mode = "turbo" }},
		{"bad provider", func(c *Config) { c.LLM.Provider = "bard" }},
		{"temperature too high", func(c *Config) { c.LLM.Temperature = 3 }},
		{"zero timeout", func(c *Config) { c.LLM.Timeout = 0 }},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }},
		{"negative history", func(c *Config) { c.History.MaxEntries = -1 }},
	}

	base := valid()
	require.NoError(t, base.Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)
			err := c.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, utils.ErrInvalidInput)
		})
	}
}

func TestServerAddr(t *testing.T) {
	assert.Equal(t, ":8080", ServerConfig{Port: 8080}.Addr())
}
