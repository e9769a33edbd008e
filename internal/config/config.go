package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"tripagent/pkg/utils"
)

const EnvPrefix = "TRIPAGENT"

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	LLM     LLMConfig     `mapstructure:"llm"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Log     LogConfig     `mapstructure:"log"`
	History HistoryConfig `mapstructure:"history"`
}

type ServerConfig struct {
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// LLMConfig selects the text-generation backend used for semantic extraction.
type LLMConfig struct {
	Provider    string        `mapstructure:"provider"`
	APIKey      string        `mapstructure:"api_key"`
	BaseURL     string        `mapstructure:"base_url"`
	Model       string        `mapstructure:"model"`
	Temperature float64       `mapstructure:"temperature"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

type CatalogConfig struct {
	// Path to a YAML catalog; empty uses the embedded one.
	Path string `mapstructure:"path"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type HistoryConfig struct {
	TTL        time.Duration `mapstructure:"ttl"`
	MaxEntries int           `mapstructure:"max_entries"`
}

var providerDefaults = map[string]struct {
	baseURL string
	model   string
	keyEnv  string
}{
	utils.ProviderDeepSeek: {"https://api.deepseek.com/v1", "deepseek-chat", "DEEPSEEK_API_KEY"},
	utils.ProviderOpenAI:   {"", "gpt-4o-mini", "OPENAI_API_KEY"},
	utils.ProviderOllama:   {"http://localhost:11434/v1", "deepseek-r1:1.5b", ""},
	utils.ProviderGemini:   {"", "gemini-1.5-flash", "GEMINI_API_KEY"},
	utils.ProviderNone:     {"", "", ""},
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")

	v.SetDefault("llm.provider", utils.ProviderDeepSeek)
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.base_url", "")
	v.SetDefault("llm.model", "")
	v.SetDefault("llm.temperature", 0.1)
	v.SetDefault("llm.timeout", 20*time.Second)

	v.SetDefault("catalog.path", "")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("history.ttl", time.Hour)
	v.SetDefault("history.max_entries", 100)
}

// Load reads defaults, then the optional YAML file at path, then TRIPAGENT_*
// environment variables. A .env file in the working directory is loaded
// first when present.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	applyLegacyEnv(v, &cfg)
	cfg.LLM.applyProviderDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyLegacyEnv honours the plain env names older deployments use, unless
// the same setting came from a TRIPAGENT_* variable or the config file.
func applyLegacyEnv(v *viper.Viper, cfg *Config) {
	unset := func(key string) bool {
		envKey := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		_, inEnv := os.LookupEnv(envKey)
		return !inEnv && !v.InConfig(key)
	}

	if port := os.Getenv("PORT"); port != "" && unset("server.port") {
		var p int
		if _, err := fmt.Sscanf(port, "%d", &p); err == nil {
			cfg.Server.Port = p
		}
	}
	if provider := os.Getenv("LLM_PROVIDER"); provider != "" && unset("llm.provider") {
		cfg.LLM.Provider = provider
	}
}

func (c *LLMConfig) applyProviderDefaults() {
	c.Provider = strings.ToLower(strings.TrimSpace(c.Provider))
	d, ok := providerDefaults[c.Provider]
	if !ok {
		return
	}
	if c.BaseURL == "" {
		c.BaseURL = d.baseURL
	}
	if c.Model == "" {
		c.Model = d.model
	}
	if c.APIKey == "" && d.keyEnv != "" {
		c.APIKey = os.Getenv(d.keyEnv)
	}
}

func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be in 1..65535, got %d", c.Server.Port))
	}
	if _, ok := providerDefaults[c.LLM.Provider]; !ok {
		errs = append(errs, fmt.Errorf("llm.provider %q is not one of deepseek, openai, ollama, gemini, none", c.LLM.Provider))
	}
	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		errs = append(errs, fmt.Errorf("llm.temperature must be in [0, 2], got %v", c.LLM.Temperature))
	}
	if c.LLM.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("llm.timeout must be positive, got %s", c.LLM.Timeout))
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		errs = append(errs, fmt.Errorf("server.mode must be debug, release or test, got %q", c.Server.Mode))
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format must be console or json, got %q", c.Log.Format))
	}
	if c.History.MaxEntries < 0 {
		errs = append(errs, fmt.Errorf("history.max_entries must not be negative"))
	}
	if c.History.TTL < 0 {
		errs = append(errs, fmt.Errorf("history.ttl must not be negative"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", utils.ErrInvalidInput, errors.Join(errs...))
	}
	return nil
}

// NeedsAPIKey reports whether the provider refuses anonymous calls.
func (c LLMConfig) NeedsAPIKey() bool {
	return providerDefaults[c.Provider].keyEnv != ""
}

// Enabled reports whether semantic extraction can run at all. A hosted
// provider without a key is treated as disabled.
func (c LLMConfig) Enabled() bool {
	if c.Provider == utils.ProviderNone {
		return false
	}
	return !c.NeedsAPIKey() || c.APIKey != ""
}

func (c LLMConfig) Completion() utils.CompletionConfig {
	return utils.CompletionConfig{
		Provider:    c.Provider,
		APIKey:      c.APIKey,
		BaseURL:     c.BaseURL,
		Model:       c.Model,
		Temperature: float32(c.Temperature),
	}
}

// Addr is the listen address for the HTTP server.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
