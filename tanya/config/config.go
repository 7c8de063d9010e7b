package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr             string
	DBPath           string
	APIKey           string
	Model            string
	BaseURL          string
	MaxTokens        int
	Window           int
	SystemPrompt     string
	SearchRegion     string
	SearchMaxResults int
}

// fileConfig mirrors the optional tanya.yaml overlay. Pointers so an
// absent key falls through to the env/default value.
type fileConfig struct {
	Addr             *string `yaml:"addr"`
	DBPath           *string `yaml:"db_path"`
	Model            *string `yaml:"model"`
	BaseURL          *string `yaml:"base_url"`
	MaxTokens        *int    `yaml:"max_tokens"`
	Window           *int    `yaml:"window"`
	SystemPrompt     *string `yaml:"system_prompt"`
	SearchRegion     *string `yaml:"search_region"`
	SearchMaxResults *int    `yaml:"search_max_results"`
}

// LoadConfig builds the process configuration from environment variables,
// with an optional YAML file overlay. OPENAI_API_KEY is the one hard
// requirement: without it the process must not start.
func LoadConfig() (Config, error) {
	cfg := Config{
		Addr:             getEnv("ADDR", ":8000"),
		DBPath:           getEnv("DB_PATH", "chat_history.db"),
		APIKey:           strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		Model:            getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		BaseURL:          getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		SystemPrompt:     getEnv("SYSTEM_PROMPT", "You are a helpful assistant."),
		SearchRegion:     getEnv("SEARCH_REGION", "id-id"),
		MaxTokens:        500,
		Window:           6,
		SearchMaxResults: 3,
	}

	var err error
	if cfg.MaxTokens, err = getEnvInt("MAX_TOKENS", cfg.MaxTokens); err != nil {
		return Config{}, err
	}
	if cfg.Window, err = getEnvInt("CHAT_WINDOW", cfg.Window); err != nil {
		return Config{}, err
	}
	if cfg.SearchMaxResults, err = getEnvInt("SEARCH_MAX_RESULTS", cfg.SearchMaxResults); err != nil {
		return Config{}, err
	}

	if err := applyFile(&cfg, getEnv("CONFIG_FILE", "tanya.yaml")); err != nil {
		return Config{}, err
	}

	if cfg.APIKey == "" {
		return Config{}, fmt.Errorf("OPENAI_API_KEY is not set")
	}
	if cfg.Window < 1 {
		return Config{}, fmt.Errorf("chat window must be at least 1, got %d", cfg.Window)
	}
	if cfg.MaxTokens < 1 {
		return Config{}, fmt.Errorf("max tokens must be at least 1, got %d", cfg.MaxTokens)
	}
	return cfg, nil
}

// applyFile overlays values from a YAML file when one exists. A missing
// file is fine; a malformed one is a startup error.
func applyFile(cfg *Config, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config file %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if fc.Addr != nil {
		cfg.Addr = *fc.Addr
	}
	if fc.DBPath != nil {
		cfg.DBPath = *fc.DBPath
	}
	if fc.Model != nil {
		cfg.Model = *fc.Model
	}
	if fc.BaseURL != nil {
		cfg.BaseURL = *fc.BaseURL
	}
	if fc.MaxTokens != nil {
		cfg.MaxTokens = *fc.MaxTokens
	}
	if fc.Window != nil {
		cfg.Window = *fc.Window
	}
	if fc.SystemPrompt != nil {
		cfg.SystemPrompt = *fc.SystemPrompt
	}
	if fc.SearchRegion != nil {
		cfg.SearchRegion = *fc.SearchRegion
	}
	if fc.SearchMaxResults != nil {
		cfg.SearchMaxResults = *fc.SearchMaxResults
	}
	return nil
}

func getEnv(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return val, nil
}
