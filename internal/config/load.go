package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// keyEnv lists the environment variables consulted for credentials, in order.
// API_KEY is shared by every provider.
var keyEnv = map[string][]string{
	ProviderGemini:    {"API_KEY", "GEMINI_API_KEY"},
	ProviderOpenAI:    {"API_KEY", "OPENAI_API_KEY"},
	ProviderAnthropic: {"API_KEY", "ANTHROPIC_API_KEY"},
}

// Load reads the YAML file at path, validates it and resolves API keys from
// the environment. A .env file in the working directory is loaded first when present.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return parse(data)
}

// LoadOrDefault behaves like Load but falls back to defaults when the file
// does not exist.
func LoadOrDefault(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return parse(nil)
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (*Config, error) {
	// Missing .env is the normal case in production.
	_ = godotenv.Load()

	var cfg Config
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	cfg.LLM.APIKeys = apiKeysFromEnv(cfg.LLM.Provider)
	return &cfg, nil
}

// apiKeysFromEnv returns the first non-empty variable for provider split on commas.
// An empty result is not an error; calls fail later with a credential error.
func apiKeysFromEnv(provider string) []string {
	for _, name := range keyEnv[provider] {
		raw := os.Getenv(name)
		if strings.TrimSpace(raw) == "" {
			continue
		}
		var keys []string
		for _, k := range strings.Split(raw, ",") {
			if k = strings.TrimSpace(k); k != "" {
				keys = append(keys, k)
			}
		}
		return keys
	}
	return nil
}
