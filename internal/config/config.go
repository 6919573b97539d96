// Package config loads colloquy's configuration: defaults, an optional
// config file, COLLOQUY_* environment overrides, and a .env file for the
// generation credential.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config represents the complete colloquy configuration.
type Config struct {
	LLM     LLMConfig     `mapstructure:"llm"`
	Logging LoggingConfig `mapstructure:"logging"`
	Diagram DiagramConfig `mapstructure:"diagram"`
}

// LLMConfig controls the generation backend.
type LLMConfig struct {
	// Model is the chat model name sent to the backend (default: "gpt-4o")
	Model string `mapstructure:"model"`
	// BaseURL overrides the OpenAI-compatible endpoint (default: api.openai.com)
	BaseURL string `mapstructure:"base_url"`
	// Temperature is the sampling temperature for every generation call
	Temperature float64 `mapstructure:"temperature"`
	// APIKeyEnv names the environment variable holding the credential
	APIKeyEnv string `mapstructure:"api_key_env"`
}

// LoggingConfig controls the run log.
type LoggingConfig struct {
	// File is the run log path, truncated each run (default: "debate_log.txt")
	File string `mapstructure:"file"`
	// Level is the minimum level recorded: DEBUG, INFO, WARN, ERROR
	Level string `mapstructure:"level"`
}

// DiagramConfig controls the best-effort state graph artifact.
type DiagramConfig struct {
	// File is the Mermaid artifact path (default: "debate_dag.mmd")
	File string `mapstructure:"file"`
}

// SetDefaults registers every default with viper. Call before reading any
// config file so values exist even without one.
func SetDefaults() {
	viper.SetDefault("llm.model", "gpt-4o")
	viper.SetDefault("llm.base_url", "")
	viper.SetDefault("llm.temperature", 0.7)
	viper.SetDefault("llm.api_key_env", "OPENAI_API_KEY")
	viper.SetDefault("logging.file", "debate_log.txt")
	viper.SetDefault("logging.level", "INFO")
	viper.SetDefault("diagram.file", "debate_dag.mmd")
}

// Load unmarshals the effective configuration.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadDotenv loads a .env file from the working directory into the process
// environment, if one exists. Missing files are not an error; explicitly
// set variables are never overridden.
func LoadDotenv() {
	_ = godotenv.Load()
}

// APIKey resolves the generation credential from the environment.
// The second return is false when the credential is absent or blank.
func (c *Config) APIKey() (string, bool) {
	key := strings.TrimSpace(os.Getenv(c.LLM.APIKeyEnv))
	return key, key != ""
}
