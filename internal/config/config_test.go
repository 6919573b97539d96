package config

import (
	"testing"

	"github.com/spf13/viper"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestDefaults(t *testing.T) {
	resetViper(t)
	SetDefaults()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.LLM.Model != "gpt-4o" {
		t.Errorf("LLM.Model = %q, want %q", cfg.LLM.Model, "gpt-4o")
	}
	if cfg.LLM.Temperature != 0.7 {
		t.Errorf("LLM.Temperature = %v, want 0.7", cfg.LLM.Temperature)
	}
	if cfg.LLM.APIKeyEnv != "OPENAI_API_KEY" {
		t.Errorf("LLM.APIKeyEnv = %q, want OPENAI_API_KEY", cfg.LLM.APIKeyEnv)
	}
	if cfg.Logging.File != "debate_log.txt" {
		t.Errorf("Logging.File = %q, want debate_log.txt", cfg.Logging.File)
	}
	if cfg.Logging.Level != "INFO" {
		t.Errorf("Logging.Level = %q, want INFO", cfg.Logging.Level)
	}
	if cfg.Diagram.File != "debate_dag.mmd" {
		t.Errorf("Diagram.File = %q, want debate_dag.mmd", cfg.Diagram.File)
	}
}

func TestOverride(t *testing.T) {
	resetViper(t)
	SetDefaults()
	viper.Set("llm.model", "gpt-4o-mini")
	viper.Set("logging.level", "DEBUG")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.LLM.Model != "gpt-4o-mini" {
		t.Errorf("LLM.Model = %q, want override", cfg.LLM.Model)
	}
	if cfg.Logging.Level != "DEBUG" {
		t.Errorf("Logging.Level = %q, want override", cfg.Logging.Level)
	}
}

func TestAPIKey(t *testing.T) {
	resetViper(t)
	SetDefaults()

	cfg := &Config{LLM: LLMConfig{APIKeyEnv: "COLLOQUY_TEST_KEY"}}

	t.Setenv("COLLOQUY_TEST_KEY", "")
	if _, ok := cfg.APIKey(); ok {
		t.Error("APIKey() should report absent for an empty variable")
	}

	t.Setenv("COLLOQUY_TEST_KEY", "  ")
	if _, ok := cfg.APIKey(); ok {
		t.Error("APIKey() should report absent for a blank variable")
	}

	t.Setenv("COLLOQUY_TEST_KEY", "sk-test")
	key, ok := cfg.APIKey()
	if !ok || key != "sk-test" {
		t.Errorf("APIKey() = (%q, %v), want (sk-test, true)", key, ok)
	}
}
