package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "PUBLIC_BASE_URL", "MIN_TEXT_LENGTH", "MAX_TEXT_LENGTH",
		"SESSION_CAPACITY", "SESSION_TTL_MINUTES", "ANTHROPIC_API_KEY",
		"ANTHROPIC_MODEL", "AI_MAX_TOKENS", "AI_TEMPERATURE", "AI_TIMEOUT_SECONDS",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}

	if cfg.Server.Addr != ":8080" {
		t.Errorf("unexpected addr: %s", cfg.Server.Addr)
	}
	if cfg.Session.MinTextLength != 50 || cfg.Session.MaxTextLength != 180000 {
		t.Errorf("unexpected text bounds: %+v", cfg.Session)
	}
	if cfg.Session.TTL != 24*time.Hour {
		t.Errorf("unexpected TTL: %v", cfg.Session.TTL)
	}
	if cfg.AI.Enabled() {
		t.Error("AI should be disabled without an API key")
	}
	if cfg.AI.Model != "claude-3-haiku-20240307" {
		t.Errorf("unexpected model: %s", cfg.AI.Model)
	}
	if cfg.AI.Timeout != 20*time.Second {
		t.Errorf("unexpected timeout: %v", cfg.AI.Timeout)
	}
}

func TestLoadFullAddr(t *testing.T) {
	t.Setenv("PORT", "127.0.0.1:9090")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.Server.Addr != "127.0.0.1:9090" {
		t.Errorf("unexpected addr: %s", cfg.Server.Addr)
	}
}

func TestLoadRejectsBadInt(t *testing.T) {
	t.Setenv("SESSION_CAPACITY", "lots")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for non-numeric SESSION_CAPACITY")
	}
}

func TestLoadRejectsInvertedBounds(t *testing.T) {
	t.Setenv("MIN_TEXT_LENGTH", "500")
	t.Setenv("MAX_TEXT_LENGTH", "100")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for max < min")
	}
}

func TestAIEnabled(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "sk-test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if !cfg.AI.Enabled() {
		t.Error("AI should be enabled with an API key")
	}
}
