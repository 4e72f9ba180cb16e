package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config aggregates every configuration section of the service.
type Config struct {
	Server  ServerConfig
	Session SessionConfig
	AI      AIConfig
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	session, err := loadSessionConfig()
	if err != nil {
		return nil, err
	}

	ai, err := loadAIConfig()
	if err != nil {
		return nil, err
	}

	return &Config{Server: server, Session: session, AI: ai}, nil
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string
	// PublicBaseURL is the externally reachable origin embedded into the
	// widget snippet handed back after an upload.
	PublicBaseURL string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	addr := port
	if !strings.Contains(port, ":") {
		if strings.Contains(port, " ") {
			return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
		}
		addr = ":" + port
	}

	return ServerConfig{
		Addr:          addr,
		PublicBaseURL: strings.TrimRight(getEnvOrDefault("PUBLIC_BASE_URL", "http://localhost:8080"), "/"),
	}, nil
}

// SessionConfig bounds the in-memory session store.
type SessionConfig struct {
	MinTextLength int
	MaxTextLength int
	Capacity      int
	TTL           time.Duration
}

func loadSessionConfig() (SessionConfig, error) {
	minLen, err := parseIntEnv("MIN_TEXT_LENGTH", 50)
	if err != nil {
		return SessionConfig{}, err
	}

	maxLen, err := parseIntEnv("MAX_TEXT_LENGTH", 180000)
	if err != nil {
		return SessionConfig{}, err
	}

	capacity, err := parseIntEnv("SESSION_CAPACITY", 128)
	if err != nil {
		return SessionConfig{}, err
	}

	ttlMinutes, err := parseIntEnv("SESSION_TTL_MINUTES", 24*60)
	if err != nil {
		return SessionConfig{}, err
	}

	if minLen < 1 || maxLen < minLen {
		return SessionConfig{}, fmt.Errorf("invalid text length bounds: min=%d max=%d", minLen, maxLen)
	}

	return SessionConfig{
		MinTextLength: minLen,
		MaxTextLength: maxLen,
		Capacity:      capacity,
		TTL:           time.Duration(ttlMinutes) * time.Minute,
	}, nil
}

// AIConfig describes the answer-provider upstream.
type AIConfig struct {
	APIKey      string
	Model       string
	MaxTokens   int64
	Temperature float64
	Timeout     time.Duration
}

// Enabled reports whether the required credential is present.
func (c AIConfig) Enabled() bool {
	return c.APIKey != ""
}

func loadAIConfig() (AIConfig, error) {
	maxTokens, err := parseIntEnv("AI_MAX_TOKENS", 600)
	if err != nil {
		return AIConfig{}, err
	}

	temperature := 0.3
	if override, err := parseOptionalFloatEnv("AI_TEMPERATURE"); err != nil {
		return AIConfig{}, err
	} else if override != nil {
		temperature = *override
	}

	timeoutSeconds, err := parseIntEnv("AI_TIMEOUT_SECONDS", 20)
	if err != nil {
		return AIConfig{}, err
	}

	return AIConfig{
		APIKey:      strings.TrimSpace(os.Getenv("ANTHROPIC_API_KEY")),
		Model:       getEnvOrDefault("ANTHROPIC_MODEL", "claude-3-haiku-20240307"),
		MaxTokens:   int64(maxTokens),
		Temperature: temperature,
		Timeout:     time.Duration(timeoutSeconds) * time.Second,
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseIntEnv(key string, defaultValue int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}

	val, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return val, nil
}

func parseOptionalFloatEnv(key string) (*float64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}
