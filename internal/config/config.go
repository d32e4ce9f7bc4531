package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config aggregates the whole service configuration.
type Config struct {
	Server ServerConfig
	AI     AIConfig
	Market MarketConfig
	Redis  RedisConfig
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	ai, err := loadAIConfig()
	if err != nil {
		return nil, err
	}

	market, err := loadMarketConfig()
	if err != nil {
		return nil, err
	}

	redis, err := loadRedisConfig()
	if err != nil {
		return nil, err
	}

	return &Config{Server: server, AI: ai, Market: market, Redis: redis}, nil
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// Accept ":8080" or "127.0.0.1:8080" verbatim.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// AIConfig describes the Gemini generation backend.
type AIConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Enabled reports whether the required Gemini credential is present.
func (c AIConfig) Enabled() bool {
	return c.APIKey != ""
}

func loadAIConfig() (AIConfig, error) {
	timeout, err := parseDurationSecondsEnv("GEMINI_TIMEOUT", 60*time.Second)
	if err != nil {
		return AIConfig{}, err
	}

	return AIConfig{
		APIKey:  strings.TrimSpace(os.Getenv("GOOGLE_GENAI_API_KEY")),
		Model:   getEnvOrDefault("GEMINI_MODEL", "gemini-2.5-flash"),
		Timeout: timeout,
	}, nil
}

// MarketConfig describes the two price-data upstreams.
type MarketConfig struct {
	GoldAPIURL string
	GoldAPIKey string
	RateURL    string
	Timeout    time.Duration
}

func loadMarketConfig() (MarketConfig, error) {
	timeout, err := parseDurationSecondsEnv("MARKET_TIMEOUT", 5*time.Second)
	if err != nil {
		return MarketConfig{}, err
	}

	return MarketConfig{
		GoldAPIURL: strings.TrimSpace(os.Getenv("GOLD_API_URL")),
		GoldAPIKey: strings.TrimSpace(os.Getenv("GOLD_API_KEY")),
		RateURL: getEnvOrDefault("RATE_API_URL",
			"https://api.coingecko.com/api/v3/simple/price?ids=tether&vs_currencies=pkr"),
		Timeout: timeout,
	}, nil
}

// RedisConfig describes the optional distributed session store.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Enabled reports whether a Redis address was provided.
func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

func loadRedisConfig() (RedisConfig, error) {
	db := 0
	if override, err := parseOptionalIntEnv("REDIS_DB"); err != nil {
		return RedisConfig{}, err
	} else if override != nil {
		db = *override
	}

	return RedisConfig{
		Addr:     strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       db,
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}

func parseDurationSecondsEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	override, err := parseOptionalIntEnv(key)
	if err != nil {
		return 0, err
	}
	if override == nil {
		return defaultValue, nil
	}
	if *override < 1 {
		return 0, fmt.Errorf("invalid %s value %d: must be at least 1 second", key, *override)
	}
	return time.Duration(*override) * time.Second, nil
}
