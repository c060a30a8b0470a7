package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort  string
	FrontendURL string

	GoogleCalendarID        string
	GoogleServiceAccountKey string
	RecaptchaSecretKey      string
	GooglePlaceID           string
	GooglePlaceKey          string

	RedisAddr       string
	ReviewsCacheTTL time.Duration

	HTTPClientTimeout time.Duration

	// Quando true, rejeita slots cujo término ultrapassa o fechamento do dia.
	StrictClosingBoundary bool
}

func Load() *Config {
	// .env é opcional; em produção as variáveis vêm do ambiente
	_ = godotenv.Load()

	return &Config{
		ServerPort:  getEnv("SERVER_PORT", "3001"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:8080"),

		GoogleCalendarID:        getEnv("GOOGLE_CALENDAR_ID", ""),
		GoogleServiceAccountKey: getEnv("GOOGLE_SERVICE_ACCOUNT_KEY", "service-account.json"),
		RecaptchaSecretKey:      getEnv("RECAPTCHA_SECRET_KEY", ""),
		GooglePlaceID:           getEnv("GOOGLE_PLACE_ID", ""),
		GooglePlaceKey:          getEnv("GOOGLE_PLACE_KEY", ""),

		RedisAddr:       getEnv("REDIS_ADDR", ""),
		ReviewsCacheTTL: getEnvDuration("REVIEWS_CACHE_TTL", 10*time.Minute),

		HTTPClientTimeout: getEnvDuration("HTTP_CLIENT_TIMEOUT", 15*time.Second),

		StrictClosingBoundary: getEnvBool("STRICT_CLOSING_BOUNDARY", false),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
