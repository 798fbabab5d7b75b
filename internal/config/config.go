package config

import (
	"errors"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
)

type Config struct {
	Env        string
	LogLevel   string
	ListenAddr string

	// APIBaseURL is the base of the external REST backend, e.g.
	// http://localhost:8000/api.
	APIBaseURL string

	// UseMockData switches the data layer onto the in-memory providers.
	// Defaults on in development, off elsewhere.
	UseMockData bool

	// Mock latency window in milliseconds and error-injection probability.
	MockDelayMinMS int
	MockDelayMaxMS int
	MockErrorRate  float64

	// CredentialsFile persists the access/refresh tokens and theme choice.
	CredentialsFile string
}

var (
	cfg  *Config
	once sync.Once
)

func Load() *Config {
	once.Do(func() {
		_ = godotenv.Load()
		env := getEnv("APP_ENV", "development")
		cfg = &Config{
			Env:             env,
			LogLevel:        getEnv("LOG_LEVEL", "info"),
			ListenAddr:      getEnv("LISTEN_ADDR", ":3000"),
			APIBaseURL:      getEnv("API_BASE_URL", "http://localhost:8000/api"),
			UseMockData:     getBool("USE_MOCK_DATA", env == "development"),
			MockDelayMinMS:  getInt("MOCK_DELAY_MIN_MS", 300),
			MockDelayMaxMS:  getInt("MOCK_DELAY_MAX_MS", 800),
			MockErrorRate:   getFloat("MOCK_ERROR_RATE", 0),
			CredentialsFile: getEnv("CREDENTIALS_FILE", "data/credentials.json"),
		}
		if err := cfg.Validate(); err != nil {
			panic("Invalid config: " + err.Error())
		}
	})
	return cfg
}

func (c *Config) Validate() error {
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return errors.New("APP_ENV must be one of: development, staging, production")
	}
	if !c.UseMockData && c.APIBaseURL == "" {
		return errors.New("API_BASE_URL is required when USE_MOCK_DATA=false")
	}
	if c.MockDelayMinMS < 0 || c.MockDelayMaxMS < c.MockDelayMinMS {
		return errors.New("mock delay window must satisfy 0 <= min <= max")
	}
	if c.MockErrorRate < 0 || c.MockErrorRate > 1 {
		return errors.New("MOCK_ERROR_RATE must be in [0, 1]")
	}
	if c.CredentialsFile == "" {
		return errors.New("CREDENTIALS_FILE must not be empty")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
