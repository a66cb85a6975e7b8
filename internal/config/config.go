package config

import (
	"errors"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

type Config struct {
	Env        string
	LogLevel   string
	ListenAddr string
	Backend    string // "file" or "postgres"
	DSN        string
	DataFile   string
	AuthToken  string // dev token accepted by the local auth provider
	DemoEmail  string // account the dev token resolves to
}

var (
	cfg  *Config
	once sync.Once
)

func Load() *Config {
	once.Do(func() {
		_ = godotenv.Load()
		cfg = &Config{
			Env:        getEnv("APP_ENV", "development"),
			LogLevel:   getEnv("LOG_LEVEL", "info"),
			ListenAddr: getEnv("LISTEN_ADDR", ":8088"),
			Backend:    getEnv("STORAGE_BACKEND", "file"),
			DSN:        getEnv("POSTGRES_DSN", ""),
			DataFile:   getEnv("DATA_FILE", "data/accounts.json"),
			AuthToken:  getEnv("AUTH_TOKEN", "MOCK-TOKEN"),
			DemoEmail:  getEnv("DEMO_EMAIL", "demo@speedscore.org"),
		}
		if err := cfg.Validate(); err != nil {
			panic("Invalid config: " + err.Error())
		}
	})
	return cfg
}

func (c *Config) Validate() error {
	if c.Backend == "postgres" && c.DSN == "" {
		return errors.New("POSTGRES_DSN is required when STORAGE_BACKEND=postgres")
	}
	if c.Backend == "file" && c.DataFile == "" {
		return errors.New("File storage requires DATA_FILE to be set")
	}
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return errors.New("APP_ENV must be one of: development, staging, production")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
