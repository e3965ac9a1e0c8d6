package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

var (
	once     sync.Once
	instance *Config
)

var defaults = map[string]string{
	"LIFEOS_ENV":      "development",
	"LOG_LEVEL":       "info",
	"STORE_BACKEND":   "file",
	"STATE_DIR":       "",
	"REDIS_ADDRESS":   "127.0.0.1:6379",
	"REDIS_DB":        "0",
	"GEMINI_MODEL":    "gemini-2.5-flash-preview-09-2025",
	"GEMINI_BASE_URL": "https://generativelanguage.googleapis.com",
	"AI_TIMEOUT":      "30s",
	"API_ADDRESS":     "127.0.0.1:8787",
}

type Config struct {
}

// New loads the .env file once (a missing file is fine) and returns the shared config.
// Values are read from the environment on every call.
func New() *Config {
	once.Do(func() {
		path := os.Getenv("LIFEOS_ENV_FILE")
		if path == "" {
			path = "./configs/.env"
		}
		err := godotenv.Load(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			log.Println("loading envs error: ", err)
		}
		instance = &Config{}
	})
	return instance
}

func (c *Config) GetString(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaults[key]
}

func (c *Config) GetInt(key string) int {
	v, err := strconv.Atoi(c.GetString(key))
	if err != nil {
		d, _ := strconv.Atoi(defaults[key])
		return d
	}
	return v
}

func (c *Config) GetDuration(key string) time.Duration {
	v, err := time.ParseDuration(c.GetString(key))
	if err != nil || v <= 0 {
		d, _ := time.ParseDuration(defaults[key])
		return d
	}
	return v
}
