package config

import (
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EnvProduction  = "production"
	EnvDevelopment = "development"

	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

type Config struct {
	AppEnv           string
	GinMode          string
	Host             string
	Port             string
	StoreDriver      string
	LogLevel         string
	LogFormat        string
	CORSAllowOrigins []string
	RateLimitRPS     float64
	RateLimitBurst   int
}

// Load reads the configuration from the environment. Outside production a
// .env file in the working directory is loaded first, if there is one;
// variables already set in the environment win.
func Load() *Config {
	env := getenv("APP_ENV", EnvDevelopment)

	if env != EnvProduction {
		if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			log.Printf("warning: could not load .env: %v", err)
		}
	}

	cfg := &Config{
		AppEnv:           env,
		GinMode:          getenv("GIN_MODE", defaultGinMode(env)),
		Host:             getenv("HOST", defaultHost(env)),
		Port:             getenv("PORT", "9000"),
		StoreDriver:      strings.ToLower(getenv("STORE_DRIVER", StoreMemory)),
		LogLevel:         getenv("LOG_LEVEL", "info"),
		LogFormat:        getenv("LOG_FORMAT", "text"),
		CORSAllowOrigins: splitList(getenv("CORS_ALLOW_ORIGINS", "*")),
		RateLimitRPS:     getenvFloat("RATE_LIMIT_RPS", 0),
		RateLimitBurst:   getenvInt("RATE_LIMIT_BURST", 10),
	}

	return cfg
}

// Validate reports configuration that the server cannot start with.
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case StoreMemory, StoreSQLite:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q (want %s or %s)", c.StoreDriver, StoreMemory, StoreSQLite)
	}

	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 0 || port > 65535 {
		return fmt.Errorf("invalid PORT %q", c.Port)
	}

	if c.RateLimitRPS < 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must not be negative, got %v", c.RateLimitRPS)
	}
	if c.RateLimitRPS > 0 && c.RateLimitBurst < 1 {
		return fmt.Errorf("RATE_LIMIT_BURST must be at least 1, got %d", c.RateLimitBurst)
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == EnvProduction
}

func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

func defaultHost(env string) string {
	if env == EnvProduction {
		return "0.0.0.0"
	}
	return "localhost"
}

func defaultGinMode(env string) string {
	if env == EnvProduction {
		return "release"
	}
	return "debug"
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return def
}

func getenvFloat(key string, def float64) float64 {
	if v, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return v
	}
	return def
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
