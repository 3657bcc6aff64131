// Package config loads server configuration from the environment, with
// an optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/jason-s-yu/euchre/engine"
)

// Config holds everything the server reads from the environment.
type Config struct {
	ListenAddr     string
	LogLevel       logrus.Level
	JWTSecret      []byte
	AllowedOrigins []string
	SeatNames      [engine.NumSeats]string
}

// Load reads the .env file if present, then the environment. Missing
// values fall back to development defaults, except EUCHRE_JWT_SECRET
// which is required.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ListenAddr:     getenv("EUCHRE_LISTEN_ADDR", ":8080"),
		AllowedOrigins: strings.Split(getenv("EUCHRE_ALLOWED_ORIGINS", "localhost:*"), ","),
		SeatNames:      [engine.NumSeats]string{"You", "West", "Partner", "East"},
	}

	level, err := logrus.ParseLevel(getenv("EUCHRE_LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("parse EUCHRE_LOG_LEVEL: %w", err)
	}
	cfg.LogLevel = level

	secret := os.Getenv("EUCHRE_JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("EUCHRE_JWT_SECRET is required")
	}
	cfg.JWTSecret = []byte(secret)

	if names := os.Getenv("EUCHRE_SEAT_NAMES"); names != "" {
		parts := strings.Split(names, ",")
		for i := 0; i < len(parts) && i < engine.NumSeats; i++ {
			cfg.SeatNames[i] = strings.TrimSpace(parts[i])
		}
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
