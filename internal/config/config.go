// Package config reads the service settings from the environment.
package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
)

// Config holds the runtime settings of the graph service.
type Config struct {
	Host     string
	Port     int
	LogLevel string

	OTelEnabled bool
	ServiceName string

	// FontPath points at a TrueType font with Arabic coverage. Empty keeps
	// the renderer's built-in font.
	FontPath      string
	ArabicShaping bool
}

// Addr is the listen address.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Load reads the configuration, applying defaults for unset variables.
func Load() (Config, error) {
	cfg := Config{
		Host:        getenv("HOST", "localhost"),
		LogLevel:    strings.ToLower(getenv("LOG_LEVEL", "info")),
		ServiceName: getenv("OTEL_SERVICE_NAME", "fincalc-graph"),
		FontPath:    os.Getenv("GRAPH_FONT_PATH"),
	}

	var err error
	if cfg.Port, err = strconv.Atoi(getenv("PORT", "5000")); err != nil {
		return Config{}, fmt.Errorf("PORT: %w", err)
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("PORT: %d out of range", cfg.Port)
	}
	if cfg.OTelEnabled, err = strconv.ParseBool(getenv("OTEL_ENABLED", "true")); err != nil {
		return Config{}, fmt.Errorf("OTEL_ENABLED: %w", err)
	}
	if cfg.ArabicShaping, err = strconv.ParseBool(getenv("GRAPH_ARABIC_SHAPING", "true")); err != nil {
		return Config{}, fmt.Errorf("GRAPH_ARABIC_SHAPING: %w", err)
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
