package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ParseLevel accepts debug, info, warn and error in any case. Empty means info.
func ParseLevel(name string) (zerolog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return zerolog.DebugLevel, nil
	case "", "info":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("%w: %q", ErrInvalidLogLevel, name)
	}
}

// SetLogLevel points the global logger at stderr and sets its level from LOG_LEVEL, falling
// back to the configured level.
func SetLogLevel(fallback string) error {
	name := fallback
	if env := os.Getenv("LOG_LEVEL"); env != "" {
		name = env
	}

	level, err := ParseLevel(name)
	if err != nil {
		return err
	}

	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	return nil
}
