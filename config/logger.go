package config

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger builds the process logger. LOG_FORMAT=console switches to
// the human-readable writer; LOG_LEVEL sets the threshold.
func NewLogger(service string) zerolog.Logger {
	var out io.Writer = os.Stdout
	if Getenv("LOG_FORMAT", "json") == "console" {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
	}

	level, err := zerolog.ParseLevel(strings.ToLower(Getenv("LOG_LEVEL", "info")))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano
	return zerolog.New(out).With().Timestamp().Str("service", service).Logger().Level(level)
}
