// Package logger provides structured logging for the scraper, built on
// zerolog with console output and optional rotating file output.
//
// The package-level helpers (Infof, Warnf, Debugf, Errorf) write through a
// shared logger configured once by Init. Before Init is called, output goes
// to stderr at the info level, so library packages can log unconditionally.
package logger

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config controls log level and file rotation.
type Config struct {
	Level      string `mapstructure:"level"`
	Dir        string `mapstructure:"dir"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

// DefaultConfig returns console-only logging at info level.
func DefaultConfig() Config {
	return Config{
		Level:      "info",
		MaxSizeMB:  10,
		MaxBackups: 3,
		MaxAgeDays: 28,
	}
}

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
	With().Timestamp().Logger()

// Init configures the shared logger. When cfg.Dir is non-empty, entries are
// also written to a rotating file under that directory.
func Init(cfg Config) error {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}

	var out io.Writer = console
	if cfg.Dir != "" {
		if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
			return err
		}
		out = io.MultiWriter(console, &lumberjack.Logger{
			Filename:   filepath.Join(cfg.Dir, "mtb-results.log"),
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
		})
	}

	log = zerolog.New(out).Level(level).With().Timestamp().Logger()
	return nil
}

// SetOutput redirects the shared logger, keeping the current level.
// Intended for tests.
func SetOutput(w io.Writer) {
	log = zerolog.New(w).Level(log.GetLevel()).With().Timestamp().Logger()
}

// Debugf logs a formatted debug message.
func Debugf(format string, args ...interface{}) {
	log.Debug().Msgf(format, args...)
}

// Infof logs a formatted info message.
func Infof(format string, args ...interface{}) {
	log.Info().Msgf(format, args...)
}

// Warnf logs a formatted warning message.
func Warnf(format string, args ...interface{}) {
	log.Warn().Msgf(format, args...)
}

// Errorf logs a formatted error message.
func Errorf(format string, args ...interface{}) {
	log.Error().Msgf(format, args...)
}

// Error logs an error with a message.
func Error(err error, msg string) {
	log.Error().Err(err).Msg(msg)
}
