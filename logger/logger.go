// SPDX-License-Identifier: MIT

// Package logger wires every quadra module logger onto github.com/op/go-logging.
//
// Library packages obtain their logger once, at package scope:
//
//	var log = logger.MustGetLogger("quad")
//
// and only ever log at DEBUG (per-level convergence traces) or WARNING
// (budget exhausted, degenerate input). Until a binary calls InitConsoleLog or
// InitLog, module loggers stay at DefaultLevel so importing the library is silent.
package logger

import (
	"fmt"
	"os"
	"path"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/op/go-logging"
)

const (
	// RotationInterval is the period after which InitLog starts a new file.
	RotationInterval = 24 * time.Hour
	// MaxAge bounds how long rotated files are kept on disk.
	MaxAge = 7 * 24 * time.Hour

	// Format is the plain layout used for file output.
	Format = "%{time:2006-01-02 15:04:05.000} [%{level:.4s}] %{module} %{shortfile} %{message}"
	// ColorFormat is the terminal layout used for console output.
	ColorFormat = "%{color}%{time:2006-01-02 15:04:05.000} [%{level:.4s}]%{color:reset} %{module} %{shortfile} %{message}"

	// DefaultLevel is the level every module logger starts at.
	DefaultLevel = logging.WARNING
)

// Logger is a module logger. It embeds *logging.Logger so the full
// go-logging method set (Debugf, Warningf, IsEnabledFor, …) is available.
type Logger struct {
	*logging.Logger
}

// MustGetLogger returns the logger for module and pins the module to
// DefaultLevel on the current default backend.
func MustGetLogger(module string) *Logger {
	l := logging.MustGetLogger(module)
	logging.SetLevel(DefaultLevel, module)

	return &Logger{l}
}

// ParseLevel converts "debug", "info", "warning", … into a go-logging level.
func ParseLevel(level string) (logging.Level, error) {
	lvl, err := logging.LogLevel(level)
	if err != nil {
		return logging.ERROR, fmt.Errorf("logger: %w", err)
	}

	return lvl, nil
}

// InitConsoleLog routes all modules to stderr with the color layout at level.
func InitConsoleLog(level string) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}
	console := logging.AddModuleLevel(
		logging.NewBackendFormatter(
			logging.NewLogBackend(os.Stderr, "", 0),
			logging.MustStringFormatter(ColorFormat),
		),
	)
	console.SetLevel(lvl, "")
	logging.SetBackend(console)

	return nil
}

// InitLog routes all modules to stderr and to a daily-rotated file at
// filePath, both at level. The parent directory is created when missing.
func InitLog(filePath, level string) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}

	console := logging.AddModuleLevel(
		logging.NewBackendFormatter(
			logging.NewLogBackend(os.Stderr, "", 0),
			logging.MustStringFormatter(ColorFormat),
		),
	)
	console.SetLevel(lvl, "")

	if err = os.MkdirAll(path.Dir(filePath), 0o755); err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	writer, err := rotatelogs.New(
		filePath+".%Y-%m-%d",
		rotatelogs.WithLinkName(filePath),
		rotatelogs.WithMaxAge(MaxAge),
		rotatelogs.WithRotationTime(RotationInterval),
	)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	file := logging.AddModuleLevel(
		logging.NewBackendFormatter(
			logging.NewLogBackend(writer, "", 0),
			logging.MustStringFormatter(Format),
		),
	)
	file.SetLevel(lvl, "")
	logging.SetBackend(console, file)

	return nil
}
