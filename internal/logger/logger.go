// Package logger wraps op/go-logging with package-level helpers so every layer
// logs through the same backend.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/op/go-logging"
)

const (
	module     = "marketplace"
	timeFormat = "2006/01/02 15:04:05"
)

var logger *logging.Logger

func init() {
	InitLogger(os.Stderr, logging.INFO)
}

// InitLogger 重新設定輸出位置與等級
func InitLogger(w io.Writer, level logging.Level) {
	newLogger := logging.MustGetLogger(module)
	backend := logging.NewLogBackend(w, "", 0)
	formatted := logging.NewBackendFormatter(backend, logging.MustStringFormatter(
		`%{time:`+timeFormat+`} %{level} - %{message}`,
	))
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(level, module)
	newLogger.SetBackend(leveled)
	logger = newLogger
}

// ParseLevel maps a config string onto a logging level, falling back to INFO.
func ParseLevel(s string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "warn":
		return logging.WARNING
	}
	lvl, err := logging.LogLevel(s)
	if err != nil {
		return logging.INFO
	}
	return lvl
}

func Debug(args ...any) {
	logger.Debug(args...)
}

func Debugf(format string, args ...any) {
	logger.Debugf(format, args...)
}

func Info(args ...any) {
	logger.Info(args...)
}

func Infof(format string, args ...any) {
	logger.Infof(format, args...)
}

func Warning(args ...any) {
	logger.Warning(args...)
}

func Warningf(format string, args ...any) {
	logger.Warningf(format, args...)
}

func Error(args ...any) {
	logger.Error(args...)
}

func Errorf(format string, args ...any) {
	logger.Errorf(format, args...)
}
