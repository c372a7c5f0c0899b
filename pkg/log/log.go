// Copyright 2024 RADE Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package log provides structured logging for the module, backed by zap.
// Loggers carry context as key value pairs, mirroring the error context
// convention in serrors.
package log

import (
	"fmt"
	"runtime/debug"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level is the log level.
type Level = zapcore.Level

// Config configures the process-wide logger installed by Setup.
type Config struct {
	// Level of the logging entries. One of "debug", "info", "error".
	// Empty means "info".
	Level string
	// StacktraceLevel is the level at which stack traces are attached.
	// Empty means "none".
	StacktraceLevel string
	// Format of the log entries, "human" or "json". Empty means "human".
	Format string
}

// Setup configures the process-wide logger. It must be called before any
// logging happens; packages use the root logger via the package-level
// functions or Root.
func Setup(cfg Config) error {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return err
	}
	encoding := "console"
	if cfg.Format == "json" {
		encoding = "json"
	} else if cfg.Format != "" && cfg.Format != "human" {
		return fmt.Errorf("unsupported log format: %s", cfg.Format)
	}
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	if encoding == "console" {
		encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	zCfg := zap.Config{
		Level:             zap.NewAtomicLevelAt(level),
		DisableCaller:     true,
		DisableStacktrace: cfg.StacktraceLevel == "",
		Encoding:          encoding,
		EncoderConfig:     encoderCfg,
		OutputPaths:       []string{"stderr"},
		ErrorOutputPaths:  []string{"stderr"},
	}
	opts := []zap.Option{}
	if cfg.StacktraceLevel != "" {
		stLevel, err := parseLevel(cfg.StacktraceLevel)
		if err != nil {
			return err
		}
		zCfg.DisableStacktrace = false
		opts = append(opts, zap.AddStacktrace(stLevel))
	}
	l, err := zCfg.Build(opts...)
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(l)
	return nil
}

func parseLevel(lvl string) (zapcore.Level, error) {
	if lvl == "" {
		return zapcore.InfoLevel, nil
	}
	switch strings.ToLower(lvl) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info":
		return zapcore.InfoLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("unsupported log level: %s", lvl)
	}
}

// Logger describes the logger interface.
type Logger interface {
	New(ctx ...interface{}) Logger
	Debug(msg string, ctx ...interface{})
	Info(msg string, ctx ...interface{})
	Error(msg string, ctx ...interface{})
	Enabled(lvl Level) bool
}

type logger struct {
	logger *zap.Logger
}

// New creates a logger with the given context, derived from the root logger.
func New(ctx ...interface{}) Logger {
	return &logger{logger: zap.L().With(convertCtx(ctx)...)}
}

// Root returns the root logger. It's a logger without any context.
func Root() Logger {
	return &logger{logger: zap.L()}
}

func (l *logger) New(ctx ...interface{}) Logger {
	return &logger{logger: l.logger.With(convertCtx(ctx)...)}
}

func (l *logger) Debug(msg string, ctx ...interface{}) {
	l.logger.Debug(msg, convertCtx(ctx)...)
}

func (l *logger) Info(msg string, ctx ...interface{}) {
	l.logger.Info(msg, convertCtx(ctx)...)
}

func (l *logger) Error(msg string, ctx ...interface{}) {
	l.logger.Error(msg, convertCtx(ctx)...)
}

func (l *logger) Enabled(lvl Level) bool {
	return l.logger.Core().Enabled(lvl)
}

// Debug logs at debug level on the root logger.
func Debug(msg string, ctx ...interface{}) {
	zap.L().Debug(msg, convertCtx(ctx)...)
}

// Info logs at info level on the root logger.
func Info(msg string, ctx ...interface{}) {
	zap.L().Info(msg, convertCtx(ctx)...)
}

// Error logs at error level on the root logger.
func Error(msg string, ctx ...interface{}) {
	zap.L().Error(msg, convertCtx(ctx)...)
}

// Discard sets the logger up to discard all log entries. This is useful for
// testing.
func Discard() {
	zap.ReplaceGlobals(zap.NewNop())
}

// HandlePanic catches panics and logs them. Use at the top of goroutines.
func HandlePanic() {
	if msg := recover(); msg != nil {
		zap.L().Error("Panic", zap.Any("msg", msg),
			zap.ByteString("stack", debug.Stack()))
		zap.L().Sync()
		panic(msg)
	}
}

func convertCtx(ctx []interface{}) []zap.Field {
	fields := make([]zap.Field, 0, len(ctx)/2)
	for i := 0; i+1 < len(ctx); i += 2 {
		fields = append(fields, zap.Any(fmt.Sprint(ctx[i]), ctx[i+1]))
	}
	return fields
}
