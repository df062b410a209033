// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package commons

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the logging contract shared by every package of the service.
type Logger interface {
	Level() zapcore.Level
	Debug(args ...interface{})
	Debugf(template string, args ...interface{})
	Info(args ...interface{})
	Infof(template string, args ...interface{})
	Warn(args ...interface{})
	Warnf(template string, args ...interface{})
	Error(args ...interface{})
	Errorf(template string, args ...interface{})
	DPanic(args ...interface{})
	DPanicf(template string, args ...interface{})
	Panic(args ...interface{})
	Panicf(template string, args ...interface{})
	Fatal(args ...interface{})
	Fatalf(template string, args ...interface{})
	Benchmark(functionName string, duration time.Duration)
	Tracef(ctx context.Context, format string, args ...interface{})
	Sync() error
}

type loggerOptions struct {
	name       string
	path       string
	level      string
	enableFile bool
}

// LoggerOption configures NewApplicationLogger.
type LoggerOption func(*loggerOptions)

// Name sets the logger name and the log file base name.
func Name(name string) LoggerOption {
	return func(o *loggerOptions) { o.name = name }
}

// Path sets the directory for the rotated log file and enables file output.
func Path(path string) LoggerOption {
	return func(o *loggerOptions) {
		o.path = path
		o.enableFile = path != ""
	}
}

// Level sets the minimum level: debug, info, warn or error.
func Level(level string) LoggerOption {
	return func(o *loggerOptions) { o.level = level }
}

// EnableFile toggles the lumberjack file sink.
func EnableFile(enable bool) LoggerOption {
	return func(o *loggerOptions) { o.enableFile = enable }
}

type applicationLogger struct {
	*zap.SugaredLogger
	level zap.AtomicLevel
}

// NewApplicationLogger builds a zap backed logger writing to stdout and, when a
// path is configured, JSON lines to a size rotated file.
func NewApplicationLogger(opts ...LoggerOption) (Logger, error) {
	options := &loggerOptions{
		name:  "vietnormalizer",
		level: "info",
	}
	for _, opt := range opts {
		opt(options)
	}

	lvl, err := zapcore.ParseLevel(options.level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", options.level, err)
	}
	atomicLevel := zap.NewAtomicLevelAt(lvl)

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "time"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.Lock(os.Stdout), atomicLevel),
	}
	if options.enableFile && options.path != "" {
		if err := os.MkdirAll(options.path, 0o755); err != nil {
			return nil, fmt.Errorf("unable to create log directory %s: %w", options.path, err)
		}
		rotator := &lumberjack.Logger{
			Filename:   filepath.Join(options.path, options.name+".log"),
			MaxSize:    100,
			MaxBackups: 5,
			MaxAge:     28,
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(rotator), atomicLevel))
	}

	logger := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(1)).Named(options.name)
	return &applicationLogger{
		SugaredLogger: logger.Sugar(),
		level:         atomicLevel,
	}, nil
}

func (l *applicationLogger) Level() zapcore.Level {
	return l.level.Level()
}

func (l *applicationLogger) Benchmark(functionName string, duration time.Duration) {
	l.SugaredLogger.Debugw("benchmark", "function", functionName, "duration", duration.String())
}

func (l *applicationLogger) Tracef(ctx context.Context, format string, args ...interface{}) {
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok && requestID != "" {
		l.SugaredLogger.With("request_id", requestID).Debugf(format, args...)
		return
	}
	l.SugaredLogger.Debugf(format, args...)
}
