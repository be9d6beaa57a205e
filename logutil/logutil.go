// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logutil builds the zap loggers used by the sortbench command.
package logutil

import (
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/xerrors"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config describes a logger. The zero value logs at info level in console
// format to standard error.
type Config struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "console" or "json"

	// Filename, when set, sends output to a file rotated by size.
	Filename   string `toml:"filename"`
	MaxSize    int    `toml:"max-size"` // megabytes
	MaxDays    int    `toml:"max-days"`
	MaxBackups int    `toml:"max-backups"`
}

// Build returns a logger for c.
func (c *Config) Build() (*zap.Logger, error) {
	return c.BuildWithSyncer(c.syncer())
}

// BuildWithSyncer is like Build but writes to ws, ignoring Filename.
func (c *Config) BuildWithSyncer(ws zapcore.WriteSyncer) (*zap.Logger, error) {
	level, err := c.level()
	if err != nil {
		return nil, err
	}
	enc, err := encoder(c.Format)
	if err != nil {
		return nil, err
	}
	core := zapcore.NewCore(enc, ws, level)
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.FatalLevel)), nil
}

func (c *Config) level() (zap.AtomicLevel, error) {
	if c.Level == "" {
		return zap.NewAtomicLevelAt(zap.InfoLevel), nil
	}
	level, err := zap.ParseAtomicLevel(c.Level)
	if err != nil {
		return level, xerrors.Errorf("logutil: %w", err)
	}
	return level, nil
}

func (c *Config) syncer() zapcore.WriteSyncer {
	if c.Filename == "" {
		return zapcore.Lock(os.Stderr)
	}
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   c.Filename,
		MaxSize:    c.MaxSize,
		MaxAge:     c.MaxDays,
		MaxBackups: c.MaxBackups,
		LocalTime:  true,
	})
}

func encoder(format string) (zapcore.Encoder, error) {
	cfg := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "name",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.TimeEncoderOfLayout("2006/01/02 15:04:05.000000 -0700"),
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	switch format {
	case "", "console":
		return zapcore.NewConsoleEncoder(cfg), nil
	case "json":
		cfg.EncodeTime = zapcore.RFC3339NanoTimeEncoder
		return zapcore.NewJSONEncoder(cfg), nil
	}
	return nil, xerrors.Errorf("logutil: unsupported log format %q", format)
}

// Elapsed returns a field recording d in milliseconds.
func Elapsed(d time.Duration) zap.Field {
	return zap.Float64("elapsed_ms", float64(d)/float64(time.Millisecond))
}
