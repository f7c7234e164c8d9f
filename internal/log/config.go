// Copyright 2019 PingCAP, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// See the License for the specific language governing permissions and
// limitations under the License.

package log

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	defaultLogLevel   = "info"
	defaultLogMaxSize = 300 // MB
	defaultLogFormat  = "text"
)

// FileLogConfig serializes file log related config.
type FileLogConfig struct {
	// Log filename, leave empty to disable file log.
	Filename string
	// Max size for a single file, in MB.
	MaxSize int
	// Max log keep days, default is never deleting.
	MaxDays int
	// Maximum number of old log files to retain.
	MaxBackups int
}

// Config serializes log related config.
type Config struct {
	// Log level.
	Level string
	// Log format. one of json or text.
	Format string
	// Disable automatic timestamps in output.
	DisableTimestamp bool
	// Disable the caller annotation.
	DisableCaller bool
	// File log config.
	File FileLogConfig
}

// ZapProperties records some information about zap.
type ZapProperties struct {
	Core   zapcore.Core
	Syncer zapcore.WriteSyncer
	Level  zap.AtomicLevel
}

func (cfg *Config) buildOptions(errSink zapcore.WriteSyncer) []zap.Option {
	opts := []zap.Option{zap.ErrorOutput(errSink)}
	if !cfg.DisableCaller {
		opts = append(opts, zap.AddCaller())
	}
	return opts
}

func newEncoderConfig(cfg *Config) zapcore.EncoderConfig {
	cc := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "name",
		CallerKey:      "caller",
		MessageKey:     "message",
		StacktraceKey:  "stack",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	if cfg.DisableTimestamp {
		cc.TimeKey = ""
	}
	if cfg.DisableCaller {
		cc.CallerKey = ""
	}
	return cc
}

func newEncoder(cfg *Config) (zapcore.Encoder, error) {
	format := strings.ToLower(cfg.Format)
	if format == "" {
		format = defaultLogFormat
	}
	switch format {
	case "text", "console":
		return zapcore.NewConsoleEncoder(newEncoderConfig(cfg)), nil
	case "json":
		return zapcore.NewJSONEncoder(newEncoderConfig(cfg)), nil
	default:
		return nil, fmt.Errorf("unsupported log format: %s", cfg.Format)
	}
}
