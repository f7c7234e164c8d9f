// Licensed to the LF AI & Data foundation under one
// or more contributor license agreements. See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership. The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License. You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package configs

import (
	"fmt"

	"github.com/milvus-io/lemmatizer/internal/log"
	"github.com/milvus-io/lemmatizer/internal/morph"
	"github.com/milvus-io/lemmatizer/internal/util/paramtable"
	"github.com/milvus-io/lemmatizer/pkg/util/merr"
)

const (
	AnalyzerDictionaryKey      = "analyzer.dictionary"
	AnalyzerPredictKey         = "analyzer.predict"
	AnalyzerMaxSuffixLengthKey = "analyzer.maxSuffixLength"
	AnalyzerFoldYoKey          = "analyzer.foldYo"
	ResolverCacheSizeKey       = "resolver.cacheSize"
	LogLevelKey                = "log.level"
	LogFormatKey               = "log.format"
	LogFileNameKey             = "log.file.filename"
	LogFileMaxSizeKey          = "log.file.maxSize"
	LogFileMaxAgeKey           = "log.file.maxAge"
	LogFileMaxBackupsKey       = "log.file.maxBackups"
	MetricsTextfileKey         = "metrics.textfile"
)

const (
	DefaultMaxSuffixLength = 5
	DefaultCacheSize       = 1024
	DefaultLogLevel        = "warn"
	DefaultLogFormat       = "text"
	DefaultLogMaxSize      = 300
	DefaultLogMaxAge       = 10
	DefaultLogMaxBackups   = 20
)

type AnalyzerConfig struct {
	morph.Config
	invalid error
}

func newAnalyzerConfig(base *paramtable.BaseTable) (*AnalyzerConfig, error) {
	c := &AnalyzerConfig{}
	return c, c.init(base)
}

func (c *AnalyzerConfig) init(base *paramtable.BaseTable) error {
	var predictErr, suffixErr, foldErr error
	c.DictionaryPath = base.LoadWithDefault(AnalyzerDictionaryKey, "")
	c.Predict, predictErr = base.ParseBool(AnalyzerPredictKey, true)
	c.MaxSuffixLength, suffixErr = base.ParseInt(AnalyzerMaxSuffixLengthKey, DefaultMaxSuffixLength)
	c.FoldYo, foldErr = base.ParseBool(AnalyzerFoldYoKey, true)
	return merr.Combine(predictErr, suffixErr, foldErr)
}

// Invalid returns why the analyzer settings cannot be used. A non-nil
// result means the run has no analyzer.
func (c *AnalyzerConfig) Invalid() error {
	return c.invalid
}

// Disable marks the analyzer settings unusable because of err.
func (c *AnalyzerConfig) Disable(err error) {
	c.invalid = merr.Combine(c.invalid, err)
}

func (c *AnalyzerConfig) String() string {
	if c == nil {
		return ""
	}
	return fmt.Sprintf("Dictionary: %s, Predict: %v, MaxSuffixLength: %d, FoldYo: %v",
		c.DictionaryPath, c.Predict, c.MaxSuffixLength, c.FoldYo)
}

type ResolverConfig struct {
	CacheSize int
}

func newResolverConfig(base *paramtable.BaseTable) (*ResolverConfig, error) {
	c := &ResolverConfig{}
	return c, c.init(base)
}

func (c *ResolverConfig) init(base *paramtable.BaseTable) error {
	var err error
	c.CacheSize, err = base.ParseInt(ResolverCacheSizeKey, DefaultCacheSize)
	return err
}

func (c *ResolverConfig) String() string {
	if c == nil {
		return ""
	}
	return fmt.Sprintf("CacheSize: %d", c.CacheSize)
}

func newLogConfig(base *paramtable.BaseTable) (*log.Config, error) {
	c := &log.Config{
		Level:  base.LoadWithDefault(LogLevelKey, DefaultLogLevel),
		Format: base.LoadWithDefault(LogFormatKey, DefaultLogFormat),
		File: log.FileLogConfig{
			Filename: base.LoadWithDefault(LogFileNameKey, ""),
		},
	}
	var sizeErr, ageErr, backupsErr error
	c.File.MaxSize, sizeErr = base.ParseInt(LogFileMaxSizeKey, DefaultLogMaxSize)
	c.File.MaxDays, ageErr = base.ParseInt(LogFileMaxAgeKey, DefaultLogMaxAge)
	c.File.MaxBackups, backupsErr = base.ParseInt(LogFileMaxBackupsKey, DefaultLogMaxBackups)
	return c, merr.Combine(sizeErr, ageErr, backupsErr)
}

// Config is the complete runtime configuration of one lemmatizer run.
type Config struct {
	base *paramtable.BaseTable
	*AnalyzerConfig
	*ResolverConfig
	Log             *log.Config
	MetricsTextfile string
}

func (c *Config) init(base *paramtable.BaseTable) error {
	var analyzerErr, resolverErr, logErr error
	c.base = base
	c.AnalyzerConfig, analyzerErr = newAnalyzerConfig(base)
	c.ResolverConfig, resolverErr = newResolverConfig(base)
	c.Log, logErr = newLogConfig(base)
	c.MetricsTextfile = base.LoadWithDefault(MetricsTextfileKey, "")

	analyzerLimitErr, limitErr := c.checkLimits()
	c.Disable(merr.Combine(analyzerErr, analyzerLimitErr))
	return merr.Combine(c.Invalid(), resolverErr, logErr, limitErr)
}

func (c *Config) String() string {
	if c == nil {
		return ""
	}
	return fmt.Sprintf("%s, %s, LogLevel: %s, LogFormat: %s, LogFile: %s, MetricsTextfile: %s",
		c.AnalyzerConfig, c.ResolverConfig, c.Log.Level, c.Log.Format, c.Log.File.Filename, c.MetricsTextfile)
}

// YamlFile returns the configuration file the run was loaded from.
func (c *Config) YamlFile() string {
	return c.base.YamlFile()
}

// NewConfig reads every known key from base and always returns a usable
// Config. Invalid analyzer keys disable the analyzer, see
// AnalyzerConfig.Invalid; any other invalid key falls back to its default.
// The returned error lists every rejected key as merr.ErrConfigInvalid.
func NewConfig(base *paramtable.BaseTable) (*Config, error) {
	c := &Config{}
	err := c.init(base)
	return c, err
}
