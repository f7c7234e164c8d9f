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

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap/zapcore"

	"github.com/milvus-io/lemmatizer/pkg/util/merr"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		_, err := zapcore.ParseLevel(fl.Field().String())
		return err == nil
	})
	return v
}

// limit is a constraint on one key. Keys without reset have no safe
// default: breaking them disables the analyzer.
type limit struct {
	key   string
	tag   string
	value func(c *Config) any
	reset func(c *Config)
}

var limits = []limit{
	{
		key:   AnalyzerMaxSuffixLengthKey,
		tag:   "min=1,max=10",
		value: func(c *Config) any { return c.MaxSuffixLength },
	},
	{
		key:   ResolverCacheSizeKey,
		tag:   "gte=0",
		value: func(c *Config) any { return c.CacheSize },
		reset: func(c *Config) { c.CacheSize = DefaultCacheSize },
	},
	{
		key:   LogLevelKey,
		tag:   "loglevel",
		value: func(c *Config) any { return c.Log.Level },
		reset: func(c *Config) { c.Log.Level = DefaultLogLevel },
	},
	{
		key:   LogFormatKey,
		tag:   "oneof=text json",
		value: func(c *Config) any { return c.Log.Format },
		reset: func(c *Config) { c.Log.Format = DefaultLogFormat },
	},
	{
		key:   LogFileMaxSizeKey,
		tag:   "gte=0",
		value: func(c *Config) any { return c.Log.File.MaxSize },
		reset: func(c *Config) { c.Log.File.MaxSize = DefaultLogMaxSize },
	},
	{
		key:   LogFileMaxAgeKey,
		tag:   "gte=0",
		value: func(c *Config) any { return c.Log.File.MaxDays },
		reset: func(c *Config) { c.Log.File.MaxDays = DefaultLogMaxAge },
	},
	{
		key:   LogFileMaxBackupsKey,
		tag:   "gte=0",
		value: func(c *Config) any { return c.Log.File.MaxBackups },
		reset: func(c *Config) { c.Log.File.MaxBackups = DefaultLogMaxBackups },
	},
}

// checkLimits applies limits to c, resetting what can be reset. It returns
// the violations of analyzer keys and of all other keys separately.
func (c *Config) checkLimits() (analyzerErr error, fallbackErr error) {
	var analyzerErrs, fallbackErrs []error
	for _, l := range limits {
		value := l.value(c)
		err := validate.Var(value, l.tag)
		if err == nil {
			continue
		}
		err = merr.WrapErrConfigInvalid(l.key, value, describe(err))
		if l.reset == nil {
			analyzerErrs = append(analyzerErrs, err)
			continue
		}
		l.reset(c)
		fallbackErrs = append(fallbackErrs, err)
	}
	return merr.Combine(analyzerErrs...), merr.Combine(fallbackErrs...)
}

func describe(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err.Error()
	}
	fe := fieldErrs[0]
	if fe.Param() == "" {
		return fmt.Sprintf("must satisfy %s", fe.Tag())
	}
	return fmt.Sprintf("must satisfy %s=%s", fe.Tag(), fe.Param())
}
