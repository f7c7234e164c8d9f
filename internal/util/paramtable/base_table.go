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

package paramtable

import (
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"github.com/milvus-io/lemmatizer/pkg/util/merr"
)

const (
	DefaultEnvPrefix = "LEMMATIZER"
	DefaultYamlType  = "yaml"
)

var ErrKeyNotFound = errors.New("key not found")

// BaseTable resolves configuration keys from, in order of precedence,
// values saved at runtime, LEMMATIZER_* environment variables, the YAML
// file and finally the caller supplied default.
type BaseTable struct {
	mu       sync.RWMutex
	v        *viper.Viper
	overlay  map[string]string
	yamlFile string
}

type baseTableConfig struct {
	yamlFile string
}

type Option func(*baseTableConfig)

// Files sets the yaml file the table reads, empty means env only.
func Files(yamlFile string) Option {
	return func(c *baseTableConfig) {
		c.yamlFile = yamlFile
	}
}

func NewBaseTable(opts ...Option) (*BaseTable, error) {
	c := &baseTableConfig{}
	for _, opt := range opts {
		opt(c)
	}

	v := viper.New()
	v.SetEnvPrefix(DefaultEnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if c.yamlFile != "" {
		v.SetConfigFile(c.yamlFile)
		v.SetConfigType(DefaultYamlType)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrap(merr.WrapErrConfigInvalid("config", c.yamlFile, "failed to read yaml"), err.Error())
		}
	}
	return &BaseTable{
		v:        v,
		overlay:  make(map[string]string),
		yamlFile: c.yamlFile,
	}, nil
}

func formatKey(key string) string {
	return strings.ToLower(key)
}

// YamlFile returns the file the table was loaded from, if any.
func (bt *BaseTable) YamlFile() string {
	return bt.yamlFile
}

// Save overrides key for the lifetime of the table.
func (bt *BaseTable) Save(key, value string) error {
	bt.mu.Lock()
	defer bt.mu.Unlock()
	bt.overlay[formatKey(key)] = value
	return nil
}

func (bt *BaseTable) Load(key string) (string, error) {
	bt.mu.RLock()
	defer bt.mu.RUnlock()
	if value, ok := bt.overlay[formatKey(key)]; ok {
		return value, nil
	}
	if !bt.v.IsSet(key) {
		return "", errors.Wrap(ErrKeyNotFound, key)
	}
	value, err := cast.ToStringE(bt.v.Get(key))
	if err != nil {
		return "", merr.WrapErrConfigInvalid(key, bt.v.Get(key), err.Error())
	}
	return value, nil
}

func (bt *BaseTable) LoadWithDefault(key, defaultValue string) string {
	value, err := bt.Load(key)
	if err != nil {
		return defaultValue
	}
	return value
}

func (bt *BaseTable) ParseBool(key string, defaultValue bool) (bool, error) {
	value, err := bt.Load(key)
	if err != nil {
		return defaultValue, nil
	}
	b, err := cast.ToBoolE(strings.TrimSpace(value))
	if err != nil {
		return defaultValue, merr.WrapErrConfigInvalid(key, value, "bool expected")
	}
	return b, nil
}

func (bt *BaseTable) ParseInt(key string, defaultValue int) (int, error) {
	value, err := bt.Load(key)
	if err != nil {
		return defaultValue, nil
	}
	i, err := cast.ToIntE(strings.TrimSpace(value))
	if err != nil {
		return defaultValue, merr.WrapErrConfigInvalid(key, value, "integer expected")
	}
	return i, nil
}
