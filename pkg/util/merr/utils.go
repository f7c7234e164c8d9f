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

package merr

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

type errorField interface {
	String() string
}

type valueField struct {
	name  string
	value any
}

func value(name string, value any) valueField {
	return valueField{
		name,
		value,
	}
}

func (f valueField) String() string {
	return fmt.Sprintf("%s=%v", f.name, f.value)
}

func wrapFields(err lemmatizerError, fields ...errorField) error {
	if len(fields) == 0 {
		return err
	}
	var b strings.Builder
	b.WriteByte('[')
	for i, field := range fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(field.String())
	}
	b.WriteByte(']')
	return errors.Wrap(err, b.String())
}

func wrapMsg(err error, msg []string) error {
	if len(msg) > 0 {
		err = errors.Wrap(err, strings.Join(msg, "->"))
	}
	return err
}

// Analyzer related

func WrapErrAnalyzerUnavailable(reason string, msg ...string) error {
	err := wrapFields(ErrAnalyzerUnavailable, value("reason", reason))
	return wrapMsg(err, msg)
}

func WrapErrDictionaryInvalid(path string, line int, msg ...string) error {
	err := wrapFields(ErrDictionaryInvalid,
		value("path", path),
		value("line", line),
	)
	return wrapMsg(err, msg)
}

func WrapErrTokenLookup(token string, cause error) error {
	err := wrapFields(ErrTokenLookup, value("token", token))
	if cause != nil {
		err = errors.Wrap(err, cause.Error())
	}
	return err
}

// Request related

func WrapErrRequestMalformed(size int, msg ...string) error {
	err := wrapFields(ErrRequestMalformed, value("size", size))
	return wrapMsg(err, msg)
}

func WrapErrResponseWrite(cause error) error {
	if cause == nil {
		return ErrResponseWrite
	}
	return errors.Wrap(ErrResponseWrite, cause.Error())
}

// Parameter related

func WrapErrConfigInvalid(key string, val any, msg ...string) error {
	err := wrapFields(ErrConfigInvalid,
		value("key", key),
		value("value", val),
	)
	return wrapMsg(err, msg)
}
