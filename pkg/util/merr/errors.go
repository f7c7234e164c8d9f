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
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

// Define leaf errors here,
// WARN: take care to add new error,
// check whether you can use the errors below before adding a new one.
// Name: Err + related prefix + error name
var (
	// Analyzer related
	ErrAnalyzerUnavailable = newLemmatizerError("analyzer unavailable", 100)
	ErrDictionaryInvalid   = newLemmatizerError("invalid dictionary", 101)
	ErrTokenLookup         = newLemmatizerError("token lookup failed", 102)

	// Request related
	ErrRequestMalformed = newLemmatizerError("malformed request", 200)
	ErrResponseWrite    = newLemmatizerError("failed to write response", 201)

	// Parameter related
	ErrConfigInvalid = newLemmatizerError("invalid config", 300)

	// Do NOT export this,
	// never allow programmer using this, keep only for converting unknown error to lemmatizerError
	errUnexpected = newLemmatizerError("unexpected error", (1<<16)-1)
)

type lemmatizerError struct {
	msg     string
	errCode int32
}

func newLemmatizerError(msg string, code int32) lemmatizerError {
	return lemmatizerError{
		msg:     msg,
		errCode: code,
	}
}

func (e lemmatizerError) code() int32 {
	return e.errCode
}

func (e lemmatizerError) Error() string {
	return e.msg
}

func (e lemmatizerError) Is(err error) bool {
	cause := errors.Cause(err)
	if cause, ok := cause.(lemmatizerError); ok {
		return e.errCode == cause.errCode
	}
	return false
}

// Code returns the code of the lemmatizer error carried by err,
// 0 for nil and the unexpected code for foreign errors.
func Code(err error) int32 {
	if err == nil {
		return 0
	}

	cause := errors.Cause(err)
	switch cause := cause.(type) {
	case lemmatizerError:
		return cause.code()

	default:
		for _, leaf := range []lemmatizerError{
			ErrAnalyzerUnavailable,
			ErrDictionaryInvalid,
			ErrTokenLookup,
			ErrRequestMalformed,
			ErrResponseWrite,
			ErrConfigInvalid,
		} {
			if errors.Is(err, leaf) {
				return leaf.code()
			}
		}
		return errUnexpected.code()
	}
}

type multiErrors struct {
	errs []error
}

func (e multiErrors) Unwrap() error {
	if len(e.errs) <= 1 {
		return nil
	}
	// To make merr work for multi errors,
	// we need cause of multi errors, which defined as the last error
	if len(e.errs) == 2 {
		return e.errs[1]
	}

	return multiErrors{
		errs: e.errs[1:],
	}
}

func (e multiErrors) Error() string {
	final := e.errs[0]
	for i := 1; i < len(e.errs); i++ {
		final = errors.Wrap(e.errs[i], final.Error())
	}
	return final.Error()
}

func (e multiErrors) Is(err error) bool {
	for _, item := range e.errs {
		if errors.Is(item, err) {
			return true
		}
	}
	return false
}

func Combine(errs ...error) error {
	errs = lo.Filter(errs, func(err error, _ int) bool { return err != nil })
	if len(errs) == 0 {
		return nil
	}
	return multiErrors{
		errs,
	}
}
