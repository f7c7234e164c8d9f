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

package lemma

import (
	"io"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"github.com/tidwall/gjson"

	"github.com/milvus-io/lemmatizer/pkg/util/merr"
)

const tokensField = "tokens"

// Request is the decoded input of one run.
type Request struct {
	Tokens []string
}

// ParseRequest decodes data as `{"tokens": [...]}`.
//
// Only input that is not UTF-8 or not JSON is an error. A document that is
// not an object, or whose tokens field is missing or not an array, yields no
// tokens. When the tokens key repeats, the last occurrence wins. Array
// elements that are not strings are kept as empty tokens so the resolver
// skips them.
func ParseRequest(data []byte) (*Request, error) {
	if !utf8.Valid(data) {
		return nil, merr.WrapErrRequestMalformed(len(data), "invalid utf-8")
	}
	if !gjson.ValidBytes(data) {
		return nil, merr.WrapErrRequestMalformed(len(data), "invalid json")
	}
	req := &Request{Tokens: []string{}}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return req, nil
	}
	var field gjson.Result
	root.ForEach(func(key, value gjson.Result) bool {
		if key.Str == tokensField {
			field = value
		}
		return true
	})
	if !field.IsArray() {
		return req, nil
	}
	field.ForEach(func(_, value gjson.Result) bool {
		if value.Type == gjson.String {
			req.Tokens = append(req.Tokens, value.Str)
		} else {
			req.Tokens = append(req.Tokens, "")
		}
		return true
	})
	return req, nil
}

// ReadRequest reads r to the end and decodes it.
func ReadRequest(r io.Reader) (*Request, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read request")
	}
	return ParseRequest(data)
}
