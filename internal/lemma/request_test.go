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
	"strings"
	"testing"
	"testing/iotest"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milvus-io/lemmatizer/pkg/util/merr"
)

func TestParseRequest(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		tokens []string
	}{
		{"empty tokens", `{"tokens": []}`, []string{}},
		{"missing tokens", `{}`, []string{}},
		{"tokens not a list", `{"tokens": "слово"}`, []string{}},
		{"tokens null", `{"tokens": null}`, []string{}},
		{"top level list", `["слово"]`, []string{}},
		{"top level string", `"слово"`, []string{}},
		{"top level null", `null`, []string{}},
		{"blank tokens kept", `{"tokens": ["", "слово", ""]}`, []string{"", "слово", ""}},
		{"escaped strings", `{"tokens": ["слово", "a\"b"]}`, []string{"слово", `a"b`}},
		{"non string elements", `{"tokens": ["дома", 1, null, true, {"a": 1}, ["x"], "окна"]}`, []string{"дома", "", "", "", "", "", "окна"}},
		{"extra fields", `{"lang": "ru", "tokens": ["бежал"]}`, []string{"бежал"}},
		{"duplicate tokens last wins", `{"tokens": ["окна"], "tokens": ["кошки"]}`, []string{"кошки"}},
		{"duplicate tokens last not a list", `{"tokens": ["окна"], "tokens": 1}`, []string{}},
		{"escaped tokens key", `{"tok\u0065ns": ["окна"]}`, []string{"окна"}},
		{"surrounding whitespace", " \n{\"tokens\": [\"бежал\"]}\n", []string{"бежал"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req, err := ParseRequest([]byte(c.input))
			require.NoError(t, err)
			assert.Equal(t, c.tokens, req.Tokens)
		})
	}
}

func TestParseRequestMalformed(t *testing.T) {
	for _, input := range []string{
		"", "   ", "not json", `{"tokens": [`, `{"tokens": ["a",]}`, `{} {}`,
		"{\"tokens\": [\"a\xffb\", \"окна\"]}",
		"{\"tokens\": [\"окна\"]}\xfe",
	} {
		_, err := ParseRequest([]byte(input))
		assert.ErrorIs(t, err, merr.ErrRequestMalformed, input)
	}
}

func TestReadRequest(t *testing.T) {
	req, err := ReadRequest(strings.NewReader(`{"tokens": ["окна"]}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"окна"}, req.Tokens)

	_, err = ReadRequest(iotest.ErrReader(errors.New("stdin closed")))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, merr.ErrRequestMalformed)
}
