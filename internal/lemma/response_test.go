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
	"bytes"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milvus-io/lemmatizer/pkg/util/merr"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

type countingWriter struct {
	bytes.Buffer
	writes int
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.writes++
	return w.Buffer.Write(p)
}

func TestWriteResponse(t *testing.T) {
	cases := []struct {
		name     string
		resp     *Response
		expected string
	}{
		{"empty", EmptyResponse(), `{"lemmas":[]}` + "\n"},
		{"nil response", nil, `{"lemmas":[]}` + "\n"},
		{"nil lemmas", &Response{}, `{"lemmas":[]}` + "\n"},
		{"non ascii literal", NewResponse([]string{"бежать", "дом", "окно"}), `{"lemmas":["бежать","дом","окно"]}` + "\n"},
		{"html literal", NewResponse([]string{"<a&b>"}), `{"lemmas":["<a&b>"]}` + "\n"},
		{"quotes escaped", NewResponse([]string{`a"b`}), `{"lemmas":["a\"b"]}` + "\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := &countingWriter{}
			require.NoError(t, WriteResponse(w, c.resp))
			assert.Equal(t, c.expected, w.String())
			assert.Equal(t, 1, w.writes)
		})
	}
}

func TestWriteResponseFailure(t *testing.T) {
	err := WriteResponse(failingWriter{}, NewResponse([]string{"дом"}))
	assert.ErrorIs(t, err, merr.ErrResponseWrite)
}
