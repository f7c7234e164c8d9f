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

	"github.com/milvus-io/lemmatizer/internal/json"
	"github.com/milvus-io/lemmatizer/pkg/util/merr"
)

// Response is the encoded output of one run.
type Response struct {
	Lemmas []string `json:"lemmas"`
}

// NewResponse wraps lemmas, a nil slice is sent as an empty list.
func NewResponse(lemmas []string) *Response {
	if lemmas == nil {
		lemmas = []string{}
	}
	return &Response{Lemmas: lemmas}
}

// EmptyResponse is what callers get when no analyzer is available.
func EmptyResponse() *Response {
	return NewResponse(nil)
}

// WriteResponse encodes resp as a single line and writes it with one call,
// nothing reaches w if encoding fails.
func WriteResponse(w io.Writer, resp *Response) error {
	if resp == nil {
		resp = EmptyResponse()
	}
	if resp.Lemmas == nil {
		resp = NewResponse(nil)
	}
	data, err := json.Marshal(resp)
	if err != nil {
		return merr.WrapErrResponseWrite(err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return merr.WrapErrResponseWrite(err)
	}
	return nil
}
