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

package command

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milvus-io/lemmatizer/cmd/lemmatizer/console"
	"github.com/milvus-io/lemmatizer/pkg/util/merr"
)

const testDictionary = `1
КОШКА	NOUN,anim,femn sing,nomn
КОШКИ	NOUN,anim,femn sing,gent
КОШКОЙ	NOUN,anim,femn sing,ablt

2
БЕЖАТЬ	INFN,perf,intr
БЕЖАЛ	VERB,perf,intr masc,sing,past,indc
БЕЖАЛА	VERB,perf,intr femn,sing,past,indc

3
ОКНО	NOUN,inan,neut sing,nomn
ОКНА	NOUN,inan,neut sing,gent
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func runExecute(t *testing.T, stdin io.Reader, args ...string) (console.ErrorCode, string, error) {
	t.Helper()
	stdout := &bytes.Buffer{}
	code, err := execute(append([]string{"lemmatizer"}, args...), stdin, stdout, io.Discard)
	return code, stdout.String(), err
}

func TestExecute_Lemmatize(t *testing.T) {
	dict := writeFile(t, "dict.opcorpora.txt", testDictionary)
	stdin := strings.NewReader(`{"tokens": ["Кошки", "", "бежала", "окна", "Hello", "42", "ъъъ"]}`)

	code, stdout, err := runExecute(t, stdin, "-dict", dict, "-log-level", "error")
	require.NoError(t, err)
	assert.Equal(t, console.NormalCode, code)
	assert.Equal(t, "{\"lemmas\":[\"кошка\",\"бежать\",\"окно\",\"hello\",\"42\",\"ъъъ\"]}\n", stdout)
}

func TestExecute_ConfigFile(t *testing.T) {
	dict := writeFile(t, "dict.opcorpora.txt", testDictionary)
	yaml := writeFile(t, "lemmatizer.yaml", "analyzer:\n  dictionary: "+dict+"\nlog:\n  level: error\n")

	code, stdout, err := runExecute(t, strings.NewReader(`{"tokens": ["кошкой"]}`), "-config", yaml)
	require.NoError(t, err)
	assert.Equal(t, console.NormalCode, code)
	assert.Equal(t, "{\"lemmas\":[\"кошка\"]}\n", stdout)
}

func TestExecute_DictionaryFromEnv(t *testing.T) {
	t.Setenv("LEMMATIZER_ANALYZER_DICTIONARY", writeFile(t, "dict.opcorpora.txt", testDictionary))
	t.Setenv("LEMMATIZER_LOG_LEVEL", "error")

	code, stdout, err := runExecute(t, strings.NewReader(`{"tokens": ["окна"]}`))
	require.NoError(t, err)
	assert.Equal(t, console.NormalCode, code)
	assert.Equal(t, "{\"lemmas\":[\"окно\"]}\n", stdout)
}

func TestExecute_Unavailable(t *testing.T) {
	for _, args := range [][]string{
		{"-log-level", "error"},
		{"-log-level", "error", "-dict", filepath.Join(t.TempDir(), "absent.txt")},
		{"-log-level", "error", "-dict", writeFile(t, "empty.txt", "")},
	} {
		code, stdout, err := runExecute(t, untouchedReader{t}, args...)
		require.NoError(t, err, args)
		assert.Equal(t, console.NormalCode, code, args)
		assert.Equal(t, "{\"lemmas\":[]}\n", stdout, args)
	}
}

func TestExecute_MalformedRequest(t *testing.T) {
	dict := writeFile(t, "dict.opcorpora.txt", testDictionary)
	code, stdout, err := runExecute(t, strings.NewReader(`{"tokens": ["кошки"`), "-dict", dict, "-log-level", "error")
	assert.ErrorIs(t, err, merr.ErrRequestMalformed)
	assert.Equal(t, console.MalformedRequest, code)
	assert.Empty(t, stdout)
}

func TestExecute_InvalidUsage(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"-unknown"}},
		{"positional argument", []string{"extra"}},
		{"flag without value", []string{"-dict"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, err := runExecute(t, untouchedReader{t}, tt.args...)
			assert.Error(t, err)
			assert.Equal(t, console.InvalidUsage, code)
			assert.Empty(t, stdout)
		})
	}
}

func TestExecute_InvalidAnalyzerConfig(t *testing.T) {
	dict := writeFile(t, "dict.opcorpora.txt", testDictionary)
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{"suffix length out of range", map[string]string{"LEMMATIZER_ANALYZER_MAXSUFFIXLENGTH": "0"}, []string{"-dict", dict}},
		{"predict not a bool", map[string]string{"LEMMATIZER_ANALYZER_PREDICT": "maybe"}, []string{"-dict", dict}},
		{"missing config file", nil, []string{"-dict", dict, "-config", filepath.Join(t.TempDir(), "absent.yaml")}},
		{"broken config file", nil, []string{"-dict", dict, "-config", writeFile(t, "broken.yaml", "analyzer: [unterminated")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LEMMATIZER_LOG_LEVEL", "error")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			code, stdout, err := runExecute(t, untouchedReader{t}, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, console.NormalCode, code)
			assert.Equal(t, "{\"lemmas\":[]}\n", stdout)
		})
	}
}

func TestExecute_InvalidSettingsFallBack(t *testing.T) {
	dict := writeFile(t, "dict.opcorpora.txt", testDictionary)
	tests := []struct {
		name string
		args []string
	}{
		{"bad log level", []string{"-log-level", "loud"}},
		{"bad cache size", []string{"-config", writeFile(t, "cache.yaml", "resolver:\n  cacheSize: -1\nlog:\n  level: error\n")}},
		{"bad log format", []string{"-config", writeFile(t, "format.yaml", "log:\n  level: error\n  format: xml\n")}},
		{"log file is a directory", []string{"-config", writeFile(t, "file.yaml", "log:\n  level: error\n  file:\n    filename: "+t.TempDir()+"\n")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"-dict", dict}, tt.args...)
			code, stdout, err := runExecute(t, strings.NewReader(`{"tokens": ["кошки", "окна"]}`), args...)
			require.NoError(t, err)
			assert.Equal(t, console.NormalCode, code)
			assert.Equal(t, "{\"lemmas\":[\"кошка\",\"окно\"]}\n", stdout)
		})
	}
}

func TestExecute_InvalidUTF8(t *testing.T) {
	dict := writeFile(t, "dict.opcorpora.txt", testDictionary)
	stdin := strings.NewReader("{\"tokens\": [\"a\xffb\", \"окна\"]}")
	code, stdout, err := runExecute(t, stdin, "-dict", dict, "-log-level", "error")
	assert.ErrorIs(t, err, merr.ErrRequestMalformed)
	assert.Equal(t, console.MalformedRequest, code)
	assert.Empty(t, stdout)
}

func TestExecute_Version(t *testing.T) {
	code, stdout, err := runExecute(t, untouchedReader{t}, "-version")
	require.NoError(t, err)
	assert.Equal(t, console.NormalCode, code)
	assert.Contains(t, stdout, "Version:   "+BuildTags)
	assert.Contains(t, stdout, "GoVersion: "+GoVersion)
}

func TestExecute_Help(t *testing.T) {
	var buf bytes.Buffer
	console.SetOutput(&buf)
	defer console.SetOutput(os.Stderr)

	code, stdout, err := runExecute(t, untouchedReader{t}, "-h")
	require.NoError(t, err)
	assert.Equal(t, console.NormalCode, code)
	assert.Empty(t, stdout)
	assert.Contains(t, buf.String(), "Usage: lemmatizer")
}
