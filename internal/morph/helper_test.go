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

package morph

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/milvus-io/lemmatizer/internal/util/compressor"
)

const testDictionary = `1
БЕЖАТЬ	INFN,perf,intr
БЕЖАЛ	VERB,perf,intr masc,sing,past,indc
БЕЖАЛА	VERB,perf,intr femn,sing,past,indc

2
ДОМ	NOUN,inan,masc sing,nomn
ДОМА	NOUN,inan,masc sing,gent
ДОМА	NOUN,inan,masc plur,nomn
ДОМУ	NOUN,inan,masc sing,datv

3
ДОМА	ADVB

4
ОКНО	NOUN,inan,neut sing,nomn
ОКНА	NOUN,inan,neut sing,gent
ОКНА	NOUN,inan,neut plur,nomn

5
ЁЖ	NOUN,anim,masc sing,nomn
ЕЖА	NOUN,anim,masc sing,gent
ЕЖУ	NOUN,anim,masc sing,datv

6
СЛОВО	NOUN,inan,neut sing,nomn
СЛОВА	NOUN,inan,neut sing,gent
СЛОВОМ	NOUN,inan,neut sing,ablt

7
КОШКА	NOUN,anim,femn sing,nomn
КОШКИ	NOUN,anim,femn sing,gent
КОШКОЙ	NOUN,anim,femn sing,ablt

8
И	CONJ
`

func defaultTestConfig() Config {
	return Config{
		Predict:         true,
		MaxSuffixLength: defaultMaxSuffixLength,
		FoldYo:          true,
	}
}

func writeTestDictionary(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0o600))
	return path
}

func compressBytes(t *testing.T, content string, typ compressor.CompressType) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, compressor.Compress(strings.NewReader(content), &buf, typ))
	return buf.Bytes()
}

func gzipBytes(t *testing.T, content string) []byte {
	return compressBytes(t, content, compressor.Gzip)
}

func zstdBytes(t *testing.T, content string) []byte {
	return compressBytes(t, content, compressor.Zstd)
}

func newTestAnalyzer(t *testing.T, cfg Config) *MorphAnalyzer {
	t.Helper()
	dict, err := ReadDictionary(strings.NewReader(testDictionary), "test", cfg)
	require.NoError(t, err)
	return NewAnalyzerFromDictionary(dict, cfg)
}
