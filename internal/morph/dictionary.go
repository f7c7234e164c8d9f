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
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/milvus-io/lemmatizer/internal/log"
	"github.com/milvus-io/lemmatizer/internal/util/compressor"
	"github.com/milvus-io/lemmatizer/pkg/util/merr"
)

const maxLineSize = 1 << 20

// entry is one dictionary reading of a word form.
type entry struct {
	normalForm string
	tag        string
}

// Dictionary maps word forms to their readings.
// It is read-only once built.
type Dictionary struct {
	forms     map[string][]entry
	lemmas    int
	predictor *suffixPredictor
}

// Lookup returns the readings of key in dictionary order.
func (d *Dictionary) Lookup(key string) []entry {
	return d.forms[key]
}

// LemmaCount returns the number of lemmas loaded.
func (d *Dictionary) LemmaCount() int {
	return d.lemmas
}

// FormCount returns the number of distinct lookup keys.
func (d *Dictionary) FormCount() int {
	return len(d.forms)
}

type dictionaryBuilder struct {
	dict      *Dictionary
	norm      *normalizer
	predictor *suffixPredictor

	// current lemma block
	normalForm string
	inBlock    bool
	blockForms int
}

func newDictionaryBuilder(cfg Config) *dictionaryBuilder {
	b := &dictionaryBuilder{
		dict: &Dictionary{
			forms: make(map[string][]entry),
		},
		norm: newNormalizer(cfg.FoldYo),
	}
	if cfg.Predict {
		b.predictor = newSuffixPredictor(cfg.MaxSuffixLength)
	}
	return b
}

func (b *dictionaryBuilder) addForm(form, tag string) {
	lowered := b.norm.lower(form)
	if b.blockForms == 0 {
		b.normalForm = lowered
	}
	b.blockForms++

	key := b.norm.key(lowered)
	e := entry{normalForm: b.normalForm, tag: tag}
	for _, existing := range b.dict.forms[key] {
		if existing == e {
			return
		}
	}
	b.dict.forms[key] = append(b.dict.forms[key], e)
	if b.predictor != nil {
		b.predictor.learn(key, b.norm.key(b.normalForm), e)
	}
}

func (b *dictionaryBuilder) closeBlock() {
	if b.inBlock && b.blockForms > 0 {
		b.dict.lemmas++
	}
	b.inBlock = false
	b.blockForms = 0
	b.normalForm = ""
}

func (b *dictionaryBuilder) build() *Dictionary {
	b.closeBlock()
	if b.predictor != nil {
		b.predictor.freeze()
		b.dict.predictor = b.predictor
	}
	return b.dict
}

// ReadDictionary parses an OpenCorpora text dictionary from r.
//
// The format is a sequence of lemma blocks separated by blank lines.
// Each block starts with the numeric lemma id followed by
// "WORDFORM<TAB>TAGS" lines, the first word form being the normal form.
func ReadDictionary(r io.Reader, name string, cfg Config) (*Dictionary, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	b := newDictionaryBuilder(cfg)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if lineNo == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}
		if strings.TrimSpace(line) == "" {
			b.closeBlock()
			continue
		}
		if !b.inBlock {
			if _, err := strconv.ParseUint(strings.TrimSpace(line), 10, 64); err != nil {
				return nil, merr.WrapErrDictionaryInvalid(name, lineNo, "lemma id expected")
			}
			b.inBlock = true
			continue
		}
		form, tag, ok := strings.Cut(line, "\t")
		if !ok || form == "" {
			return nil, merr.WrapErrDictionaryInvalid(name, lineNo, "word form and tag expected")
		}
		b.addForm(form, strings.TrimSpace(tag))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to read dictionary %s", name)
	}
	return b.build(), nil
}

// LoadDictionary reads the dictionary stored at path. Gzip and zstd
// compressed files are detected by their magic bytes.
func LoadDictionary(path string, cfg Config) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open dictionary %s", path)
	}
	defer f.Close()

	r, typ, err := compressor.NewReader(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s dictionary %s", typ, path)
	}
	defer r.Close()

	dict, err := ReadDictionary(r, path, cfg)
	if err != nil {
		return nil, err
	}
	log.Info("dictionary loaded",
		zap.String("path", path),
		zap.Int("lemmas", dict.LemmaCount()),
		zap.Int("forms", dict.FormCount()))
	return dict, nil
}
