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
	"sort"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/milvus-io/lemmatizer/internal/log"
	"github.com/milvus-io/lemmatizer/internal/util/analyzerapi"
	"github.com/milvus-io/lemmatizer/pkg/util/merr"
)

var _ analyzerapi.Analyzer = (*MorphAnalyzer)(nil)

// Config controls how the dictionary is loaded and queried.
type Config struct {
	// DictionaryPath points at an OpenCorpora text dictionary,
	// optionally gzip or zstd compressed.
	DictionaryPath string
	// Predict enables guessing normal forms of unknown words.
	Predict bool
	// MaxSuffixLength bounds the word endings the predictor learns.
	MaxSuffixLength int
	// FoldYo makes "е" and "ё" interchangeable on lookup.
	FoldYo bool
}

// MorphAnalyzer is a dictionary based morphological analyzer.
type MorphAnalyzer struct {
	dict   *Dictionary
	foldYo bool
	units  []unit
}

// NewAnalyzer loads the dictionary named by cfg. Any failure means the
// analyzer is unavailable and is reported as merr.ErrAnalyzerUnavailable.
func NewAnalyzer(cfg Config) (*MorphAnalyzer, error) {
	if cfg.DictionaryPath == "" {
		return nil, merr.WrapErrAnalyzerUnavailable("dictionary path not set")
	}
	dict, err := LoadDictionary(cfg.DictionaryPath, cfg)
	if err != nil {
		return nil, merr.Combine(merr.WrapErrAnalyzerUnavailable("dictionary not loaded"), err)
	}
	if dict.LemmaCount() == 0 {
		return nil, merr.WrapErrAnalyzerUnavailable("dictionary is empty", cfg.DictionaryPath)
	}
	return NewAnalyzerFromDictionary(dict, cfg), nil
}

// NewAnalyzerFromDictionary builds an analyzer on top of a loaded dictionary.
func NewAnalyzerFromDictionary(dict *Dictionary, cfg Config) *MorphAnalyzer {
	units := []unit{
		&dictionaryUnit{dict: dict},
		&shapeUnit{unitName: "number", tag: numberTag},
		&shapeUnit{unitName: "punctuation", tag: punctuationTag},
		&shapeUnit{unitName: "roman", tag: romanTag},
		&shapeUnit{unitName: "latin", tag: latinTag},
	}
	if cfg.Predict && dict.predictor != nil {
		units = append(units, &predictorUnit{predictor: dict.predictor})
	}
	return &MorphAnalyzer{
		dict:   dict,
		foldYo: cfg.FoldYo,
		units:  units,
	}
}

// Parse returns the readings of word, best first. Words that no unit
// recognizes yield an empty result.
func (a *MorphAnalyzer) Parse(word string) ([]analyzerapi.Parse, error) {
	if !utf8.ValidString(word) {
		return nil, merr.WrapErrTokenLookup(word, errors.New("invalid utf-8"))
	}
	if word == "" {
		return nil, nil
	}
	norm := newNormalizer(a.foldYo)
	lowered := norm.lower(word)
	key := norm.key(lowered)
	for _, u := range a.units {
		parses := u.parse(lowered, key)
		if len(parses) == 0 {
			continue
		}
		log.Debug("word analyzed",
			zap.String("word", word),
			zap.String("unit", u.name()),
			zap.Int("parses", len(parses)))
		return rank(parses), nil
	}
	return nil, nil
}

// rank merges parses sharing a normal form and tag and orders them by
// score. The sort is stable so equal scores keep dictionary order.
func rank(parses []analyzerapi.Parse) []analyzerapi.Parse {
	type readingKey struct {
		normalForm string
		tag        string
	}
	index := make(map[readingKey]int, len(parses))
	merged := make([]analyzerapi.Parse, 0, len(parses))
	for _, p := range parses {
		k := readingKey{p.NormalForm, p.Tag}
		if i, ok := index[k]; ok {
			merged[i].Score += p.Score
			continue
		}
		index[k] = len(merged)
		merged = append(merged, p)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Score > merged[j].Score
	})
	return merged
}
