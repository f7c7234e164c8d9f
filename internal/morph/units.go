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
	"regexp"
	"strings"
	"unicode"

	"github.com/milvus-io/lemmatizer/internal/util/analyzerapi"
)

// unit is one analysis step. The analyzer asks units in order and keeps
// the parses of the first unit that recognizes the word.
type unit interface {
	name() string
	parse(lowered, key string) []analyzerapi.Parse
}

// dictionaryUnit looks the word up in the dictionary.
type dictionaryUnit struct {
	dict *Dictionary
}

func (u *dictionaryUnit) name() string { return "dictionary" }

func (u *dictionaryUnit) parse(lowered, key string) []analyzerapi.Parse {
	entries := u.dict.Lookup(key)
	if len(entries) == 0 {
		return nil
	}
	score := 1.0 / float64(len(entries))
	parses := make([]analyzerapi.Parse, 0, len(entries))
	for _, e := range entries {
		parses = append(parses, analyzerapi.Parse{
			Word:       lowered,
			NormalForm: e.normalForm,
			Tag:        e.tag,
			Score:      score,
		})
	}
	return parses
}

// shapeUnit recognizes words by their shape alone; the normal form is the
// lowercased word itself.
type shapeUnit struct {
	unitName string
	tag      func(lowered string) (string, bool)
}

func (u *shapeUnit) name() string { return u.unitName }

func (u *shapeUnit) parse(lowered, _ string) []analyzerapi.Parse {
	tag, ok := u.tag(lowered)
	if !ok {
		return nil
	}
	return []analyzerapi.Parse{{
		Word:       lowered,
		NormalForm: lowered,
		Tag:        tag,
		Score:      1,
	}}
}

var (
	integerPattern = regexp.MustCompile(`^[+-]?[0-9]+$`)
	realPattern    = regexp.MustCompile(`^[+-]?[0-9]+[.,][0-9]+$`)
	romanPattern   = regexp.MustCompile(`^m{0,4}(cm|cd|d?c{0,3})(xc|xl|l?x{0,3})(ix|iv|v?i{0,3})$`)
)

func numberTag(lowered string) (string, bool) {
	switch {
	case integerPattern.MatchString(lowered):
		return "NUMB,intg", true
	case realPattern.MatchString(lowered):
		return "NUMB,real", true
	default:
		return "", false
	}
}

func punctuationTag(lowered string) (string, bool) {
	for _, r := range lowered {
		if !unicode.IsPunct(r) && !unicode.IsSymbol(r) {
			return "", false
		}
	}
	return "PNCT", true
}

func romanTag(lowered string) (string, bool) {
	if romanPattern.MatchString(lowered) {
		return "ROMN", true
	}
	return "", false
}

func latinTag(lowered string) (string, bool) {
	hasLetter := false
	for _, r := range lowered {
		switch {
		case unicode.Is(unicode.Latin, r):
			hasLetter = true
		case r == '-' || r == '\'' || unicode.IsDigit(r):
		default:
			return "", false
		}
	}
	if !hasLetter {
		return "", false
	}
	return "LATN", true
}

// predictorUnit guesses readings of unknown cyrillic words.
type predictorUnit struct {
	predictor *suffixPredictor
}

func (u *predictorUnit) name() string { return "predictor" }

func (u *predictorUnit) parse(lowered, key string) []analyzerapi.Parse {
	if !isCyrillicWord(lowered) {
		return nil
	}
	return u.predictor.predict(lowered, key)
}

func isCyrillicWord(word string) bool {
	if strings.Trim(word, "-") == "" {
		return false
	}
	for _, r := range word {
		if r != '-' && !unicode.Is(unicode.Cyrillic, r) {
			return false
		}
	}
	return true
}
