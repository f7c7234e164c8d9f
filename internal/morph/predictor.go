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
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"

	"github.com/milvus-io/lemmatizer/internal/util/analyzerapi"
)

const (
	defaultMaxSuffixLength = 5
	maxRulesPerSuffix      = 8
)

// productiveClasses lists the parts of speech new words are formed in.
// Closed classes (pronouns, prepositions, ...) never get predicted.
var productiveClasses = map[string]struct{}{
	"NOUN": {},
	"ADJF": {},
	"ADJS": {},
	"COMP": {},
	"VERB": {},
	"INFN": {},
	"PRTF": {},
	"PRTS": {},
	"GRND": {},
	"ADVB": {},
}

type suffixRule struct {
	// formEnding is the changing tail of the word form, yo-folded.
	formEnding string
	// lemmaEnding replaces formEnding to produce the normal form.
	lemmaEnding string
	tag         string
}

type weightedRule struct {
	suffixRule
	count int
}

type suffixGroup struct {
	rules []weightedRule
	total int
}

// suffixPredictor guesses normal forms of unknown words from the endings
// of known ones. It learns while the dictionary is read and is frozen
// before the first prediction.
type suffixPredictor struct {
	maxSuffix int
	counts    map[string]map[suffixRule]int
	groups    map[string]suffixGroup
}

func newSuffixPredictor(maxSuffix int) *suffixPredictor {
	if maxSuffix <= 0 {
		maxSuffix = defaultMaxSuffixLength
	}
	return &suffixPredictor{
		maxSuffix: maxSuffix,
		counts:    make(map[string]map[suffixRule]int),
	}
}

func partOfSpeech(tag string) string {
	if i := strings.IndexAny(tag, ", "); i >= 0 {
		return tag[:i]
	}
	return tag
}

func productive(tag string) bool {
	if tag == "" {
		return true
	}
	_, ok := productiveClasses[partOfSpeech(tag)]
	return ok
}

func commonPrefix(a, b []rune) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

// learn records how formKey inflects from normalKey. Both keys are
// lowercased and yo-folded, e.normalForm is the unfolded normal form.
func (p *suffixPredictor) learn(formKey, normalKey string, e entry) {
	if !productive(e.tag) {
		return
	}
	form := []rune(formKey)
	normal := []rune(normalKey)
	lemma := []rune(e.normalForm)
	if len(lemma) != len(normal) {
		return
	}
	stem := commonPrefix(form, normal)
	if stem == 0 {
		return
	}
	rule := suffixRule{
		formEnding:  string(form[stem:]),
		lemmaEnding: string(lemma[stem:]),
		tag:         e.tag,
	}
	for n := max(len(form)-stem, 1); n <= p.maxSuffix && n < len(form); n++ {
		suffix := string(form[len(form)-n:])
		rules, ok := p.counts[suffix]
		if !ok {
			rules = make(map[suffixRule]int)
			p.counts[suffix] = rules
		}
		rules[rule]++
	}
}

// freeze keeps the most frequent rules of every suffix in a deterministic order.
func (p *suffixPredictor) freeze() {
	p.groups = make(map[string]suffixGroup, len(p.counts))
	for suffix, rules := range p.counts {
		weighted := lo.MapToSlice(rules, func(rule suffixRule, count int) weightedRule {
			return weightedRule{suffixRule: rule, count: count}
		})
		sort.Slice(weighted, func(i, j int) bool {
			if weighted[i].count != weighted[j].count {
				return weighted[i].count > weighted[j].count
			}
			if weighted[i].lemmaEnding != weighted[j].lemmaEnding {
				return weighted[i].lemmaEnding < weighted[j].lemmaEnding
			}
			if weighted[i].formEnding != weighted[j].formEnding {
				return weighted[i].formEnding < weighted[j].formEnding
			}
			return weighted[i].tag < weighted[j].tag
		})
		if len(weighted) > maxRulesPerSuffix {
			weighted = weighted[:maxRulesPerSuffix]
		}
		total := lo.SumBy(weighted, func(r weightedRule) int { return r.count })
		p.groups[suffix] = suffixGroup{rules: weighted, total: total}
	}
	p.counts = nil
}

// predict returns guessed parses of an unknown word using the longest
// known suffix. lowered is the lowercased word, key its folded form.
func (p *suffixPredictor) predict(lowered, key string) []analyzerapi.Parse {
	word := []rune(lowered)
	keyRunes := []rune(key)
	if len(word) != len(keyRunes) {
		return nil
	}
	for n := min(p.maxSuffix, len(keyRunes)-1); n >= 1; n-- {
		group, ok := p.groups[string(keyRunes[len(keyRunes)-n:])]
		if !ok {
			continue
		}
		parses := make([]analyzerapi.Parse, 0, len(group.rules))
		for _, rule := range group.rules {
			endingLen := utf8.RuneCountInString(rule.formEnding)
			if endingLen >= len(word) {
				continue
			}
			parses = append(parses, analyzerapi.Parse{
				Word:       lowered,
				NormalForm: string(word[:len(word)-endingLen]) + rule.lemmaEnding,
				Tag:        rule.tag,
				Score:      float64(rule.count) / float64(group.total),
			})
		}
		if len(parses) > 0 {
			return parses
		}
	}
	return nil
}
