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
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// normalizer lowercases and composes words so that dictionary keys and
// lookups agree. Not safe for concurrent use, the caser keeps state.
type normalizer struct {
	caser  cases.Caser
	foldYo bool
}

func newNormalizer(foldYo bool) *normalizer {
	return &normalizer{
		caser:  cases.Lower(language.Russian),
		foldYo: foldYo,
	}
}

// lower returns the lowercased NFC form of word.
func (n *normalizer) lower(word string) string {
	return norm.NFC.String(n.caser.String(word))
}

// key returns the lookup key of an already lowercased word.
func (n *normalizer) key(lowered string) string {
	if n.foldYo {
		return foldYo(lowered)
	}
	return lowered
}

func foldYo(word string) string {
	if !strings.ContainsRune(word, 'ё') {
		return word
	}
	return strings.ReplaceAll(word, "ё", "е")
}
