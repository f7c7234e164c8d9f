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

package analyzerapi

// Parse is one candidate morphological reading of a word.
type Parse struct {
	// Word is the analyzed form, lowercased.
	Word string
	// NormalForm is the lemma of the reading.
	NormalForm string
	// Tag is the grammeme set, e.g. "NOUN,inan,masc sing,nomn".
	Tag string
	// Score is the estimated probability of the reading, in (0, 1].
	Score float64
}

// Valid reports whether the parse carries a usable normal form.
func (p Parse) Valid() bool {
	return p.NormalForm != ""
}

//go:generate mockery --name=Analyzer --with-expecter
type Analyzer interface {
	// Parse returns the candidate readings of word, best first.
	// An empty result means the word is unknown.
	Parse(word string) ([]Parse, error)
}

// AnalyzerFunc adapts an ordinary function to the Analyzer interface.
type AnalyzerFunc func(word string) ([]Parse, error)

func (f AnalyzerFunc) Parse(word string) ([]Parse, error) {
	return f(word)
}
