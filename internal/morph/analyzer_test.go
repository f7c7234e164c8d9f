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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/milvus-io/lemmatizer/internal/util/analyzerapi"
	"github.com/milvus-io/lemmatizer/pkg/util/merr"
)

type AnalyzerSuite struct {
	suite.Suite

	analyzer *MorphAnalyzer
}

func (s *AnalyzerSuite) SetupSuite() {
	s.analyzer = newTestAnalyzer(s.T(), defaultTestConfig())
}

func (s *AnalyzerSuite) normalForm(word string) string {
	parses, err := s.analyzer.Parse(word)
	s.Require().NoError(err)
	s.Require().NotEmpty(parses, word)
	return parses[0].NormalForm
}

func (s *AnalyzerSuite) TestDictionaryWords() {
	s.Equal("бежать", s.normalForm("бежал"))
	s.Equal("дом", s.normalForm("дома"))
	s.Equal("окно", s.normalForm("окна"))
	s.Equal("слово", s.normalForm("слово"))
	s.Equal("и", s.normalForm("и"))
}

func (s *AnalyzerSuite) TestCaseAndYo() {
	s.Equal("дом", s.normalForm("ДОМА"))
	s.Equal("окно", s.normalForm("Окна"))
	s.Equal("ёж", s.normalForm("ЕЖА"))
	s.Equal("ёж", s.normalForm("ёж"))
	// decomposed ё
	s.Equal("ёж", s.normalForm("е\u0308ж"))
}

func (s *AnalyzerSuite) TestAmbiguousReadings() {
	parses, err := s.analyzer.Parse("дома")
	s.Require().NoError(err)
	s.Require().Len(parses, 3)
	s.Equal("дом", parses[0].NormalForm)
	s.Equal("NOUN,inan,masc sing,gent", parses[0].Tag)
	s.Equal("дома", parses[2].NormalForm)
	s.Equal("ADVB", parses[2].Tag)
	for _, p := range parses {
		s.Equal("дома", p.Word)
		s.InDelta(1.0/3, p.Score, 1e-9)
	}
}

func (s *AnalyzerSuite) TestShapeUnits() {
	cases := []struct {
		word       string
		normalForm string
		tag        string
	}{
		{"2024", "2024", "NUMB,intg"},
		{"-7", "-7", "NUMB,intg"},
		{"3,14", "3,14", "NUMB,real"},
		{"!?", "!?", "PNCT"},
		{"«", "«", "PNCT"},
		{"XIV", "xiv", "ROMN"},
		{"Hello", "hello", "LATN"},
		{"rock-n-roll", "rock-n-roll", "LATN"},
	}
	for _, c := range cases {
		parses, err := s.analyzer.Parse(c.word)
		s.Require().NoError(err, c.word)
		s.Require().Len(parses, 1, c.word)
		s.Equal(c.normalForm, parses[0].NormalForm, c.word)
		s.Equal(c.tag, parses[0].Tag, c.word)
	}
}

func (s *AnalyzerSuite) TestPrediction() {
	s.Equal("мышка", s.normalForm("мышкой"))
	s.Equal("лежать", s.normalForm("лежал"))
}

func (s *AnalyzerSuite) TestUnknownWords() {
	for _, word := range []string{"abcдом", "12abc€", "щ"} {
		parses, err := s.analyzer.Parse(word)
		s.NoError(err, word)
		s.Empty(parses, word)
	}

	parses, err := s.analyzer.Parse("")
	s.NoError(err)
	s.Empty(parses)
}

func (s *AnalyzerSuite) TestInvalidUTF8() {
	_, err := s.analyzer.Parse("\xff\xfe")
	s.ErrorIs(err, merr.ErrTokenLookup)
}

func (s *AnalyzerSuite) TestDeterministic() {
	for _, word := range []string{"дома", "мышкой", "бежал", "XIV"} {
		first, err := s.analyzer.Parse(word)
		s.Require().NoError(err)
		for i := 0; i < 10; i++ {
			again, err := s.analyzer.Parse(word)
			s.Require().NoError(err)
			s.Equal(first, again)
		}
	}
}

func TestAnalyzer(t *testing.T) {
	suite.Run(t, new(AnalyzerSuite))
}

func TestAnalyzerWithoutPrediction(t *testing.T) {
	cfg := defaultTestConfig()
	cfg.Predict = false
	analyzer := newTestAnalyzer(t, cfg)

	parses, err := analyzer.Parse("мышкой")
	require.NoError(t, err)
	assert.Empty(t, parses)

	parses, err = analyzer.Parse("кошкой")
	require.NoError(t, err)
	require.NotEmpty(t, parses)
	assert.Equal(t, "кошка", parses[0].NormalForm)
}

func TestNewAnalyzer(t *testing.T) {
	t.Run("path not set", func(t *testing.T) {
		_, err := NewAnalyzer(defaultTestConfig())
		assert.ErrorIs(t, err, merr.ErrAnalyzerUnavailable)
	})

	t.Run("missing file", func(t *testing.T) {
		cfg := defaultTestConfig()
		cfg.DictionaryPath = "/nonexistent/dict.opcorpora.txt"
		_, err := NewAnalyzer(cfg)
		assert.ErrorIs(t, err, merr.ErrAnalyzerUnavailable)
	})

	t.Run("invalid file", func(t *testing.T) {
		cfg := defaultTestConfig()
		cfg.DictionaryPath = writeTestDictionary(t, "broken.txt", []byte("not a dictionary\n"))
		_, err := NewAnalyzer(cfg)
		assert.ErrorIs(t, err, merr.ErrAnalyzerUnavailable)
		assert.ErrorIs(t, err, merr.ErrDictionaryInvalid)
	})

	t.Run("empty file", func(t *testing.T) {
		cfg := defaultTestConfig()
		cfg.DictionaryPath = writeTestDictionary(t, "empty.txt", nil)
		_, err := NewAnalyzer(cfg)
		assert.ErrorIs(t, err, merr.ErrAnalyzerUnavailable)
	})

	t.Run("loaded", func(t *testing.T) {
		cfg := defaultTestConfig()
		cfg.DictionaryPath = writeTestDictionary(t, "dict.txt.zst", zstdBytes(t, testDictionary))
		analyzer, err := NewAnalyzer(cfg)
		require.NoError(t, err)

		var _ analyzerapi.Analyzer = analyzer
		parses, err := analyzer.Parse("окна")
		require.NoError(t, err)
		require.NotEmpty(t, parses)
		assert.Equal(t, "окно", parses[0].NormalForm)
	})
}
