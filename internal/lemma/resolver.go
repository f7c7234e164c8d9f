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
	"github.com/cockroachdb/errors"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/milvus-io/lemmatizer/internal/log"
	"github.com/milvus-io/lemmatizer/internal/util/analyzerapi"
	"github.com/milvus-io/lemmatizer/pkg/metrics"
	"github.com/milvus-io/lemmatizer/pkg/util/merr"
)

// Lookup is the outcome of resolving one token. Lemma is always usable:
// it holds the normal form when Found, and the token itself otherwise.
type Lookup struct {
	Lemma string
	Found bool
	// Err is set when the analyzer failed on the token.
	Err error
}

// Resolver maps tokens to lemmas through an analyzer.
// Per token failures never escape Resolve.
type Resolver struct {
	analyzer analyzerapi.Analyzer
	cache    *lru.Cache[string, Lookup]
}

type ResolverOption func(*Resolver)

// WithCacheSize memoizes up to size successful lookups for the lifetime of
// the resolver. A size of zero or less disables memoization.
func WithCacheSize(size int) ResolverOption {
	return func(r *Resolver) {
		if size <= 0 {
			r.cache = nil
			return
		}
		cache, err := lru.New[string, Lookup](size)
		if err != nil {
			log.Warn("failed to create lookup cache", zap.Int("size", size), zap.Error(err))
			return
		}
		r.cache = cache
	}
}

func NewResolver(analyzer analyzerapi.Analyzer, opts ...ResolverOption) *Resolver {
	r := &Resolver{analyzer: analyzer}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns one lemma per non-empty token, in token order.
func (r *Resolver) Resolve(tokens []string) []string {
	metrics.ResolverRequestTokens.Observe(float64(len(tokens)))

	lemmas := make([]string, 0, len(tokens))
	for i, token := range tokens {
		if len(token) == 0 {
			metrics.ResolverTokensTotal.WithLabelValues(metrics.SkippedLabel).Inc()
			continue
		}
		result := r.Lookup(token)
		switch {
		case result.Err != nil:
			log.Debug("token lookup failed, keep the token",
				zap.Int("index", i),
				zap.String("token", token),
				zap.Error(result.Err))
			metrics.ResolverTokensTotal.WithLabelValues(metrics.FallbackErrorLabel).Inc()
		case !result.Found:
			metrics.ResolverTokensTotal.WithLabelValues(metrics.FallbackNoParseLabel).Inc()
		default:
			metrics.ResolverTokensTotal.WithLabelValues(metrics.ResolvedLabel).Inc()
		}
		lemmas = append(lemmas, result.Lemma)
	}
	return lemmas
}

// Lookup resolves a single token.
func (r *Resolver) Lookup(token string) Lookup {
	if r.cache != nil {
		if result, ok := r.cache.Get(token); ok {
			metrics.ResolverCacheHitsTotal.Inc()
			return result
		}
	}
	result := r.lookup(token)
	if r.cache != nil && result.Err == nil {
		r.cache.Add(token, result)
	}
	return result
}

func (r *Resolver) lookup(token string) (result Lookup) {
	defer func() {
		if p := recover(); p != nil {
			result = Lookup{
				Lemma: token,
				Err:   merr.WrapErrTokenLookup(token, errors.Newf("analyzer panicked: %v", p)),
			}
		}
	}()

	parses, err := r.analyzer.Parse(token)
	if err != nil {
		if !errors.Is(err, merr.ErrTokenLookup) {
			err = merr.WrapErrTokenLookup(token, err)
		}
		return Lookup{Lemma: token, Err: err}
	}
	// a malformed best reading counts as no reading at all
	if len(parses) == 0 || !parses[0].Valid() {
		return Lookup{Lemma: token}
	}
	return Lookup{Lemma: parses[0].NormalForm, Found: true}
}
