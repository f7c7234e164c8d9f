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
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/milvus-io/lemmatizer/cmd/lemmatizer/configs"
	"github.com/milvus-io/lemmatizer/internal/lemma"
	"github.com/milvus-io/lemmatizer/internal/log"
	"github.com/milvus-io/lemmatizer/internal/morph"
	"github.com/milvus-io/lemmatizer/internal/util/analyzerapi"
	"github.com/milvus-io/lemmatizer/pkg/metrics"
	"github.com/milvus-io/lemmatizer/pkg/util/merr"
)

// AnalyzerFactory builds the analyzer for a run. A non-nil error means the
// analyzer is unavailable.
type AnalyzerFactory func(cfg morph.Config) (analyzerapi.Analyzer, error)

func newMorphAnalyzer(cfg morph.Config) (analyzerapi.Analyzer, error) {
	analyzer, err := morph.NewAnalyzer(cfg)
	if err != nil {
		return nil, err
	}
	return analyzer, nil
}

// Runner performs a single request/response pass.
type Runner struct {
	stdin       io.Reader
	stdout      io.Writer
	newAnalyzer AnalyzerFactory
}

type RunnerOption func(*Runner)

func WithAnalyzerFactory(factory AnalyzerFactory) RunnerOption {
	return func(r *Runner) {
		r.newAnalyzer = factory
	}
}

func NewRunner(stdin io.Reader, stdout io.Writer, opts ...RunnerOption) *Runner {
	r := &Runner{
		stdin:       stdin,
		stdout:      stdout,
		newAnalyzer: newMorphAnalyzer,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run answers one request. Without an analyzer it writes an empty response
// and never touches stdin. A malformed request returns
// merr.ErrRequestMalformed before anything is written.
func (r *Runner) Run(cfg *configs.Config) error {
	defer r.dumpMetrics(cfg.MetricsTextfile)
	metrics.BuildInfo.WithLabelValues(BuildTags, BuildTime, GitCommit).Set(1)
	logger := log.With(zap.String("dictionary", cfg.DictionaryPath))

	analyzer, err := r.analyzer(cfg)
	if err != nil {
		logger.Warn("morphological analyzer unavailable, answer with no lemmas", zap.Error(err))
		metrics.AnalyzerAvailable.Set(0)
		return lemma.WriteResponse(r.stdout, lemma.EmptyResponse())
	}
	metrics.AnalyzerAvailable.Set(1)

	req, err := lemma.ReadRequest(r.stdin)
	if err != nil {
		return err
	}

	resolver := lemma.NewResolver(analyzer, lemma.WithCacheSize(cfg.CacheSize))
	lemmas := resolver.Resolve(req.Tokens)
	logger.Info("request resolved",
		zap.Int("tokens", len(req.Tokens)),
		zap.Int("lemmas", len(lemmas)))
	return lemma.WriteResponse(r.stdout, lemma.NewResponse(lemmas))
}

func (r *Runner) analyzer(cfg *configs.Config) (analyzerapi.Analyzer, error) {
	if err := cfg.Invalid(); err != nil {
		return nil, merr.Combine(merr.WrapErrAnalyzerUnavailable("invalid analyzer settings"), err)
	}
	return r.newAnalyzer(cfg.AnalyzerConfig.Config)
}

func (r *Runner) dumpMetrics(path string) {
	if path == "" {
		return
	}
	registry := prometheus.NewRegistry()
	metrics.Register(registry)
	if err := metrics.WriteTextfile(path, registry); err != nil {
		log.Warn("failed to write metrics textfile", zap.String("path", path), zap.Error(err))
	}
}
