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

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	ResultLabelName = "result"

	ResolvedLabel        = "resolved"
	FallbackNoParseLabel = "fallback_no_parse"
	FallbackErrorLabel   = "fallback_error"
	SkippedLabel         = "skipped"
)

var (
	ResolverTokensTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: lemmatizerNamespace,
			Subsystem: resolverSubsystem,
			Name:      "tokens_total",
			Help:      "count of tokens handled by the resolver, by outcome",
		}, []string{
			ResultLabelName,
		})

	ResolverCacheHitsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: lemmatizerNamespace,
			Subsystem: resolverSubsystem,
			Name:      "cache_hits_total",
			Help:      "count of token lookups answered by the per-run cache",
		})

	ResolverRequestTokens = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: lemmatizerNamespace,
			Subsystem: resolverSubsystem,
			Name:      "request_tokens",
			Help:      "number of tokens per request",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 14), // 1 ~ 8192
		})
)
