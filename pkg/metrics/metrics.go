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
	lemmatizerNamespace = "lemmatizer"

	resolverSubsystem = "resolver"
)

// Register registers all lemmatizer metrics into r.
func Register(r prometheus.Registerer) {
	r.MustRegister(BuildInfo)
	r.MustRegister(ResolverTokensTotal)
	r.MustRegister(ResolverCacheHitsTotal)
	r.MustRegister(ResolverRequestTokens)
	r.MustRegister(AnalyzerAvailable)
}

// WriteTextfile dumps everything gathered by g in the text exposition
// format, for node_exporter's textfile collector. The file is replaced
// atomically.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
